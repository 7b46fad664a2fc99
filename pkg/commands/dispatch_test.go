package commands

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/cbodonnell/jigsaw/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeJSON(t *testing.T, d *Dispatcher, name string, args string) map[string]interface{} {
	t.Helper()
	response, err := d.Invoke(context.Background(), name, json.RawMessage(args))
	require.NoError(t, err)
	b, err := json.Marshal(response)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestDispatcher_roundTrip(t *testing.T) {
	d := NewDispatcher(newTestService(state.NewInMemoryStore(nil)))

	created := invokeJSON(t, d, CommandCreatePuzzle, `{"params": {
		"name": "Lake",
		"image_path": "/assets/lake.png",
		"grid_size": {"rows": 4, "cols": 4},
		"piece_shape": "Triangle"
	}}`)
	assert.Equal(t, true, created["success"])
	assert.Nil(t, created["error"])
	data := created["data"].(map[string]interface{})
	assert.Equal(t, "Hard", data["difficulty"])
	assert.Equal(t, "puzzle_1", data["id"])

	loaded := invokeJSON(t, d, CommandLoadGame, `{"params": {"game_id": "puzzle_1"}}`)
	assert.Equal(t, true, loaded["success"])
	game := loaded["data"].(map[string]interface{})
	assert.Equal(t, false, game["is_completed"])
	assert.Nil(t, game["end_time"])

	game["is_completed"] = true
	game["elapsed_time"] = 42
	game["moves"] = 17
	saveArgs, err := json.Marshal(map[string]interface{}{
		"params": map[string]interface{}{"game_state": game},
	})
	require.NoError(t, err)
	saved := invokeJSON(t, d, CommandSaveGame, string(saveArgs))
	assert.Equal(t, true, saved["success"])
	assert.Equal(t, SaveConfirmation, saved["data"])

	board := invokeJSON(t, d, CommandGetLeaderboard, ``)
	entries := board["data"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "puzzle_1", entry["puzzle_id"])
	assert.Equal(t, 42.0, entry["completion_time"])
	assert.Equal(t, "Hard", entry["difficulty"])

	puzzles := invokeJSON(t, d, CommandGetPuzzles, `{}`)
	assert.Len(t, puzzles["data"], 1)
}

func TestDispatcher_envelopeErrors(t *testing.T) {
	d := NewDispatcher(newTestService(state.NewInMemoryStore(nil)))

	missing := invokeJSON(t, d, CommandLoadGame, `{"params": {"game_id": "nope"}}`)
	assert.Equal(t, false, missing["success"])
	assert.Nil(t, missing["data"])
	assert.Equal(t, "puzzle not found: nope", missing["error"])

	invalidPuzzle := invokeJSON(t, d, CommandCreatePuzzle, `{"params": {
		"name": "",
		"image_path": "/assets/lake.png",
		"grid_size": {"rows": 4, "cols": 4},
		"piece_shape": "Square"
	}}`)
	assert.Equal(t, false, invalidPuzzle["success"])
	assert.Equal(t, "puzzle name must not be empty", invalidPuzzle["error"])

	noShape := invokeJSON(t, d, CommandCreatePuzzle, `{"params": {"name": "x", "image_path": "y", "grid_size": {"rows": 3, "cols": 3}}}`)
	assert.Equal(t, false, noShape["success"])
	assert.Equal(t, "piece shape is required", noShape["error"])

	noGame := invokeJSON(t, d, CommandSaveGame, `{"params": {"player_name": "Mia"}}`)
	assert.Equal(t, false, noGame["success"])
	assert.Equal(t, "game state is required", noGame["error"])

	puzzles := invokeJSON(t, d, CommandGetPuzzles, `{}`)
	assert.Empty(t, puzzles["data"])
}

func TestDispatcher_transportErrors(t *testing.T) {
	d := NewDispatcher(newTestService(state.NewInMemoryStore(nil)))
	ctx := context.Background()

	_, err := d.Invoke(ctx, "greet", nil)
	assert.True(t, IsUnknownCommand(err))

	tests := []struct {
		name    string
		command string
		args    string
	}{
		{name: "missing params", command: CommandCreatePuzzle, args: `{}`},
		{name: "bad json", command: CommandSaveGame, args: `{"params":`},
		{name: "negative rows", command: CommandCreatePuzzle, args: `{"params": {"name": "x", "image_path": "y", "grid_size": {"rows": -1, "cols": 2}, "piece_shape": "Square"}}`},
		{name: "unknown shape", command: CommandCreatePuzzle, args: `{"params": {"name": "x", "image_path": "y", "grid_size": {"rows": 1, "cols": 2}, "piece_shape": "Hexagon"}}`},
		{name: "limit not a number", command: CommandGetDailyChallengeLeaderboard, args: `{"limit": "ten"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Invoke(ctx, tt.command, json.RawMessage(tt.args))
			assert.True(t, IsInvalidArguments(err), "got %v", err)
		})
	}
}

func TestDispatcher_dailyChallenge(t *testing.T) {
	d := NewDispatcher(newTestService(state.NewInMemoryStore(nil)))

	submitted := invokeJSON(t, d, CommandSubmitDailyChallenge, `{"challengeData": {"score": 700, "isPerfect": true, "challengeId": "c1"}}`)
	assert.Equal(t, true, submitted["success"])
	result := submitted["data"].(map[string]interface{})
	assert.Equal(t, 1.0, result["rank"])
	assert.Equal(t, "c1", result["challengeId"])

	missing := invokeJSON(t, d, CommandSubmitDailyChallenge, `{}`)
	assert.Equal(t, false, missing["success"])

	board := invokeJSON(t, d, CommandGetDailyChallengeLeaderboard, `{"date": "2024-01-01", "limit": 5}`)
	data := board["data"].(map[string]interface{})
	assert.Len(t, data["leaderboard"], 2)
	assert.Equal(t, map[string]interface{}{"limit": 5.0, "total": 2.0, "hasMore": false}, data["pagination"])

	stats := invokeJSON(t, d, CommandGetDailyChallengeStats, `null`)
	assert.Equal(t, true, stats["success"])
}

func TestDispatcher_Commands(t *testing.T) {
	d := NewDispatcher(newTestService(state.NewInMemoryStore(nil)))
	assert.Equal(t, []string{
		CommandCreatePuzzle,
		CommandGetDailyChallengeLeaderboard,
		CommandGetDailyChallengeStats,
		CommandGetLeaderboard,
		CommandGetPuzzles,
		CommandLoadGame,
		CommandSaveGame,
		CommandSubmitDailyChallenge,
	}, d.Commands())
}

func TestResponse_JSONShape(t *testing.T) {
	b, err := json.Marshal(Success(puzzle.DifficultyEasy))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "data": "Easy", "error": null}`, string(b))

	b, err = json.Marshal(Failure[string](invalid("nope")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "data": null, "error": "nope"}`, string(b))
}
