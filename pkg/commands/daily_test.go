package commands

import (
	"context"
	"testing"

	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/cbodonnell/jigsaw/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SubmitDailyChallenge(t *testing.T) {
	tests := []struct {
		name        string
		submission  puzzle.DailyChallengeSubmission
		wantRewards puzzle.DailyChallengeRewards
		wantScore   float64
	}{
		{
			name: "perfect run",
			submission: puzzle.DailyChallengeSubmission{
				"challengeId": "daily-2024-05-17",
				"score":       float64(920),
				"isPerfect":   true,
				"playerName":  "Mia",
			},
			wantRewards: puzzle.DailyChallengeRewards{Coins: 100, Experience: 50},
			wantScore:   920,
		},
		{
			name: "imperfect run",
			submission: puzzle.DailyChallengeSubmission{
				"score": float64(400),
			},
			wantRewards: puzzle.DailyChallengeRewards{Coins: 50, Experience: 25},
			wantScore:   400,
		},
		{
			name:        "empty object",
			submission:  puzzle.DailyChallengeSubmission{},
			wantRewards: puzzle.DailyChallengeRewards{Coins: 50, Experience: 25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := state.NewInMemoryStore(nil)
			service := newTestService(store)

			response := service.SubmitDailyChallenge(ctx, tt.submission)
			require.True(t, response.Success)
			result := response.Data
			assert.Regexp(t, `^daily_[0-9a-f-]{36}$`, result.GameID)
			assert.Equal(t, tt.wantRewards, result.Rewards)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, 1, result.Rank)
			assert.True(t, result.IsNewRecord)
			assert.True(t, result.LeaderboardUpdated)
			assert.True(t, result.IsMock)

			entries, err := store.Leaderboard(ctx)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestService_SubmitDailyChallenge_missingData(t *testing.T) {
	response := newTestService(state.NewInMemoryStore(nil)).SubmitDailyChallenge(context.Background(), nil)
	assert.False(t, response.Success)
}

func TestService_GetDailyChallengeLeaderboard(t *testing.T) {
	intPtr := func(i int) *int { return &i }
	tests := []struct {
		name        string
		params      DailyChallengeLeaderboardParams
		wantDate    string
		wantLimit   int
		wantEntries int
		wantHasMore bool
		wantErr     bool
	}{
		{
			name:        "defaults to today",
			params:      DailyChallengeLeaderboardParams{},
			wantDate:    "2024-05-17",
			wantLimit:   DefaultDailyLeaderboardLimit,
			wantEntries: 2,
		},
		{
			name:        "explicit date",
			params:      DailyChallengeLeaderboardParams{Date: "2024-01-01", Limit: intPtr(10)},
			wantDate:    "2024-01-01",
			wantLimit:   10,
			wantEntries: 2,
		},
		{
			name:        "limit truncates",
			params:      DailyChallengeLeaderboardParams{Limit: intPtr(1)},
			wantDate:    "2024-05-17",
			wantLimit:   1,
			wantEntries: 1,
			wantHasMore: true,
		},
		{
			name:        "limit clamped high",
			params:      DailyChallengeLeaderboardParams{Limit: intPtr(1000)},
			wantDate:    "2024-05-17",
			wantLimit:   MaxDailyLeaderboardLimit,
			wantEntries: 2,
		},
		{
			name:        "limit clamped low",
			params:      DailyChallengeLeaderboardParams{Limit: intPtr(-3)},
			wantDate:    "2024-05-17",
			wantLimit:   1,
			wantEntries: 1,
			wantHasMore: true,
		},
		{
			name:    "malformed date",
			params:  DailyChallengeLeaderboardParams{Date: "17/05/2024"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(state.NewInMemoryStore(nil))
			response := service.GetDailyChallengeLeaderboard(context.Background(), tt.params)
			if tt.wantErr {
				assert.False(t, response.Success)
				require.NotNil(t, response.Error)
				return
			}
			require.True(t, response.Success)
			board := response.Data
			assert.Equal(t, tt.wantDate, board.Date)
			assert.Equal(t, tt.wantLimit, board.Pagination.Limit)
			assert.Equal(t, 2, board.Pagination.Total)
			assert.Equal(t, tt.wantHasMore, board.Pagination.HasMore)
			require.Len(t, board.Leaderboard, tt.wantEntries)
			for i, entry := range board.Leaderboard {
				assert.Equal(t, i+1, entry.Rank)
				assert.Equal(t, tt.wantDate, entry.Date)
			}
			assert.True(t, board.IsMock)
			assert.False(t, board.IsRealtime)
		})
	}
}

func TestService_GetDailyChallengeStats(t *testing.T) {
	response := newTestService(state.NewInMemoryStore(nil)).GetDailyChallengeStats(context.Background())
	require.True(t, response.Success)
	assert.True(t, response.Data.IsMock)
	assert.Equal(t, 950, response.Data.BestScore)
}
