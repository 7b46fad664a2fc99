package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/puzzle"
)

const (
	CommandCreatePuzzle                 = "create_puzzle"
	CommandSaveGame                     = "save_game"
	CommandLoadGame                     = "load_game"
	CommandGetLeaderboard               = "get_leaderboard"
	CommandGetPuzzles                   = "get_puzzles"
	CommandSubmitDailyChallenge         = "submit_daily_challenge"
	CommandGetDailyChallengeLeaderboard = "get_daily_challenge_leaderboard"
	CommandGetDailyChallengeStats       = "get_daily_challenge_stats"
)

// HandlerFunc runs one command against its raw JSON argument object.
// The returned value is always a Response envelope.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Dispatcher routes named commands to the Service, decoding the same
// argument objects the desktop front end sends.
type Dispatcher struct {
	handlers map[string]HandlerFunc
}

func NewDispatcher(service *Service) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]HandlerFunc),
	}

	d.handlers[CommandCreatePuzzle] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var in struct {
			Params *CreatePuzzleParams `json:"params"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		if in.Params == nil {
			return nil, fmt.Errorf("missing params")
		}
		return service.CreatePuzzle(ctx, *in.Params), nil
	}
	d.handlers[CommandSaveGame] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var in struct {
			Params *SaveGameParams `json:"params"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		if in.Params == nil {
			return nil, fmt.Errorf("missing params")
		}
		return service.SaveGame(ctx, *in.Params), nil
	}
	d.handlers[CommandLoadGame] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var in struct {
			Params *LoadGameParams `json:"params"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		if in.Params == nil {
			return nil, fmt.Errorf("missing params")
		}
		return service.LoadGame(ctx, *in.Params), nil
	}
	d.handlers[CommandGetLeaderboard] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		return service.GetLeaderboard(ctx), nil
	}
	d.handlers[CommandGetPuzzles] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		return service.GetPuzzles(ctx), nil
	}
	d.handlers[CommandSubmitDailyChallenge] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var in struct {
			ChallengeData puzzle.DailyChallengeSubmission `json:"challengeData"`
		}
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return service.SubmitDailyChallenge(ctx, in.ChallengeData), nil
	}
	d.handlers[CommandGetDailyChallengeLeaderboard] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var in DailyChallengeLeaderboardParams
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return service.GetDailyChallengeLeaderboard(ctx, in), nil
	}
	d.handlers[CommandGetDailyChallengeStats] = func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		return service.GetDailyChallengeStats(ctx), nil
	}

	return d
}

// decodeArgs treats an absent argument object as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, v)
}

// Invoke runs the named command. Errors are returned only when the command
// is unknown or its arguments cannot be decoded; every other outcome,
// including validation failures, is carried in the returned envelope.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	handler, ok := d.handlers[name]
	if !ok {
		return nil, &ErrUnknownCommand{Name: name}
	}

	log.Trace("Invoking %s with %s", name, string(args))
	response, err := handler(ctx, args)
	if err != nil {
		return nil, &ErrInvalidArguments{Command: name, Err: err}
	}
	return response, nil
}

// Commands returns the registered command names in sorted order.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
