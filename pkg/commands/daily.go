package commands

import (
	"context"
	"time"

	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/puzzle"
	"github.com/google/uuid"
)

// The daily challenge commands are stubs. They never touch the store and
// answer with fixed data flagged IsMock so the front end can exercise its
// screens. Real ranking and persistence are not implemented.

const (
	dateLayout = "2006-01-02"

	DefaultDailyLeaderboardLimit = 50
	MaxDailyLeaderboardLimit     = 100
)

type DailyChallengeLeaderboardParams struct {
	// Date is YYYY-MM-DD. Empty means today (UTC).
	Date  string `json:"date"`
	Limit *int   `json:"limit"`
}

// SubmitDailyChallenge acknowledges a finished daily challenge.
func (s *Service) SubmitDailyChallenge(ctx context.Context, submission puzzle.DailyChallengeSubmission) Response[puzzle.DailyChallengeResult] {
	if submission == nil {
		err := invalid("challenge data is required")
		logRejected("submit_daily_challenge", err)
		return Failure[puzzle.DailyChallengeResult](err)
	}

	perfect := submission.Bool("isPerfect")
	rewards := puzzle.DailyChallengeRewards{Coins: 50, Experience: 25}
	if perfect {
		rewards = puzzle.DailyChallengeRewards{Coins: 100, Experience: 50}
	}

	result := puzzle.DailyChallengeResult{
		GameID:             "daily_" + uuid.NewString(),
		ChallengeID:        submission.String("challengeId"),
		Score:              submission.Number("score"),
		Rewards:            rewards,
		IsNewRecord:        true,
		Rank:               1,
		LeaderboardUpdated: true,
		SubmittedAt:        s.timestamp(),
		IsMock:             true,
	}

	log.Info("Daily challenge %q submitted by %q with score %v (stub)", result.ChallengeID, submission.String("playerName"), result.Score)
	return Success(result)
}

func (p DailyChallengeLeaderboardParams) resolve(now time.Time) (string, int, error) {
	date := p.Date
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return "", 0, invalid("date must be formatted as YYYY-MM-DD, got %q", p.Date)
	}

	limit := DefaultDailyLeaderboardLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxDailyLeaderboardLimit {
		limit = MaxDailyLeaderboardLimit
	}
	return date, limit, nil
}

func mockDailyLeaderboard(date string) []puzzle.DailyChallengeLeaderboardEntry {
	return []puzzle.DailyChallengeLeaderboardEntry{
		{
			Rank:                     1,
			Date:                     date,
			PlayerName:               "Player B",
			Score:                    920,
			CompletionTime:           160,
			Moves:                    48,
			Difficulty:               puzzle.DifficultyHard,
			IsPerfect:                true,
			ConsecutiveDays:          10,
			TotalChallengesCompleted: 35,
			AverageScore:             820,
		},
		{
			Rank:                     2,
			Date:                     date,
			PlayerName:               "Player A",
			Score:                    850,
			CompletionTime:           180,
			Moves:                    52,
			Difficulty:               puzzle.DifficultyMedium,
			IsPerfect:                true,
			ConsecutiveDays:          5,
			TotalChallengesCompleted: 25,
			AverageScore:             780,
		},
	}
}

// GetDailyChallengeLeaderboard returns a fixed two-entry leaderboard for the
// requested date, truncated to the limit.
func (s *Service) GetDailyChallengeLeaderboard(ctx context.Context, params DailyChallengeLeaderboardParams) Response[puzzle.DailyChallengeLeaderboard] {
	now := s.timestamp()
	date, limit, err := params.resolve(now)
	if err != nil {
		logRejected("get_daily_challenge_leaderboard", err)
		return Failure[puzzle.DailyChallengeLeaderboard](err)
	}

	entries := mockDailyLeaderboard(date)
	total := len(entries)
	if limit < total {
		entries = entries[:limit]
	}

	return Success(puzzle.DailyChallengeLeaderboard{
		Date:        date,
		Leaderboard: entries,
		Pagination: puzzle.Pagination{
			Limit:   limit,
			Total:   total,
			HasMore: len(entries) < total,
		},
		LastUpdated: now,
		IsRealtime:  false,
		IsMock:      true,
	})
}

// GetDailyChallengeStats returns fixed statistics for the caller.
func (s *Service) GetDailyChallengeStats(ctx context.Context) Response[puzzle.DailyChallengeStats] {
	return Success(puzzle.DailyChallengeStats{
		TotalChallenges: 15,
		AverageScore:    820,
		ConsecutiveDays: 5,
		BestScore:       950,
		CompletionRate:  85.5,
		CurrentRank:     3,
		IsMock:          true,
	})
}
