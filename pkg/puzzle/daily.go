package puzzle

import "time"

// DailyChallengeSubmission is the freeform object a client submits when it
// finishes a daily challenge. Only a few keys are read by the backend.
type DailyChallengeSubmission map[string]interface{}

func (s DailyChallengeSubmission) String(key string) string {
	v, _ := s[key].(string)
	return v
}

func (s DailyChallengeSubmission) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// Number reads a numeric key. JSON numbers decode as float64.
func (s DailyChallengeSubmission) Number(key string) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

type DailyChallengeRewards struct {
	Coins      int `json:"coins"`
	Experience int `json:"experience"`
}

type DailyChallengeResult struct {
	GameID             string                `json:"gameId"`
	ChallengeID        string                `json:"challengeId,omitempty"`
	Score              float64               `json:"score"`
	Rewards            DailyChallengeRewards `json:"rewards"`
	IsNewRecord        bool                  `json:"isNewRecord"`
	Rank               int                   `json:"rank"`
	LeaderboardUpdated bool                  `json:"leaderboardUpdated"`
	SubmittedAt        time.Time             `json:"submittedAt"`
	IsMock             bool                  `json:"isMock"`
}

type DailyChallengeLeaderboardEntry struct {
	Rank                     int             `json:"rank"`
	Date                     string          `json:"date"`
	PlayerName               string          `json:"playerName"`
	Score                    int             `json:"score"`
	CompletionTime           uint64          `json:"completionTime"`
	Moves                    uint32          `json:"moves"`
	Difficulty               DifficultyLevel `json:"difficulty"`
	IsPerfect                bool            `json:"isPerfect"`
	ConsecutiveDays          int             `json:"consecutiveDays"`
	TotalChallengesCompleted int             `json:"totalChallengesCompleted"`
	AverageScore             int             `json:"averageScore"`
}

type Pagination struct {
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

type DailyChallengeLeaderboard struct {
	Date        string                           `json:"date"`
	Leaderboard []DailyChallengeLeaderboardEntry `json:"leaderboard"`
	Pagination  Pagination                       `json:"pagination"`
	UserRank    *int                             `json:"userRank,omitempty"`
	LastUpdated time.Time                        `json:"lastUpdated"`
	IsRealtime  bool                             `json:"isRealtime"`
	IsMock      bool                             `json:"isMock"`
}

type DailyChallengeStats struct {
	TotalChallenges int     `json:"totalChallenges"`
	AverageScore    int     `json:"averageScore"`
	ConsecutiveDays int     `json:"consecutiveDays"`
	BestScore       int     `json:"bestScore"`
	CompletionRate  float64 `json:"completionRate"`
	CurrentRank     int     `json:"currentRank"`
	IsMock          bool    `json:"isMock"`
}
