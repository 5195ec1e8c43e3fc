package nakama

import (
	"context"
	"fmt"

	"nzsc/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
)

// LeaderboardRecordWriter is the subset of runtime.NakamaModule used to record results.
type LeaderboardRecordWriter interface {
	LeaderboardRecordWrite(ctx context.Context, id, ownerID, username string, score, subscore int64, metadata map[string]interface{}, overrideOperator *int) (*api.LeaderboardRecord, error)
}

// LeaderboardCreator is the subset of runtime.NakamaModule used at startup.
type LeaderboardCreator interface {
	LeaderboardCreate(ctx context.Context, id string, authoritative bool, sortOrder, operator, resetSchedule string, metadata map[string]interface{}, enableRanks bool) error
}

// NakamaLeaderboardAdapter implements ports.ResultsPort on a Nakama leaderboard.
// Each win adds one to the player's score and its margin to the subscore.
type NakamaLeaderboardAdapter struct {
	nk LeaderboardRecordWriter
	id string
}

// NewNakamaLeaderboardAdapter creates a results adapter writing to leaderboard id.
func NewNakamaLeaderboardAdapter(nk LeaderboardRecordWriter, id string) *NakamaLeaderboardAdapter {
	return &NakamaLeaderboardAdapter{nk: nk, id: id}
}

func (a *NakamaLeaderboardAdapter) RecordResult(ctx context.Context, result ports.MatchResult) error {
	if result.UserID == "" {
		return fmt.Errorf("result has no user id")
	}
	var score, subscore int64
	if result.HumanWon {
		score = 1
		subscore = int64(result.HumanPoints) - int64(result.ComputerPoints)
	}
	metadata := map[string]interface{}{
		"match_id":        result.MatchID,
		"human_points":    result.HumanPoints,
		"computer_points": result.ComputerPoints,
		"victory_term":    result.VictoryTerm,
		"seed":            result.Seed,
	}
	if _, err := a.nk.LeaderboardRecordWrite(ctx, a.id, result.UserID, result.Username, score, subscore, metadata, nil); err != nil {
		return fmt.Errorf("failed to write leaderboard record for user %s: %w", result.UserID, err)
	}
	return nil
}

// EnsureLeaderboard creates the wins leaderboard if it does not exist yet.
func EnsureLeaderboard(ctx context.Context, nk LeaderboardCreator, id string) error {
	metadata := map[string]interface{}{"game": "nzsc"}
	if err := nk.LeaderboardCreate(ctx, id, true, "desc", "incr", "", metadata, true); err != nil {
		return fmt.Errorf("failed to create leaderboard %s: %w", id, err)
	}
	return nil
}
