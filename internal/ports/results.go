package ports

import "context"

// MatchResult summarizes a finished match for persistence.
type MatchResult struct {
	MatchID        string
	UserID         string
	Username       string
	HumanPoints    uint8
	ComputerPoints uint8
	HumanWon       bool
	VictoryTerm    string
	Seed           uint32
}

// ResultsPort defines the interface for recording finished matches.
type ResultsPort interface {
	// RecordResult persists one finished match. Implementations must tolerate
	// being called for losses as well as wins.
	RecordResult(ctx context.Context, result MatchResult) error
}
