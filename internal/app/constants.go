package app

// Wait costs charged to the human for rejected selections.
// Keep them centralized so rule tables and tests agree on a single source.
const (
	WaitCostNonexistent    uint8 = 4
	WaitCostExhausted      uint8 = 4
	WaitCostStreak         uint8 = 3
	WaitCostWrongCharacter uint8 = 3
	WaitCostWrongBooster   uint8 = 2
)
