package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseCharacterChoosing is the opening stage where both parties pick a character.
	PhaseCharacterChoosing Phase = "character_choosing"
	// PhaseBoosterChoosing follows once both characters are locked in.
	PhaseBoosterChoosing Phase = "booster_choosing"
	// PhaseMoveChoosing is the battle stage, repeated until someone wins.
	PhaseMoveChoosing Phase = "move_choosing"
	// PhaseGameOver indicates the match has finished.
	PhaseGameOver Phase = "game_over"
)

const (
	// PointsToWin is the score that ends a match.
	PointsToWin uint8 = 5
	// TiebreakPoints is the score both parties fall back to on a tie at or above PointsToWin.
	TiebreakPoints uint8 = 4
	// InitialWaits is the wait budget each party starts with.
	InitialWaits uint8 = 4
)
