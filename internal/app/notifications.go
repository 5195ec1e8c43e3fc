package app

import "nzsc/internal/domain"

// NotificationKind classifies what happened during a step.
type NotificationKind string

const (
	NotificationCharacterSelectionAndHeadstart   NotificationKind = "character_selection_and_headstart"
	NotificationSameCharacterSelection           NotificationKind = "same_character_selection"
	NotificationCharacterNonexistentPenalty      NotificationKind = "character_nonexistent_penalty"
	NotificationCharacterThreeTimesInARowPenalty NotificationKind = "character_three_times_in_a_row_penalty"
	NotificationBoosterSelection                 NotificationKind = "booster_selection"
	NotificationBoosterNonexistentPenalty        NotificationKind = "booster_nonexistent_penalty"
	NotificationBoosterFromWrongCharacterPenalty NotificationKind = "booster_from_wrong_character_penalty"
	NotificationMoveSelectionAndOutcome          NotificationKind = "move_selection_and_outcome"
	NotificationMoveNonexistentPenalty           NotificationKind = "move_nonexistent_penalty"
	NotificationMoveThreeTimesInARowPenalty      NotificationKind = "move_three_times_in_a_row_penalty"
	NotificationMoveFromWrongCharacterPenalty    NotificationKind = "move_from_wrong_character_penalty"
	NotificationMoveFromWrongBoosterPenalty      NotificationKind = "move_from_wrong_booster_penalty"
	NotificationMoveSingleUsePenalty             NotificationKind = "move_single_use_penalty"
	NotificationMoveDestroyedPenalty             NotificationKind = "move_destroyed_penalty"
	NotificationScoreUpdate                      NotificationKind = "score_update"
	NotificationTiebreakingScoreSetback          NotificationKind = "tiebreaking_score_setback"
	NotificationGameOver                         NotificationKind = "game_over"
)

// Notification is a single event emitted by a step, in emission order.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Payload any              `json:"payload"`
}

// WhoGetsTheHeadstart names the beneficiary of a character pairing.
type WhoGetsTheHeadstart string

const (
	HeadstartNeither      WhoGetsTheHeadstart = "neither"
	HeadstartJustComputer WhoGetsTheHeadstart = "just_computer"
	HeadstartJustHuman    WhoGetsTheHeadstart = "just_human"
)

// WhoGetsThePoint names who scored in a move exchange.
type WhoGetsThePoint string

const (
	PointNeither      WhoGetsThePoint = "neither"
	PointJustComputer WhoGetsThePoint = "just_computer"
	PointJustHuman    WhoGetsThePoint = "just_human"
	PointBoth         WhoGetsThePoint = "both"
)

// Winner of a finished match.
type Winner string

const (
	WinnerHuman    Winner = "human"
	WinnerComputer Winner = "computer"
)

type CharacterSelectionAndHeadstartPayload struct {
	HumanCharacter      domain.Character    `json:"human_character"`
	ComputerCharacter   domain.Character    `json:"computer_character"`
	WhoGetsTheHeadstart WhoGetsTheHeadstart `json:"who_gets_the_headstart"`
}

type SameCharacterSelectionPayload struct {
	BothCharacter domain.Character `json:"both_character"`
	HumanTimes    uint8            `json:"human_times"`
	ComputerTimes uint8            `json:"computer_times"`
}

// NonexistentPenaltyPayload is shared by the three nonexistent-name penalties.
type NonexistentPenaltyPayload struct {
	AttemptedName string `json:"attempted_name"`
	WaitCost      uint8  `json:"wait_cost"`
}

type CharacterPenaltyPayload struct {
	AttemptedCharacter domain.Character `json:"attempted_character"`
	WaitCost           uint8            `json:"wait_cost"`
}

type BoosterPenaltyPayload struct {
	AttemptedBooster domain.Booster `json:"attempted_booster"`
	WaitCost         uint8          `json:"wait_cost"`
}

// MovePenaltyPayload is shared by every move rule penalty; the notification
// kind says which rule fired.
type MovePenaltyPayload struct {
	AttemptedMove domain.Move `json:"attempted_move"`
	WaitCost      uint8       `json:"wait_cost"`
}

type BoosterSelectionPayload struct {
	HumanBooster    domain.Booster `json:"human_booster"`
	ComputerBooster domain.Booster `json:"computer_booster"`
}

type MoveSelectionAndOutcomePayload struct {
	HumanMove       domain.Move     `json:"human_move"`
	ComputerMove    domain.Move     `json:"computer_move"`
	WhoGetsThePoint WhoGetsThePoint `json:"who_gets_the_point"`
}

type ScoreUpdatePayload struct {
	HumanPoints    uint8 `json:"human_points"`
	ComputerPoints uint8 `json:"computer_points"`
}

type TiebreakingScoreSetbackPayload struct {
	BothPoints uint8 `json:"both_points"`
}

type GameOverPayload struct {
	HumanPoints    uint8  `json:"human_points"`
	ComputerPoints uint8  `json:"computer_points"`
	Winner         Winner `json:"winner"`
	VictoryTerm    string `json:"victory_term"`
}

func notify(kind NotificationKind, payload any) Notification {
	return Notification{Kind: kind, Payload: payload}
}
