package bot

import "nzsc/internal/domain"

// Selector picks a uniformly distributed index in [0, maxInclusive].
type Selector interface {
	PickIndex(maxInclusive int) int
}

// Brain is the interface every computer strategy implements. Each method
// receives the options currently available to the computer, never empty.
type Brain interface {
	ChooseCharacter(available []domain.Character) domain.Character
	ChooseBooster(available []domain.Booster) domain.Booster
	ChooseMove(available []domain.Move) domain.Move
}
