package bot

import (
	"fmt"

	"nzsc/internal/domain"
)

// UniformBrain picks uniformly among the available options.
type UniformBrain struct {
	sel Selector
}

func NewUniformBrain(sel Selector) *UniformBrain {
	return &UniformBrain{sel: sel}
}

func (b *UniformBrain) ChooseCharacter(available []domain.Character) domain.Character {
	return pick(b.sel, "character", available)
}

func (b *UniformBrain) ChooseBooster(available []domain.Booster) domain.Booster {
	return pick(b.sel, "booster", available)
}

func (b *UniformBrain) ChooseMove(available []domain.Move) domain.Move {
	return pick(b.sel, "move", available)
}

func pick[T any](sel Selector, what string, options []T) T {
	if len(options) == 0 {
		panic(fmt.Sprintf("bot: no %s available to choose from", what))
	}
	return options[sel.PickIndex(len(options)-1)]
}
