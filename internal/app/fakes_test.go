package app

import (
	"fmt"
	"slices"

	"nzsc/internal/domain"
)

// scriptedBrain replays fixed computer choices and panics if a choice is not
// currently available, so tests fail loudly on a wrong script.
type scriptedBrain struct {
	characters []domain.Character
	boosters   []domain.Booster
	moves      []domain.Move
}

func (b *scriptedBrain) ChooseCharacter(available []domain.Character) domain.Character {
	return next(&b.characters, available)
}

func (b *scriptedBrain) ChooseBooster(available []domain.Booster) domain.Booster {
	return next(&b.boosters, available)
}

func (b *scriptedBrain) ChooseMove(available []domain.Move) domain.Move {
	return next(&b.moves, available)
}

func next[T comparable](queue *[]T, available []T) T {
	if len(*queue) == 0 {
		panic("scripted brain ran out of choices")
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	if !slices.Contains(available, v) {
		panic(fmt.Sprintf("scripted choice %v not in %v", v, available))
	}
	return v
}

func fullParty(c domain.Character, b domain.Booster, points, waits uint8) domain.FullParty {
	return domain.FullParty{
		Tally:     domain.Tally{Points: points, Waits: waits},
		Character: c,
		Booster:   b,
	}
}

func kinds(notes []Notification) []NotificationKind {
	out := make([]NotificationKind, len(notes))
	for i, n := range notes {
		out[i] = n.Kind
	}
	return out
}
