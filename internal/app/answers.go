package app

import (
	"fmt"

	"nzsc/internal/domain"
)

// AnswerKind identifies which question an answer responds to.
type AnswerKind string

const (
	AnswerCharacter AnswerKind = "character"
	AnswerBooster   AnswerKind = "booster"
	AnswerMove      AnswerKind = "move"
)

// Answer is the human's response to a Question. When Nonexistent is set the
// typed Name did not resolve to anything in the catalog.
type Answer struct {
	Kind        AnswerKind       `json:"kind"`
	Character   domain.Character `json:"character,omitempty"`
	Booster     domain.Booster   `json:"booster,omitempty"`
	Move        domain.Move      `json:"move,omitempty"`
	Nonexistent bool             `json:"nonexistent,omitempty"`
	Name        string           `json:"name,omitempty"`
}

func CharacterAnswer(c domain.Character) Answer {
	return Answer{Kind: AnswerCharacter, Character: c}
}

func BoosterAnswer(b domain.Booster) Answer {
	return Answer{Kind: AnswerBooster, Booster: b}
}

func MoveAnswer(m domain.Move) Answer {
	return Answer{Kind: AnswerMove, Move: m}
}

// NonexistentAnswer reports a name that does not resolve for the given kind.
func NonexistentAnswer(kind AnswerKind, name string) Answer {
	return Answer{Kind: kind, Nonexistent: true, Name: name}
}

// ParseAnswer resolves user text into an answer of the given kind. Unknown
// names produce the Nonexistent variant; only an unknown kind is an error.
func ParseAnswer(cat domain.Catalog, kind AnswerKind, text string) (Answer, error) {
	switch kind {
	case AnswerCharacter:
		if c, ok := domain.ParseCharacter(cat, text); ok {
			return CharacterAnswer(c), nil
		}
	case AnswerBooster:
		if b, ok := domain.ParseBooster(cat, text); ok {
			return BoosterAnswer(b), nil
		}
	case AnswerMove:
		if m, ok := domain.ParseMove(cat, text); ok {
			return MoveAnswer(m), nil
		}
	default:
		return Answer{}, fmt.Errorf("%w: %q", ErrUnknownAnswerKind, kind)
	}
	return NonexistentAnswer(kind, text), nil
}
