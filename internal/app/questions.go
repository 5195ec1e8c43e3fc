package app

import "nzsc/internal/domain"

// QuestionKind identifies what the human is asked to choose.
type QuestionKind string

const (
	QuestionChooseCharacter QuestionKind = "choose_character"
	QuestionChooseBooster   QuestionKind = "choose_booster"
	QuestionChooseMove      QuestionKind = "choose_move"
)

// Question is a request for an Answer. The available options are the context
// the human needs to answer it.
type Question struct {
	Kind                QuestionKind       `json:"kind"`
	AvailableCharacters []domain.Character `json:"available_characters,omitempty"`
	AvailableBoosters   []domain.Booster   `json:"available_boosters,omitempty"`
	AvailableMoves      []domain.Move      `json:"available_moves,omitempty"`
}

// AnswerKind returns the kind of answer this question expects.
func (q Question) AnswerKind() AnswerKind {
	switch q.Kind {
	case QuestionChooseBooster:
		return AnswerBooster
	case QuestionChooseMove:
		return AnswerMove
	default:
		return AnswerCharacter
	}
}
