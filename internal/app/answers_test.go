package app

import (
	"errors"
	"testing"

	"nzsc/internal/domain"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name string
		kind AnswerKind
		text string
		want Answer
	}{
		{name: "Character", kind: AnswerCharacter, text: "ninja", want: CharacterAnswer(domain.Ninja)},
		{name: "BoosterWithSpaces", kind: AnswerBooster, text: " zombie corns ", want: BoosterAnswer(domain.Zombiecorns)},
		{name: "MoveMixedCase", kind: AnswerMove, text: "Shadow Fireball", want: MoveAnswer(domain.ShadowFireball)},
		{name: "UnknownCharacter", kind: AnswerCharacter, text: "Pirate", want: NonexistentAnswer(AnswerCharacter, "Pirate")},
		{name: "MoveAsCharacter", kind: AnswerCharacter, text: "Kick", want: NonexistentAnswer(AnswerCharacter, "Kick")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswer(domain.Standard, tt.kind, tt.text)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("answer = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseAnswerUnknownKind(t *testing.T) {
	if _, err := ParseAnswer(domain.Standard, "spell", "Kick"); !errors.Is(err, ErrUnknownAnswerKind) {
		t.Fatalf("err = %v, want ErrUnknownAnswerKind", err)
	}
}

func TestQuestionAnswerKind(t *testing.T) {
	tests := map[QuestionKind]AnswerKind{
		QuestionChooseCharacter: AnswerCharacter,
		QuestionChooseBooster:   AnswerBooster,
		QuestionChooseMove:      AnswerMove,
	}
	for q, want := range tests {
		if got := (Question{Kind: q}).AnswerKind(); got != want {
			t.Errorf("%s answer kind = %s, want %s", q, got, want)
		}
	}
}
