package app

import (
	"errors"
	"fmt"

	"nzsc/internal/domain"
)

var (
	ErrPhaseMismatch     = errors.New("answer does not match match phase")
	ErrMatchInProgress   = errors.New("match already in progress")
	ErrUnknownAnswerKind = errors.New("unknown answer kind")
)

// ProtocolError is returned when an answer's kind does not fit the current
// phase. The engine state is left untouched.
type ProtocolError struct {
	Phase  domain.Phase
	Answer AnswerKind
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s answer not accepted during %s", e.Answer, e.Phase)
}

// Is lets errors.Is match ErrPhaseMismatch.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrPhaseMismatch
}
