package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"nzsc/internal/app"
)

var errQuit = errors.New("input closed before the match ended")

// play drives e from line-based input until the match is over.
func play(e *app.Engine, in io.Reader, out io.Writer, opponent string) error {
	r := &renderer{w: out, opponent: opponent}
	o, err := e.InitialOutput()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		r.output(o)
		if o.Finished() {
			return nil
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return errQuit
		}

		answer, err := app.ParseAnswer(e.Catalog(), o.Question.AnswerKind(), scanner.Text())
		if err != nil {
			return err
		}
		next, err := e.Apply(answer)
		if err != nil {
			return err
		}
		o = next
	}
}
