package main

import (
	"bytes"
	"testing"
)

func TestExitf(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevErr, prevExit := stderr, osExit
	stderr, osExit = &buf, func(c int) { code = c }
	t.Cleanup(func() { stderr, osExit = prevErr, prevExit })

	exitf("play: %v", "broken")
	if code != 1 || buf.String() != "play: broken\n" {
		t.Fatalf("exit code %d, output %q", code, buf.String())
	}
}
