package main

import (
	"fmt"
	"io"
	"os"
)

var (
	stderr io.Writer = os.Stderr
	osExit           = os.Exit
)

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	osExit(1)
}
