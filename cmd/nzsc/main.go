// Package main runs an NZSC match against the computer in the terminal.
//
// Configuration comes from the environment: NZSC_SEED replays a known match,
// NZSC_PERSONA and NZSC_PERSONAS pick the computer's persona.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"nzsc/internal/app"
	"nzsc/internal/bot"
	"nzsc/internal/config"
	"nzsc/internal/random"
)

func main() {
	var cfg config.ClientConfig
	if err := config.ParseEnv(&cfg); err != nil {
		exitf("%v", err)
	}
	showSeed := flag.Bool("show-seed", false, "print the match seed before playing")
	flag.Parse()

	seed, ok, err := cfg.FixedSeed()
	if err != nil {
		exitf("%v", err)
	}
	if !ok {
		if seed, err = random.NewSeed(); err != nil {
			exitf("generate seed: %v", err)
		}
	}

	if err := bot.LoadPersonas(cfg.PersonasPath); err != nil {
		fmt.Fprintf(os.Stderr, "personas unavailable: %v\n", err)
	}
	opponent := bot.NewAgent(cfg.Persona, random.New(seed))
	engine := app.New(seed, app.WithBrain(opponent.Brain))

	if *showSeed {
		fmt.Printf("Seed: %d\n", seed)
	}
	if err := play(engine, os.Stdin, os.Stdout, opponent.Name()); err != nil {
		if errors.Is(err, errQuit) {
			fmt.Printf("\nMatch abandoned. Seed was %d.\n", seed)
			return
		}
		exitf("play: %v", err)
	}
	fmt.Printf("Seed was %d.\n", seed)
}
