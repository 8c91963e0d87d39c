// Actioncore runs a quest: a directory of Lua files describing a game,
// its maps and its event handlers.
// Usage: actioncore [--version] [--plain] [--script <file>] [--check] <quest_directory>
package main

import (
	"fmt"
	"os"

	"github.com/nathoo/actioncore/cli"
	"github.com/nathoo/actioncore/engine"
	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/loader"
	"github.com/nathoo/actioncore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	check := false
	plain := false
	var questDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("actioncore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--check":
			check = true
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if questDir == "" {
				questDir = args[i]
			}
		}
	}

	if questDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: actioncore [--version] [--plain] [--script <file>] [--check] <quest_directory>\n")
		os.Exit(1)
	}

	quest, err := loader.Load(questDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading quest: %v\n", err)
		os.Exit(1)
	}
	defer quest.Close()

	// Check mode: the quest loaded and validated, nothing to run.
	if check {
		fmt.Printf("%s: %d maps, ok\n", quest.Game.Title, len(quest.Maps))
		return
	}

	// Script mode: replay a command script against a manual clock.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		clk := clock.NewManual(0)
		g := newGame(quest, clk)
		r := cli.New(g, clk)
		r.In = f
		if err := r.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Plain mode: the script runner on stdin, for piped sessions.
	if plain || !isTerminal() {
		clk := clock.NewManual(0)
		g := newGame(quest, clk)
		r := cli.New(g, clk)
		if err := r.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g := newGame(quest, clock.NewMonotonic())
	if err := tui.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGame wires a session to the quest's Lua event handlers.
func newGame(quest *loader.Quest, src clock.Source) *engine.Game {
	g := engine.New(quest.Game, quest.Maps, src)
	g.SetErrorHandler(func(err error) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	})
	g.SetNotifier(quest.Sink(g.Errorf))
	return g
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
