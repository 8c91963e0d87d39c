// Package cli provides the headless script runner: it replays a
// deterministic command script against a manual clock and prints the
// simulation events the script causes. Scripts drive regression runs
// and quest debugging without a terminal UI.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nathoo/actioncore/engine"
	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/hero"
	"github.com/nathoo/actioncore/engine/save"
	"github.com/nathoo/actioncore/engine/world"
)

// Runner replays a command script against one game session.
//
// Script syntax, one command per line, '#' starts a comment:
//
//	press <command>      press action, attack, item_1, item_2,
//	                     right, up, left or down
//	release <command>    release a pressed command
//	wait <ms>            advance the clock, ticking the simulation
//	pause / resume       suspend or resume the simulation
//	retry                finish a game-over sequence
//	save <file>          write a session snapshot
//	load <file>          restore a session snapshot
//	state                print the hero's state name
//	pos                  print the hero's position and layer
//	ground               print the ground below the hero
//	life                 print the hero's life points
type Runner struct {
	Game  *engine.Game
	Clock *clock.Manual
	In    io.Reader
	Out   io.Writer

	// TickMs is the simulation step used by wait, in milliseconds.
	TickMs int64
}

// New creates a runner reading from stdin and writing to stdout.
func New(g *engine.Game, clk *clock.Manual) *Runner {
	return &Runner{
		Game:   g,
		Clock:  clk,
		In:     os.Stdin,
		Out:    os.Stdout,
		TickMs: 10,
	}
}

// Run starts the session and replays the script until the input is
// exhausted or a line fails.
func (r *Runner) Run() error {
	r.Game.SetNotifier(&printNotifier{runner: r, next: r.Game.Notifier()})
	if err := r.Game.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r.In)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		if err := r.exec(strings.Fields(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func (r *Runner) exec(fields []string) error {
	switch fields[0] {
	case "press", "release":
		if len(fields) != 2 {
			return fmt.Errorf("%s takes one command name", fields[0])
		}
		c, err := parseCommand(fields[1])
		if err != nil {
			return err
		}
		if fields[0] == "press" {
			r.Game.Press(c)
		} else {
			r.Game.Release(c)
		}

	case "wait":
		if len(fields) != 2 {
			return fmt.Errorf("wait takes a duration in ms")
		}
		ms, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || ms < 0 {
			return fmt.Errorf("bad duration %q", fields[1])
		}
		r.wait(ms)

	case "pause":
		r.Game.SetSuspended(true)

	case "resume":
		r.Game.SetSuspended(false)

	case "retry":
		r.Game.FinishGameOver()

	case "save":
		if len(fields) != 2 {
			return fmt.Errorf("save takes a file path")
		}
		data, err := save.Marshal(r.Game.Capture())
		if err != nil {
			return err
		}
		if err := os.WriteFile(fields[1], data, 0o644); err != nil {
			return err
		}

	case "load":
		if len(fields) != 2 {
			return fmt.Errorf("load takes a file path")
		}
		data, err := os.ReadFile(fields[1])
		if err != nil {
			return err
		}
		d, err := save.Unmarshal(data)
		if err != nil {
			return err
		}
		if err := r.Game.Restore(d); err != nil {
			return err
		}

	case "state":
		r.printf("state %s\n", r.Game.Hero().StateName())

	case "pos":
		h := r.Game.Hero()
		r.printf("pos %d,%d %v\n", h.X(), h.Y(), h.Layer())

	case "ground":
		r.printf("ground %v\n", r.Game.Hero().GroundBelow())

	case "life":
		r.printf("life %d/%d\n", r.Game.Life(), r.Game.MaxLife())

	default:
		return fmt.Errorf("unknown script command %q", fields[0])
	}
	return nil
}

// wait advances the clock in TickMs steps, updating the simulation
// after each step so timed behaviors fire in order.
func (r *Runner) wait(ms int64) {
	for ms > 0 {
		step := r.TickMs
		if step > ms {
			step = ms
		}
		r.Clock.Advance(step)
		r.Game.Update()
		ms -= step
	}
}

func (r *Runner) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, format, args...)
}

// eventf prints a timestamped simulation event.
func (r *Runner) eventf(format string, args ...interface{}) {
	fmt.Fprintf(r.Out, "@%d %s\n", r.Clock.Now(), fmt.Sprintf(format, args...))
}

func parseCommand(name string) (hero.Command, error) {
	for _, c := range []hero.Command{
		hero.CommandAction, hero.CommandAttack,
		hero.CommandItem1, hero.CommandItem2,
		hero.CommandRight, hero.CommandUp,
		hero.CommandLeft, hero.CommandDown,
	} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// printNotifier prints the interesting simulation events as they
// happen, then forwards them to the sink installed before it.
type printNotifier struct {
	runner *Runner
	next   hero.Notifier
}

func (n *printNotifier) NotifyPositionChanged(x, y int, layer world.Layer) {
	n.next.NotifyPositionChanged(x, y, layer)
}

func (n *printNotifier) NotifyGroundChanged(g ground.Ground) {
	n.runner.eventf("ground %v", g)
	n.next.NotifyGroundChanged(g)
}

func (n *printNotifier) NotifyStateChanged(name string) {
	n.runner.eventf("state %s", name)
	n.next.NotifyStateChanged(name)
}

func (n *printNotifier) NotifyTreasureObtained(treasure string) {
	n.runner.eventf("treasure %s", treasure)
	n.next.NotifyTreasureObtained(treasure)
}

func (n *printNotifier) NotifySensorActivated(name string) {
	n.runner.eventf("sensor %s", name)
	n.next.NotifySensorActivated(name)
}

func (n *printNotifier) NotifySwitchActivated(name string) {
	n.runner.eventf("switch %s", name)
	n.next.NotifySwitchActivated(name)
}

func (n *printNotifier) NotifySeparatorCrossed(name string) {
	n.runner.eventf("separator %s", name)
	if sep, ok := n.next.(hero.SeparatorNotifier); ok {
		sep.NotifySeparatorCrossed(name)
	}
}

func (n *printNotifier) NotifyMapStarted(id, destination string) {
	n.runner.eventf("map %s", id)
	if mn, ok := n.next.(engine.MapNotifier); ok {
		mn.NotifyMapStarted(id, destination)
	}
}

func (n *printNotifier) NotifyGameOverStarted() {
	n.runner.eventf("game_over")
	if gn, ok := n.next.(engine.GameOverNotifier); ok {
		gn.NotifyGameOverStarted()
	}
}
