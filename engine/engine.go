// Package engine provides the Game session: it owns the current map, the
// hero, the equipment and the command state, and advances the whole
// simulation one tick at a time against a virtual clock.
package engine

import (
	"fmt"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/hero"
	"github.com/nathoo/actioncore/engine/world"
	"github.com/nathoo/actioncore/types"
)

// MapNotifier is the optional map-change part of the notification sink.
type MapNotifier interface {
	NotifyMapStarted(id, destination string)
}

// GameOverNotifier is the optional game-over part of the sink.
type GameOverNotifier interface {
	NotifyGameOverStarted()
}

// Game is one play session. It implements the hero's view of his
// environment and routes player inputs into the simulation.
type Game struct {
	def     *types.GameDef
	mapDefs map[string]*types.MapDef

	clock      clock.Source
	equipment  *Equipment
	commands   *Commands
	hero       *hero.Hero
	currentMap *world.Map

	sink hero.Notifier

	pendingTransport *world.Teletransporter

	suspended bool
	gameOver  bool

	errs    []error
	onError func(error)
}

// New creates a session from the loaded definitions. Nothing runs yet:
// attach a notification sink if any, then call Start.
func New(def *types.GameDef, mapDefs map[string]*types.MapDef, src clock.Source) *Game {
	g := &Game{
		def:       def,
		mapDefs:   mapDefs,
		clock:     src,
		equipment: NewEquipment(def),
		commands:  NewCommands(),
		sink:      nopNotifier{},
	}
	g.hero = hero.New(g)
	return g
}

// SetNotifier installs the notification sink, typically the quest
// script bridge. It must be called before Start.
func (g *Game) SetNotifier(sink hero.Notifier) {
	if sink == nil {
		sink = nopNotifier{}
	}
	g.sink = sink
}

// SetErrorHandler routes non-fatal anomalies to the given function
// instead of collecting them on the session.
func (g *Game) SetErrorHandler(f func(error)) { g.onError = f }

// Errors returns the anomalies collected so far, when no error handler
// is installed.
func (g *Game) Errors() []error { return g.errs }

// Start places the hero on the starting map of the game.
func (g *Game) Start() error {
	return g.startMap(g.def.StartMap, "")
}

func (g *Game) startMap(id, destination string) error {
	def, ok := g.mapDefs[id]
	if !ok {
		return fmt.Errorf("no map %q", id)
	}
	m, err := world.NewMap(def)
	if err != nil {
		return fmt.Errorf("starting map %q: %w", id, err)
	}
	g.currentMap = m
	if err := g.hero.PlaceOnDestination(destination); err != nil {
		return fmt.Errorf("starting map %q: %w", id, err)
	}
	if n, ok := g.sink.(MapNotifier); ok {
		n.NotifyMapStarted(id, destination)
	}
	return nil
}

// Update advances the session by one tick: a pending map change first,
// then the map entities, then the hero.
func (g *Game) Update() {
	if t := g.pendingTransport; t != nil {
		g.pendingTransport = nil
		g.applyTransport(t)
	}

	if !g.suspended {
		g.currentMap.Update(g.clock.Now())
	}
	g.hero.Update()
}

func (g *Game) applyTransport(t *world.Teletransporter) {
	id := t.MapID()
	if id == "" || id == g.currentMap.ID() {
		if err := g.hero.PlaceOnDestination(t.Destination()); err != nil {
			g.Errorf("teletransporter %q: %v", t.Name(), err)
		}
		return
	}
	if err := g.startMap(id, t.Destination()); err != nil {
		g.Errorf("teletransporter %q: %v", t.Name(), err)
	}
}

// IsSuspended reports whether the simulation is paused.
func (g *Game) IsSuspended() bool { return g.suspended }

// SetSuspended pauses or resumes the whole simulation.
func (g *Game) SetSuspended(suspended bool) {
	if suspended == g.suspended {
		return
	}
	g.suspended = suspended
	g.hero.SetSuspended(suspended)
}

// IsGameOver reports whether a game-over sequence is in progress.
func (g *Game) IsGameOver() bool { return g.gameOver }

// FinishGameOver ends the game-over sequence: life is restored and play
// resumes where the hero stands.
func (g *Game) FinishGameOver() {
	if !g.gameOver {
		return
	}
	g.gameOver = false
	g.equipment.SetLife(g.equipment.MaxLife())
	g.SetSuspended(false)
	g.hero.NotifyGameOverFinished()
}

// Press records a command press and routes it to the hero. Held-key
// repeats are filtered out.
func (g *Game) Press(c hero.Command) {
	if g.commands.Press(c) {
		g.hero.NotifyCommandPressed(c)
	}
}

// Release records a command release and routes it to the hero.
func (g *Game) Release(c hero.Command) {
	if g.commands.Release(c) {
		g.hero.NotifyCommandReleased(c)
	}
}

// Hero returns the hero of the session.
func (g *Game) Hero() *hero.Hero { return g.hero }

// Life returns the hero's current life points.
func (g *Game) Life() int { return g.equipment.Life() }

// MaxLife returns the hero's maximum life points.
func (g *Game) MaxLife() int { return g.equipment.MaxLife() }

// Title returns the game title.
func (g *Game) Title() string { return g.def.Title }

// --- the hero's environment ---

// Map returns the current map.
func (g *Game) Map() *world.Map { return g.currentMap }

// Now returns the session's virtual time in milliseconds.
func (g *Game) Now() int64 { return g.clock.Now() }

// Equipment returns the hero's view of the equipment.
func (g *Game) Equipment() hero.Equipment { return g.equipment }

// Commands returns the hero's view of the player inputs.
func (g *Game) Commands() hero.Commands { return g.commands }

// Notifier returns the notification sink.
func (g *Game) Notifier() hero.Notifier { return g.sink }

// StartGameOver begins the game-over sequence: the simulation suspends
// until FinishGameOver.
func (g *Game) StartGameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.SetSuspended(true)
	if n, ok := g.sink.(GameOverNotifier); ok {
		n.NotifyGameOverStarted()
	}
}

// Transport records a teletransporter activation; the map change is
// applied at the start of the next tick, outside the collision sweep.
func (g *Game) Transport(t *world.Teletransporter) {
	g.pendingTransport = t
}

// Errorf reports a non-fatal anomaly of the simulation or its content.
func (g *Game) Errorf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	if g.onError != nil {
		g.onError(err)
		return
	}
	g.errs = append(g.errs, err)
}

var _ hero.Env = (*Game)(nil)

// nopNotifier is the sink used when no quest script is attached.
type nopNotifier struct{}

func (nopNotifier) NotifyPositionChanged(int, int, world.Layer) {}
func (nopNotifier) NotifyGroundChanged(ground.Ground)           {}
func (nopNotifier) NotifyStateChanged(string)                   {}
func (nopNotifier) NotifyTreasureObtained(string)               {}
func (nopNotifier) NotifySensorActivated(string)                {}
func (nopNotifier) NotifySwitchActivated(string)                {}
