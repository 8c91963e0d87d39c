package hero

import (
	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/geom"
)

// Grabbing is the state while the hero holds the action command against
// a block. Releasing the command lets him go.
type Grabbing struct {
	baseState
}

// NewGrabbing creates the grabbing state.
func NewGrabbing(h *Hero) *Grabbing {
	return &Grabbing{newBaseState(h, "grabbing")}
}

func (s *Grabbing) Start(State) {
	s.hero.ClearMovement()
}

func (s *Grabbing) Update() {
	if s.suspended {
		return
	}
	if !s.hero.env.Commands().IsPressed(CommandAction) {
		s.hero.StartFree()
	}
}

func (s *Grabbing) CanBeHurt() bool { return true }

// liftingDuration is how long the lift animation plays before the hero
// carries the item.
const liftingDuration = 500

// Lifting is the state while the hero raises an item over his head.
type Lifting struct {
	timedState
	item string
}

// NewLifting creates the lifting state for the named item.
func NewLifting(h *Hero, item string) *Lifting {
	return &Lifting{
		timedState: timedState{baseState: newBaseState(h, "lifting")},
		item:       item,
	}
}

func (s *Lifting) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(liftingDuration)
}

func (s *Lifting) Update() {
	if s.isElapsed() {
		s.hero.SetState(NewCarrying(s.hero, s.item))
	}
}

// runningWarmup is the time spent gathering momentum before the run.
const runningWarmup = 300

// Running is the state while the hero charges straight ahead: a short
// warmup on the spot, then a fast straight movement until he hits an
// obstacle or releases the triggering command.
type Running struct {
	timedState
	command Command
	running bool
}

// NewRunning creates the running state, triggered by the given command.
func NewRunning(h *Hero, command Command) *Running {
	return &Running{
		timedState: timedState{baseState: newBaseState(h, "running")},
		command:    command,
	}
}

func (s *Running) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(runningWarmup)
}

func (s *Running) Stop(State) {
	s.hero.ClearMovement()
}

func (s *Running) Update() {
	if s.running || !s.isElapsed() {
		return
	}
	h := s.hero
	s.running = true
	m := movement.NewStraight(envClock{h.env}, h)
	m.SetDirection8(h.AnimationDirection() * 2)
	m.SetSpeed(float64(h.NormalWalkingSpeed() * 3))
	h.SetMovement(m)
}

func (s *Running) WantedMovementDirection8() int {
	if !s.running {
		return -1
	}
	return s.hero.AnimationDirection() * 2
}

func (s *Running) NotifyObstacleReached() {
	s.hero.StartFree()
}

func (s *Running) NotifyCommandReleased(c Command) {
	if c == s.command {
		s.hero.StartFree()
	}
}

func (s *Running) CanBeHurt() bool        { return true }
func (s *Running) CanTakeStairs() bool    { return true }
func (s *Running) IsDirectionLocked() bool { return true }

// Freezed is the inert state: no movement, no commands. Cutscenes and
// blocking streams use it; something else starts the next state.
type Freezed struct {
	baseState
	fromStream bool
}

// NewFreezed creates the freezed state.
func NewFreezed(h *Hero) *Freezed {
	return &Freezed{baseState: newBaseState(h, "freezed")}
}

// newStreamFreezed creates the freezed state a blocking stream imposes;
// the hero unfreezes himself when the stream action ends.
func newStreamFreezed(h *Hero) *Freezed {
	return &Freezed{baseState: newBaseState(h, "freezed"), fromStream: true}
}

func (s *Freezed) Start(State) {
	s.hero.ClearMovement()
}

// hurtDuration is the total time without control after a hit; the
// knockback movement only lasts for its first part.
const (
	hurtDuration          = 500
	hurtKnockbackDuration = 200
	hurtKnockbackSpeed    = 120
)

// Hurt is the state just after the hero took damage: life removed, a
// short knockback away from the source, and temporary invulnerability.
type Hurt struct {
	timedState
	source       geom.Point
	lifePoints   int
	knockbackEnd int64
}

// NewHurt creates the hurt state. source is where the damage came from;
// the knockback pushes away from it.
func NewHurt(h *Hero, source geom.Point, lifePoints int) *Hurt {
	return &Hurt{
		timedState: timedState{baseState: newBaseState(h, "hurt")},
		source:     source,
		lifePoints: lifePoints,
	}
}

func (s *Hurt) Start(State) {
	h := s.hero
	h.ClearMovement()
	h.stopIceMovement()
	h.env.Equipment().RemoveLife(s.lifePoints)

	s.startTimer(hurtDuration)
	s.knockbackEnd = h.env.Now() + hurtKnockbackDuration

	direction8 := geom.XYToDirection8(h.X()-s.source.X, h.Y()-s.source.Y)
	if direction8 != -1 {
		m := movement.NewStraight(envClock{h.env}, h)
		m.SetDirection8(direction8)
		m.SetSpeed(hurtKnockbackSpeed)
		h.SetMovement(m)
	}
}

func (s *Hurt) Stop(State) {
	s.hero.ClearMovement()
}

func (s *Hurt) Update() {
	if s.suspended {
		return
	}
	h := s.hero
	if h.Movement() != nil && h.env.Now() >= s.knockbackEnd {
		h.ClearMovement()
	}
	if s.isElapsed() {
		h.StartStateFromGround()
	}
}

func (s *Hurt) IsDirectionLocked() bool { return true }

// treasureDuration is how long the hero brandishes a treasure.
const treasureDuration = 1500

// Treasure is the state while the hero brandishes a treasure he just
// obtained.
type Treasure struct {
	timedState
	treasure string
}

// NewTreasure creates the brandishing state for the named treasure.
func NewTreasure(h *Hero, treasure string) *Treasure {
	return &Treasure{
		timedState: timedState{baseState: newBaseState(h, "treasure")},
		treasure:   treasure,
	}
}

// TreasureName returns the brandished treasure.
func (s *Treasure) TreasureName() string { return s.treasure }

func (s *Treasure) Start(State) {
	h := s.hero
	h.ClearMovement()
	s.startTimer(treasureDuration)
	h.env.Notifier().NotifyTreasureObtained(s.treasure)
}

func (s *Treasure) Update() {
	if s.isElapsed() {
		s.hero.StartFree()
	}
}

func (s *Treasure) CanStartGameOver() bool { return false }

// victoryDuration is how long the victory pose plays.
const victoryDuration = 1500

// Victory is the state while the hero plays the victory pose.
type Victory struct {
	timedState
}

// NewVictory creates the victory state.
func NewVictory(h *Hero) *Victory {
	return &Victory{timedState{baseState: newBaseState(h, "victory")}}
}

func (s *Victory) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(victoryDuration)
}

func (s *Victory) Update() {
	if s.isElapsed() {
		s.hero.StartFree()
	}
}

func (s *Victory) CanStartGameOver() bool { return false }

// Fixed busy times of the item states. The actual projectile or tool
// entity is owned by the session layer.
const (
	usingItemDuration = 500
	boomerangDuration = 300
	bowDuration       = 600
	hookshotDuration  = 800
)

// UsingItem is the state while an equipment item is being used.
type UsingItem struct {
	timedState
	item string
}

// NewUsingItem creates the state using the named item.
func NewUsingItem(h *Hero, item string) *UsingItem {
	return &UsingItem{
		timedState: timedState{baseState: newBaseState(h, "using item")},
		item:       item,
	}
}

// Item returns the item in use.
func (s *UsingItem) Item() string { return s.item }

func (s *UsingItem) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(usingItemDuration)
}

func (s *UsingItem) Update() {
	if s.isElapsed() {
		s.hero.StartFree()
	}
}

// Boomerang is the state while the hero throws the boomerang.
type Boomerang struct {
	timedState
}

// NewBoomerang creates the boomerang-throwing state.
func NewBoomerang(h *Hero) *Boomerang {
	return &Boomerang{timedState{baseState: newBaseState(h, "boomerang")}}
}

func (s *Boomerang) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(boomerangDuration)
}

func (s *Boomerang) Update() {
	if s.isElapsed() {
		s.hero.StartFree()
	}
}

func (s *Boomerang) CanBeHurt() bool { return true }

// Bow is the state while the hero shoots an arrow.
type Bow struct {
	timedState
}

// NewBow creates the bow state.
func NewBow(h *Hero) *Bow {
	return &Bow{timedState{baseState: newBaseState(h, "bow")}}
}

func (s *Bow) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(bowDuration)
}

func (s *Bow) Update() {
	if s.isElapsed() {
		s.hero.StartFree()
	}
}

func (s *Bow) CanBeHurt() bool { return true }

// Hookshot is the state while the hookshot is out.
type Hookshot struct {
	timedState
}

// NewHookshot creates the hookshot state.
func NewHookshot(h *Hero) *Hookshot {
	return &Hookshot{timedState{baseState: newBaseState(h, "hookshot")}}
}

func (s *Hookshot) Start(State) {
	s.hero.ClearMovement()
	s.startTimer(hookshotDuration)
}

func (s *Hookshot) Update() {
	if s.isElapsed() {
		s.hero.StartFree()
	}
}
