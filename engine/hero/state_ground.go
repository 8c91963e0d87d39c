package hero

import (
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/engine/world"
	"github.com/nathoo/actioncore/geom"
)

// timedState is the common part of the states that end after a fixed
// duration. Suspension postpones the end date by the suspended time.
type timedState struct {
	baseState
	endDate       int64
	whenSuspended int64
}

func (s *timedState) startTimer(duration int64) {
	s.endDate = s.hero.env.Now() + duration
}

func (s *timedState) SetSuspended(suspended bool) {
	if suspended == s.suspended {
		return
	}
	s.baseState.SetSuspended(suspended)
	now := s.hero.env.Now()
	if suspended {
		s.whenSuspended = now
	} else {
		s.endDate += now - s.whenSuspended
	}
}

func (s *timedState) isElapsed() bool {
	return !s.suspended && s.hero.env.Now() >= s.endDate
}

// fallingDuration is how long the fall animation plays before its
// consequences apply.
const fallingDuration = 700

// Falling is the state while the hero falls into a hole. When the fall
// ends he is either teleported (a transporter was waiting under the
// hole) or hurt and brought back to solid ground.
type Falling struct {
	timedState
}

// NewFalling creates the falling state.
func NewFalling(h *Hero) *Falling {
	return &Falling{timedState{baseState: newBaseState(h, "falling")}}
}

func (s *Falling) Start(State) {
	h := s.hero
	h.ClearMovement()
	h.stopIceMovement()
	s.startTimer(fallingDuration)
}

func (s *Falling) Update() {
	if !s.isElapsed() {
		return
	}
	h := s.hero
	if t := h.DelayedTeletransporter(); t != nil {
		h.ClearDelayedTeletransporter()
		h.env.Transport(t)
		return
	}
	h.env.Equipment().RemoveLife(1)
	h.StartBackToSolidGround(true, 0)
}

func (s *Falling) IsTouchingGround() bool         { return false }
func (s *Falling) CanComeFromBadGround() bool     { return false }
func (s *Falling) CanAvoidHole() bool             { return true }
func (s *Falling) CanAvoidIce() bool              { return true }
func (s *Falling) IsTeletransporterDelayed() bool { return true }

// plungingDuration is how long the splash plays before its consequences
// apply.
const plungingDuration = 1300

// Plunging is the state just after the hero hits deep water or lava
// without control: a splash, then swimming, damage or both.
type Plunging struct {
	timedState
}

// NewPlunging creates the plunging state.
func NewPlunging(h *Hero) *Plunging {
	return &Plunging{timedState{baseState: newBaseState(h, "plunging")}}
}

func (s *Plunging) Start(State) {
	s.hero.ClearMovement()
	s.hero.stopIceMovement()
	s.startTimer(plungingDuration)
}

func (s *Plunging) Update() {
	if !s.isElapsed() {
		return
	}
	h := s.hero
	switch h.GroundBelow() {
	case ground.DeepWater:
		if h.env.Equipment().HasAbility("swim") {
			h.SetState(NewSwimming(h))
			return
		}
		h.env.Equipment().RemoveLife(1)
		h.StartBackToSolidGround(false, 0)

	case ground.Lava:
		h.env.Equipment().RemoveLife(4)
		h.StartBackToSolidGround(false, 0)

	default:
		// The water moved away (or a script changed the ground) while
		// the splash played.
		h.StartFreeOrCarrying()
	}
}

func (s *Plunging) IsTouchingGround() bool     { return false }
func (s *Plunging) CanComeFromBadGround() bool { return false }
func (s *Plunging) CanAvoidDeepWater() bool    { return true }
func (s *Plunging) CanAvoidLava() bool         { return true }

// backToSolidGroundSpeed is the travel speed back to the safe position,
// in pixels per second.
const backToSolidGroundSpeed = 144

// BackToSolidGround flies the hero back to his last safe position (or
// the position a script memorized), ignoring every obstacle and detector
// on the way.
type BackToSolidGround struct {
	timedState
	useMemorized bool
	endDelay     int64
	target       geom.Point
	arrived      bool
}

// NewBackToSolidGround creates the state. With useMemorized, the
// memorized target position is preferred over the last solid ground;
// endDelay delays the return of control after arrival.
func NewBackToSolidGround(h *Hero, useMemorized bool, endDelay int64) *BackToSolidGround {
	return &BackToSolidGround{
		timedState:   timedState{baseState: newBaseState(h, "back to solid ground")},
		useMemorized: useMemorized,
		endDelay:     endDelay,
	}
}

func (s *BackToSolidGround) Start(State) {
	h := s.hero

	target, layer := h.targetSolidGround, h.targetSolidLayer
	if !s.useMemorized || target.X == -1 {
		target, layer = h.lastSolidGround, h.lastSolidLayer
	}
	if target.X == -1 {
		// The hero never stood on solid ground on this map.
		h.StartFree()
		return
	}
	s.target = target

	h.SetLayer(layer)
	h.SetMovement(movement.NewTarget(envClock{h.env}, h, target.X, target.Y,
		backToSolidGroundSpeed, true))
}

func (s *BackToSolidGround) Stop(State) {
	s.hero.ClearMovement()
}

func (s *BackToSolidGround) Update() {
	h := s.hero
	if !s.arrived {
		m := h.Movement()
		if m == nil || !m.IsFinished() {
			return
		}
		h.ClearMovement()
		s.arrived = true
		s.startTimer(s.endDelay)
	}
	if s.isElapsed() {
		h.updateGroundBelow()
		h.StartStateFromGround()
	}
}

func (s *BackToSolidGround) IsTouchingGround() bool       { return false }
func (s *BackToSolidGround) AreCollisionsIgnored() bool   { return true }
func (s *BackToSolidGround) CanComeFromBadGround() bool   { return false }
func (s *BackToSolidGround) CanStartGameOver() bool       { return false }
func (s *BackToSolidGround) CanAvoidDeepWater() bool      { return true }
func (s *BackToSolidGround) CanAvoidHole() bool           { return true }
func (s *BackToSolidGround) CanAvoidIce() bool            { return true }
func (s *BackToSolidGround) CanAvoidLava() bool           { return true }
func (s *BackToSolidGround) CanAvoidPrickle() bool        { return true }
func (s *BackToSolidGround) CanAvoidTeletransporter() bool { return true }
func (s *BackToSolidGround) CanAvoidConveyorBelt() bool   { return true }
func (s *BackToSolidGround) CanAvoidSensor() bool         { return true }
func (s *BackToSolidGround) CanAvoidSwitch() bool         { return true }
func (s *BackToSolidGround) CanAvoidExplosion() bool      { return true }
func (s *BackToSolidGround) CanAvoidStream(*world.Stream) bool { return true }
