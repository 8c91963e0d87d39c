package hero

import (
	"strings"

	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/engine/world"
)

// stairsSpeed is the walking speed on stairs, in pixels per second.
const stairsSpeed = 44

// stairsElements is the path length of a stairs crossing: the 16-pixel
// stairs plus one clearance element on each side.
const stairsElements = 4

// Stairs is the state while the hero takes some stairs: a forced slow
// walk across them, immune to everything, with the layer change applied
// for inside-floor stairs.
type Stairs struct {
	baseState
	stairs *world.Stairs
	way    world.StairsWay
}

// NewStairs creates the state taking the given stairs the given way.
func NewStairs(h *Hero, stairs *world.Stairs, way world.StairsWay) *Stairs {
	return &Stairs{
		baseState: newBaseState(h, "stairs"),
		stairs:    stairs,
		way:       way,
	}
}

func (s *Stairs) Start(State) {
	h := s.hero

	direction8 := s.stairs.MovementDirection8(s.way)
	if direction8%2 == 0 {
		h.SetAnimationDirection(direction8 / 2)
	}

	if s.stairs.IsInsideFloor() {
		if s.way == world.StairsNormalWay {
			h.SetLayer(s.stairs.Layer() + 1)
		} else {
			h.SetLayer(s.stairs.Layer())
		}
	}

	path := strings.Repeat(string(rune('0'+direction8)), stairsElements)
	m, err := movement.NewPath(envClock{h.env}, h, path, stairsSpeed, false, true)
	if err != nil {
		h.env.Errorf("hero cannot take stairs %q: %v", s.stairs.Name(), err)
		h.StartFree()
		return
	}
	h.SetMovement(m)
}

func (s *Stairs) Stop(State) {
	s.hero.ClearMovement()
}

func (s *Stairs) Update() {
	if s.suspended {
		return
	}
	h := s.hero
	if m := h.Movement(); m == nil || m.IsFinished() {
		h.StartFreeOrCarrying()
	}
}

// Collisions are ignored during the crossing: the layer has already
// changed for inside-floor stairs but the hero's feet have not, so the
// terrain under him is meaningless until he steps off.
func (s *Stairs) AreCollisionsIgnored() bool { return true }

func (s *Stairs) IsDirectionLocked() bool         { return true }
func (s *Stairs) CanAvoidDeepWater() bool         { return true }
func (s *Stairs) CanAvoidHole() bool              { return true }
func (s *Stairs) CanAvoidIce() bool               { return true }
func (s *Stairs) CanAvoidLava() bool              { return true }
func (s *Stairs) CanAvoidPrickle() bool           { return true }
func (s *Stairs) CanAvoidTeletransporter() bool   { return true }
func (s *Stairs) CanAvoidConveyorBelt() bool      { return true }
func (s *Stairs) CanAvoidExplosion() bool         { return true }

func (s *Stairs) CanAvoidStream(*world.Stream) bool { return true }

// ConveyorBelt is the state while a belt carries the hero: one forced
// 8-pixel hop in the belt's direction. Landing on the belt again starts
// another hop, so the hero crosses it in a sequence of short states.
type ConveyorBelt struct {
	baseState
	belt *world.ConveyorBelt
}

// NewConveyorBelt creates the state for one hop on the given belt.
func NewConveyorBelt(h *Hero, belt *world.ConveyorBelt) *ConveyorBelt {
	return &ConveyorBelt{
		baseState: newBaseState(h, "conveyor belt"),
		belt:      belt,
	}
}

// Belt returns the belt carrying the hero.
func (s *ConveyorBelt) Belt() *world.ConveyorBelt { return s.belt }

func (s *ConveyorBelt) Start(State) {
	h := s.hero
	path := string(rune('0' + s.belt.Direction()))
	m, err := movement.NewPath(envClock{h.env}, h, path, 64, false, false)
	if err != nil {
		h.env.Errorf("conveyor belt %q has invalid direction %d", s.belt.Name(), s.belt.Direction())
		h.StartFree()
		return
	}
	h.SetMovement(m)
}

func (s *ConveyorBelt) Stop(State) {
	s.hero.ClearMovement()
}

func (s *ConveyorBelt) Update() {
	if s.suspended {
		return
	}
	h := s.hero
	if m := h.Movement(); m == nil || m.IsFinished() {
		h.StartFreeOrCarrying()
	}
}

func (s *ConveyorBelt) CanAvoidConveyorBelt() bool { return true }
func (s *ConveyorBelt) CanAvoidSensor() bool       { return true }

// ForcedWalking is a scripted walk: the hero follows a fixed path,
// possibly looping, with no control and no terrain consequences.
type ForcedWalking struct {
	baseState
	path            string
	loop            bool
	ignoreObstacles bool
}

// NewForcedWalking creates the state walking the given path of
// direction digits '0'..'7'.
func NewForcedWalking(h *Hero, path string, loop, ignoreObstacles bool) *ForcedWalking {
	return &ForcedWalking{
		baseState:       newBaseState(h, "forced walking"),
		path:            path,
		loop:            loop,
		ignoreObstacles: ignoreObstacles,
	}
}

func (s *ForcedWalking) Start(State) {
	h := s.hero
	m, err := movement.NewPath(envClock{h.env}, h, s.path,
		float64(h.NormalWalkingSpeed()), s.loop, s.ignoreObstacles)
	if err != nil {
		h.env.Errorf("invalid forced path %q: %v", s.path, err)
		h.StartFree()
		return
	}
	h.SetMovement(m)
}

func (s *ForcedWalking) Stop(State) {
	s.hero.ClearMovement()
}

func (s *ForcedWalking) Update() {
	if s.suspended {
		return
	}
	h := s.hero
	if m := h.Movement(); m == nil || m.IsFinished() {
		h.StartFreeOrCarrying()
	}
}

func (s *ForcedWalking) CanAvoidDeepWater() bool { return true }
func (s *ForcedWalking) CanAvoidHole() bool      { return true }
func (s *ForcedWalking) CanAvoidLava() bool      { return true }
func (s *ForcedWalking) CanAvoidPrickle() bool   { return true }
