package hero

import (
	"strings"

	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/engine/world"
)

// jumpSpeed is the horizontal speed of a jump, in pixels per second.
const jumpSpeed = 176

// Jumping is the state while the hero is in the air: a straight path in
// one of the eight directions, off the ground, ignoring bad terrain
// until he lands.
type Jumping struct {
	baseState
	direction8      int
	distance        int
	ignoreObstacles bool
}

// NewJumping creates a jump of the given distance in pixels, rounded
// down to whole path elements.
func NewJumping(h *Hero, direction8, distance int, ignoreObstacles bool) *Jumping {
	return &Jumping{
		baseState:       newBaseState(h, "jumping"),
		direction8:      direction8,
		distance:        distance,
		ignoreObstacles: ignoreObstacles,
	}
}

// Direction8 returns the jump direction.
func (s *Jumping) Direction8() int { return s.direction8 }

func (s *Jumping) Start(State) {
	h := s.hero

	if s.direction8%2 == 0 {
		h.SetAnimationDirection(s.direction8 / 2)
	}

	elements := s.distance / 8
	if elements < 1 {
		elements = 1
	}
	path := strings.Repeat(string(rune('0'+s.direction8)), elements)
	m, err := movement.NewPath(envClock{h.env}, h, path, jumpSpeed, false, s.ignoreObstacles)
	if err != nil {
		h.env.Errorf("hero cannot jump toward direction %d: %v", s.direction8, err)
		h.StartFree()
		return
	}
	h.SetMovement(m)
}

func (s *Jumping) Stop(State) {
	s.hero.ClearMovement()
}

func (s *Jumping) Update() {
	if s.suspended {
		return
	}
	h := s.hero
	if m := h.Movement(); m == nil || m.IsFinished() {
		// Landed: the ground below decides what happens now.
		h.StartStateFromGround()
	}
}

func (s *Jumping) WantedMovementDirection8() int { return s.direction8 }

func (s *Jumping) IsTouchingGround() bool         { return false }
func (s *Jumping) CanComeFromBadGround() bool     { return false }
func (s *Jumping) IsDirectionLocked() bool        { return true }
func (s *Jumping) CanAvoidDeepWater() bool        { return true }
func (s *Jumping) CanAvoidHole() bool             { return true }
func (s *Jumping) CanAvoidIce() bool              { return true }
func (s *Jumping) CanAvoidLava() bool             { return true }
func (s *Jumping) CanAvoidPrickle() bool          { return true }
func (s *Jumping) IsTeletransporterDelayed() bool { return true }
func (s *Jumping) CanAvoidConveyorBelt() bool     { return true }
func (s *Jumping) CanAvoidSensor() bool           { return true }
func (s *Jumping) CanAvoidSwitch() bool           { return true }

func (s *Jumping) CanAvoidStream(*world.Stream) bool { return true }
