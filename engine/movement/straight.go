package movement

import (
	"math"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/geom"
)

// Straight moves the body at a constant speed in one of the eight
// directions until told otherwise. Each axis keeps its own schedule; a
// diagonal move advances both axes at speed/sqrt(2) so the resulting
// velocity matches the nominal speed.
type Straight struct {
	clock clock.Source
	body  Body

	speed      float64
	direction8 int // -1: stopped

	dx, dy                 int
	delayX, delayY         int64
	nextMoveX, nextMoveY   int64
	suspended              bool
	whenSuspended          int64
}

// NewStraight creates a stopped straight movement on the body.
func NewStraight(c clock.Source, body Body) *Straight {
	return &Straight{clock: c, body: body, direction8: -1}
}

// Direction8 returns the current direction, -1 when stopped.
func (s *Straight) Direction8() int { return s.direction8 }

// Speed returns the nominal speed in pixels per second.
func (s *Straight) Speed() float64 { return s.speed }

// IsStarted reports whether the body is currently moving.
func (s *Straight) IsStarted() bool { return s.direction8 != -1 && s.speed > 0 }

// IsFinished always reports false: a straight movement runs until stopped.
func (s *Straight) IsFinished() bool { return false }

// SetSpeed changes the speed, keeping the direction.
func (s *Straight) SetSpeed(speed float64) {
	s.speed = speed
	s.recompute()
}

// SetDirection8 points the movement in a new direction, or stops it
// with -1.
func (s *Straight) SetDirection8(direction8 int) {
	s.direction8 = direction8
	s.recompute()
}

// Stop halts the movement.
func (s *Straight) Stop() { s.SetDirection8(-1) }

func (s *Straight) recompute() {
	if !s.IsStarted() {
		s.dx, s.dy = 0, 0
		return
	}

	move := geom.DirectionToXY(s.direction8)
	s.dx, s.dy = move.X, move.Y

	axisSpeed := s.speed
	if geom.IsDiagonal(s.direction8) {
		axisSpeed = s.speed / math.Sqrt2
	}
	delay := int64(1000 / axisSpeed)

	now := s.clock.Now()
	s.delayX, s.delayY = delay, delay
	s.nextMoveX = now + delay
	s.nextMoveY = now + delay
}

// IsSuspended reports whether the movement is suspended.
func (s *Straight) IsSuspended() bool { return s.suspended }

// SetSuspended pauses or resumes the movement.
func (s *Straight) SetSuspended(suspended bool) {
	if suspended == s.suspended {
		return
	}
	s.suspended = suspended
	if suspended {
		s.whenSuspended = s.clock.Now()
		return
	}
	diff := s.clock.Now() - s.whenSuspended
	s.nextMoveX += diff
	s.nextMoveY += diff
}

// Update applies every one-pixel step whose date has passed. A blocked
// axis stays in place and the body is told it reached an obstacle; the
// other axis keeps moving, which lets the body slide along walls.
func (s *Straight) Update() {
	if s.suspended || !s.IsStarted() {
		return
	}

	now := s.clock.Now()
	for {
		stepped := false
		if s.dx != 0 && now >= s.nextMoveX {
			s.nextMoveX += s.delayX
			s.step(s.dx, 0)
			stepped = true
		}
		if s.dy != 0 && now >= s.nextMoveY {
			s.nextMoveY += s.delayY
			s.step(0, s.dy)
			stepped = true
		}
		if !stepped {
			return
		}
	}
}

func (s *Straight) step(dx, dy int) {
	box := s.body.BoundingBox().Add(dx, dy)
	if s.body.TestCollisionWithObstacles(box) {
		s.body.NotifyObstacleReached()
		return
	}
	s.body.SetXY(s.body.X()+dx, s.body.Y()+dy)
	s.body.NotifyPositionChanged()
}
