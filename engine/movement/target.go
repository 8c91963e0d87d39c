package movement

import (
	"math"

	"github.com/nathoo/actioncore/engine/clock"
)

// Target moves the body toward a fixed point, one pixel per step on each
// axis that has not arrived yet. It is used to bring the hero back to
// his last solid ground position, so it can ignore obstacles.
type Target struct {
	clock clock.Source
	body  Body

	targetX, targetY int
	speed            float64
	ignoreObstacles  bool

	nextStepDate  int64
	finished      bool
	suspended     bool
	whenSuspended int64
}

// NewTarget creates a movement toward (x, y) at the given speed.
func NewTarget(c clock.Source, body Body, x, y int, speed float64, ignoreObstacles bool) *Target {
	t := &Target{
		clock:           c,
		body:            body,
		targetX:         x,
		targetY:         y,
		speed:           speed,
		ignoreObstacles: ignoreObstacles,
	}
	t.nextStepDate = c.Now() + t.stepDelay()
	if t.body.X() == x && t.body.Y() == y {
		t.finished = true
	}
	return t
}

// stepDelay returns the delay before the next one-pixel step, slower by
// sqrt(2) while both axes still move.
func (t *Target) stepDelay() int64 {
	delay := int64(1000 / t.speed)
	if t.body.X() != t.targetX && t.body.Y() != t.targetY {
		delay = int64(float64(delay) * math.Sqrt2)
	}
	return delay
}

// IsFinished reports whether the target has been reached or the movement
// was blocked.
func (t *Target) IsFinished() bool { return t.finished }

// Stop abandons the movement.
func (t *Target) Stop() { t.finished = true }

// IsSuspended reports whether the movement is suspended.
func (t *Target) IsSuspended() bool { return t.suspended }

// SetSuspended pauses or resumes the movement.
func (t *Target) SetSuspended(suspended bool) {
	if suspended == t.suspended {
		return
	}
	t.suspended = suspended
	if suspended {
		t.whenSuspended = t.clock.Now()
		return
	}
	t.nextStepDate += t.clock.Now() - t.whenSuspended
}

// Update advances toward the target by every step whose date has passed.
func (t *Target) Update() {
	if t.suspended || t.finished {
		return
	}

	now := t.clock.Now()
	for now >= t.nextStepDate && !t.finished {
		dx := sign(t.targetX - t.body.X())
		dy := sign(t.targetY - t.body.Y())
		if dx == 0 && dy == 0 {
			t.finished = true
			return
		}

		if !t.ignoreObstacles {
			box := t.body.BoundingBox().Add(dx, dy)
			if t.body.TestCollisionWithObstacles(box) {
				t.finished = true
				t.body.NotifyObstacleReached()
				return
			}
		}

		t.body.SetXY(t.body.X()+dx, t.body.Y()+dy)
		t.body.NotifyPositionChanged()

		if t.body.X() == t.targetX && t.body.Y() == t.targetY {
			t.finished = true
			return
		}
		t.nextStepDate += t.stepDelay()
	}
}

func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
