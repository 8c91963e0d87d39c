package world

import (
	"math"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/geom"
)

// StreamAction displaces one entity pixel by pixel in the direction of a
// stream, until the entity is 16 pixels past the stream or escapes it.
// The action owns its own schedule so it keeps working while the moved
// entity has no movement of its own.
type StreamAction struct {
	clock  clock.Source
	stream *Stream
	entity Moved

	active        bool
	suspended     bool
	whenSuspended int64

	dx, dy           int
	targetX, targetY int
	nextMoveDate     int64
	delay            int64
}

// NewStreamAction starts applying a stream to an entity.
func NewStreamAction(c clock.Source, stream *Stream, entity Moved) *StreamAction {
	a := &StreamAction{
		clock:  c,
		stream: stream,
		entity: entity,
		active: true,
	}

	direction8 := stream.Direction()
	move := geom.DirectionToXY(direction8)
	a.dx = move.X
	a.dy = move.Y
	a.delay = int64(1000 / stream.Speed())

	if !geom.IsDiagonal(direction8) {
		// Stop 16 pixels after the stream.
		if a.dx != 0 {
			a.targetX = stream.X() + sign16(a.dx)
			a.targetY = entity.Y()
		} else {
			a.targetY = stream.Y() + sign16(a.dy)
			a.targetX = entity.X()
		}
	} else {
		// Diagonal: stop when the entity has done exactly 16 pixels,
		// otherwise it could reach an adjacent stream.
		a.targetX = entity.X() + sign16(a.dx)
		a.targetY = entity.Y() + sign16(a.dy)

		a.delay = int64(float64(a.delay) * math.Sqrt2)
	}

	a.nextMoveDate = c.Now() + a.delay
	return a
}

func sign16(d int) int {
	if d > 0 {
		return 16
	}
	return -16
}

// Stream returns the stream responsible for this action.
func (a *StreamAction) Stream() *Stream { return a.stream }

// IsActive reports whether the action still applies. It becomes inactive
// once the effect is fully applied, or when the stream or the entity
// disappears.
func (a *StreamAction) IsActive() bool { return a.active }

// IsSuspended reports whether the action is suspended.
func (a *StreamAction) IsSuspended() bool { return a.suspended }

// SetSuspended suspends or resumes the action. Resuming shifts the next
// move date by the time spent suspended.
func (a *StreamAction) SetSuspended(suspended bool) {
	a.suspended = suspended
	if suspended {
		a.whenSuspended = a.clock.Now()
	} else if a.whenSuspended != 0 {
		a.nextMoveDate += a.clock.Now() - a.whenSuspended
	}
}

// Update advances the effect of the stream on the entity.
func (a *StreamAction) Update() {
	if !a.active {
		return
	}

	if a.stream.IsBeingRemoved() || !a.stream.IsEnabled() {
		a.active = false
		return
	}
	if a.entity.IsBeingRemoved() || !a.entity.IsEnabled() {
		a.active = false
		return
	}

	// The entity escapes a non-blocking stream by walking off it.
	// Blocking streams cannot be escaped, and diagonal blocking streams
	// keep moving the entity even once it no longer overlaps, so that
	// diagonal moves are exactly 16 pixels in stream mazes.
	if a.stream.AllowsMovement() {
		gp := a.entity.GroundPoint()
		if !a.stream.ContainsPoint(gp.X, gp.Y) {
			// Near the target the ground point leaves the stream before
			// the move is done. Continue to the target in that case.
			if geom.Distance(a.entity.X(), a.entity.Y(), a.targetX, a.targetY) > 8 {
				a.active = false
				return
			}
		}
	}

	if a.suspended {
		return
	}

	now := a.clock.Now()
	for now >= a.nextMoveDate && a.active {
		a.nextMoveDate += a.delay

		if a.testObstacles() {
			// Don't move the entity. A blocking stream gives up entirely.
			if !a.stream.AllowsMovement() {
				a.active = false
			}
			break
		}

		a.entity.SetXY(a.entity.X()+a.dx, a.entity.Y()+a.dy)
		a.entity.NotifyPositionChanged()

		if a.hasReachedTarget() {
			a.active = false
		}
	}
}

func (a *StreamAction) hasReachedTarget() bool {
	finishedX := a.dx == 0 ||
		(a.dx > 0 && a.entity.X() >= a.targetX) ||
		(a.dx < 0 && a.entity.X() <= a.targetX)
	finishedY := a.dy == 0 ||
		(a.dy > 0 && a.entity.Y() >= a.targetY) ||
		(a.dy < 0 && a.entity.Y() <= a.targetY)
	return finishedX && finishedY
}

func (a *StreamAction) testObstacles() bool {
	box := a.entity.BoundingBox().Add(a.dx, a.dy)
	return a.entity.TestCollisionWithObstacles(box)
}
