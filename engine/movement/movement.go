// Package movement implements the pixel-stepped movements that displace
// entities on the map. A movement schedules one-pixel steps on the
// virtual clock: a speed of s pixels per second becomes one step every
// 1000/s milliseconds, with diagonal steps slowed by sqrt(2) so the
// on-screen speed stays constant.
//
// Movements know nothing about maps. They move a Body, which answers the
// obstacle question itself with whatever collision rules apply to it.
package movement

import "github.com/nathoo/actioncore/geom"

// Body is the entity a movement displaces. X and Y are the coordinates
// of the body's origin point.
type Body interface {
	X() int
	Y() int
	SetXY(x, y int)
	BoundingBox() geom.Rect

	// TestCollisionWithObstacles reports whether the body cannot occupy
	// the given box.
	TestCollisionWithObstacles(box geom.Rect) bool

	NotifyPositionChanged()
	NotifyObstacleReached()
	// NotifyMovementChanged is called when the movement's trajectory
	// changes: a new direction is adopted or the body stops.
	NotifyMovementChanged()
}

// Movement is the common protocol of all movement kinds.
type Movement interface {
	// Update applies the steps whose dates have passed.
	Update()
	// IsFinished reports whether the movement has nothing left to do.
	// Player-controlled movements never finish.
	IsFinished() bool
	IsSuspended() bool
	// SetSuspended pauses or resumes the movement. Resuming shifts the
	// pending step dates by the time spent suspended, so no steps are
	// replayed.
	SetSuspended(suspended bool)
	// Stop halts the movement immediately.
	Stop()
}
