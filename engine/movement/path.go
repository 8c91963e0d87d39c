package movement

import (
	"fmt"
	"math"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/geom"
)

// elementLength is the distance covered by one path element, in pixels.
const elementLength = 8

// Path follows a fixed trajectory given as a string of direction digits
// '0'..'7', each covering 8 pixels. The trajectory may loop, and may
// ignore obstacles (jumps do).
type Path struct {
	clock clock.Source
	body  Body

	path            string
	speed           float64
	loop            bool
	ignoreObstacles bool

	index        int // current element
	donePixels   int // pixels covered in the current element
	dx, dy       int
	delay        int64
	nextStepDate int64

	finished      bool
	suspended     bool
	whenSuspended int64
}

// NewPath creates a path movement. The path must be a non-empty string
// of digits '0'..'7'.
func NewPath(c clock.Source, body Body, path string, speed float64, loop, ignoreObstacles bool) (*Path, error) {
	if path == "" {
		return nil, fmt.Errorf("movement: empty path")
	}
	for _, r := range path {
		if r < '0' || r > '7' {
			return nil, fmt.Errorf("movement: invalid path element %q", r)
		}
	}

	p := &Path{
		clock:           c,
		body:            body,
		path:            path,
		speed:           speed,
		loop:            loop,
		ignoreObstacles: ignoreObstacles,
	}
	p.startElement(0)
	return p, nil
}

// startElement begins the path element at the given index.
func (p *Path) startElement(index int) {
	p.index = index
	p.donePixels = 0

	direction8 := int(p.path[index] - '0')
	move := geom.DirectionToXY(direction8)
	p.dx, p.dy = move.X, move.Y

	p.delay = int64(1000 / p.speed)
	if geom.IsDiagonal(direction8) {
		p.delay = int64(float64(p.delay) * math.Sqrt2)
	}
	p.nextStepDate = p.clock.Now() + p.delay
}

// Direction8 returns the direction of the current path element.
func (p *Path) Direction8() int {
	return int(p.path[p.index] - '0')
}

// IsFinished reports whether the whole path has been covered.
func (p *Path) IsFinished() bool { return p.finished }

// Stop abandons the rest of the path.
func (p *Path) Stop() { p.finished = true }

// IsSuspended reports whether the movement is suspended.
func (p *Path) IsSuspended() bool { return p.suspended }

// SetSuspended pauses or resumes the movement.
func (p *Path) SetSuspended(suspended bool) {
	if suspended == p.suspended {
		return
	}
	p.suspended = suspended
	if suspended {
		p.whenSuspended = p.clock.Now()
		return
	}
	p.nextStepDate += p.clock.Now() - p.whenSuspended
}

// Update advances along the path by every step whose date has passed.
// Hitting an obstacle ends the movement unless obstacles are ignored.
func (p *Path) Update() {
	if p.suspended || p.finished {
		return
	}

	now := p.clock.Now()
	for now >= p.nextStepDate && !p.finished {
		p.nextStepDate += p.delay

		if !p.ignoreObstacles {
			box := p.body.BoundingBox().Add(p.dx, p.dy)
			if p.body.TestCollisionWithObstacles(box) {
				p.finished = true
				p.body.NotifyObstacleReached()
				return
			}
		}

		p.body.SetXY(p.body.X()+p.dx, p.body.Y()+p.dy)
		p.body.NotifyPositionChanged()

		p.donePixels++
		if p.donePixels < elementLength {
			continue
		}

		next := p.index + 1
		if next >= len(p.path) {
			if !p.loop {
				p.finished = true
				return
			}
			next = 0
		}
		p.startElement(next)
	}
}
