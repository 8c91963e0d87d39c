package world

import (
	"github.com/nathoo/actioncore/geom"
)

// CollisionMode discriminates how a detector noticed the hero.
type CollisionMode int

const (
	// ModeOverlapping: the bounding boxes share at least one pixel.
	ModeOverlapping CollisionMode = iota
	// ModeInside: the observer's bounding box is entirely inside the detector.
	ModeInside
	// ModeOrigin: the observer's origin point is inside the detector.
	ModeOrigin
	// ModeFacingPoint: the observer's current facing point is inside the detector.
	ModeFacingPoint
	// ModeFacingPointAny: a facing point of any of the four directions is inside.
	ModeFacingPointAny
	// ModeCenter: the observer's center point is inside the detector.
	ModeCenter
	// ModeCustom: a detector-specific test matched.
	ModeCustom
)

// Entity is the common part of everything placed on a map. The zero value
// is not usable; embedders initialize it with newEntity.
type Entity struct {
	name         string
	layer        Layer
	box          geom.Rect
	originX      int
	originY      int
	enabled      bool
	beingRemoved bool
}

func newEntity(name string, layer Layer, x, y, width, height int) Entity {
	return Entity{
		name:    name,
		layer:   layer,
		box:     geom.NewRect(x, y, width, height),
		enabled: true,
	}
}

// Name returns the entity's map-unique name (may be empty).
func (e *Entity) Name() string { return e.name }

// Layer returns the entity's layer.
func (e *Entity) Layer() Layer { return e.layer }

// SetLayer moves the entity to another layer.
func (e *Entity) SetLayer(layer Layer) { e.layer = layer }

// BoundingBox returns the entity's bounding box.
func (e *Entity) BoundingBox() geom.Rect { return e.box }

// X returns the x coordinate of the entity's origin point.
func (e *Entity) X() int { return e.box.X + e.originX }

// Y returns the y coordinate of the entity's origin point.
func (e *Entity) Y() int { return e.box.Y + e.originY }

// SetXY moves the entity so that its origin point is at (x, y).
func (e *Entity) SetXY(x, y int) {
	e.box.X = x - e.originX
	e.box.Y = y - e.originY
}

// SetTopLeftXY moves the entity so that its bounding box starts at (x, y).
func (e *Entity) SetTopLeftXY(x, y int) {
	e.box.X = x
	e.box.Y = y
}

// setOrigin sets the origin point offset relative to the top-left corner.
func (e *Entity) setOrigin(x, y int) {
	e.originX = x
	e.originY = y
}

// GroundPoint returns the point used to determine the ground below the
// entity. The default is the origin point.
func (e *Entity) GroundPoint() geom.Point {
	return geom.Point{X: e.X(), Y: e.Y()}
}

// IsEnabled reports whether the entity currently takes part in the game.
func (e *Entity) IsEnabled() bool { return e.enabled }

// SetEnabled enables or disables the entity.
func (e *Entity) SetEnabled(enabled bool) { e.enabled = enabled }

// IsBeingRemoved reports whether the entity is scheduled for removal.
// Anything holding a reference must treat it as already gone.
func (e *Entity) IsBeingRemoved() bool { return e.beingRemoved }

// Overlaps reports whether the entity's box overlaps the given box.
func (e *Entity) Overlaps(box geom.Rect) bool { return e.box.Overlaps(box) }

// ContainsPoint reports whether (x, y) is inside the entity's box.
func (e *Entity) ContainsPoint(x, y int) bool { return e.box.Contains(x, y) }

// ObstacleTraits answers the per-terrain and per-detector obstacle
// questions for a moving entity. For the hero the answers depend on the
// current state.
type ObstacleTraits interface {
	IsShallowWaterObstacle() bool
	IsDeepWaterObstacle() bool
	IsHoleObstacle() bool
	IsLavaObstacle() bool
	IsPrickleObstacle() bool
	IsLadderObstacle() bool
	IsLowWallObstacle() bool
	IsTeletransporterObstacle(t *Teletransporter) bool
	IsConveyorBeltObstacle(c *ConveyorBelt) bool
	IsStairsObstacle(s *Stairs) bool
	IsSensorObstacle(s *Sensor) bool
	IsJumperObstacle(j *Jumper) bool
	IsSeparatorObstacle(s *Separator) bool
	IsStreamObstacle(s *Stream) bool
}

// CollisionObserver receives the per-detector notifications of the
// post-move collision sweep. The hero controller implements it.
type CollisionObserver interface {
	ObstacleTraits

	BoundingBox() geom.Rect
	Layer() Layer
	// FacingPoint returns the probe one pixel outside the bounding box in
	// the current facing direction.
	FacingPoint() geom.Point
	// FacingPointIn returns the probe for an arbitrary 4-way direction.
	FacingPointIn(direction4 int) geom.Point
	GroundPoint() geom.Point

	NotifyCollisionWithDestructible(d *Destructible, mode CollisionMode)
	NotifyCollisionWithEnemy(e *Enemy)
	NotifyCollisionWithTeletransporter(t *Teletransporter, mode CollisionMode)
	NotifyCollisionWithStream(s *Stream)
	NotifyCollisionWithConveyorBelt(c *ConveyorBelt, dx, dy int)
	NotifyCollisionWithStairs(s *Stairs, mode CollisionMode)
	NotifyCollisionWithJumper(j *Jumper, mode CollisionMode)
	NotifyCollisionWithSensor(s *Sensor, mode CollisionMode)
	NotifyCollisionWithSwitch(s *Switch, mode CollisionMode)
	NotifyCollisionWithCrystal(c *Crystal, mode CollisionMode)
	NotifyCollisionWithChest(c *Chest)
	NotifyCollisionWithBlock(b *Block)
	NotifyCollisionWithSeparator(s *Separator, mode CollisionMode)
	NotifyCollisionWithBomb(b *Bomb, mode CollisionMode)
	NotifyCollisionWithExplosion(e *Explosion)
}

// Moved is what a StreamAction needs from the entity it displaces.
type Moved interface {
	X() int
	Y() int
	SetXY(x, y int)
	BoundingBox() geom.Rect
	Layer() Layer
	GroundPoint() geom.Point
	NotifyPositionChanged()
	IsBeingRemoved() bool
	IsEnabled() bool
	// TestCollisionWithObstacles tests the given box on the entity's layer
	// with the entity's own obstacle traits.
	TestCollisionWithObstacles(box geom.Rect) bool
}
