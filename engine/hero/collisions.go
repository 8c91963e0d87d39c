package hero

import (
	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/engine/world"
	"github.com/nathoo/actioncore/geom"
)

// The hero implements world.CollisionObserver: the map's post-move sweep
// reports every overlapping detector here, and each notification is a
// policy decision gated by the current state.

// NotifyCollisionWithDestructible shows the lift icon when the hero
// faces a liftable entity.
func (h *Hero) NotifyCollisionWithDestructible(d *world.Destructible, mode world.CollisionMode) {
	if mode != world.ModeFacingPoint {
		return
	}
	h.facingEntity = d
	if h.actionEffect == ActionNone && h.IsFree() && d.Weight() != -1 {
		h.actionEffect = ActionLift
	}
}

// NotifyCollisionWithEnemy hurts the hero on contact.
func (h *Hero) NotifyCollisionWithEnemy(e *world.Enemy) {
	h.Hurt(geom.Point{X: e.X(), Y: e.Y()}, e.Damage())
}

// NotifyCollisionWithTeletransporter transports the hero, right away in
// the usual case, or once the current action (falling into a hole)
// finishes.
func (h *Hero) NotifyCollisionWithTeletransporter(t *world.Teletransporter, _ world.CollisionMode) {
	if !t.IsOnMapSide() && h.state.CanAvoidTeletransporter() {
		return
	}

	h.updateGroundBelow()
	onHole := h.groundBelow == ground.Hole
	if onHole || h.state.IsTeletransporterDelayed() {
		h.delayedTeletransporter = t
	} else {
		h.env.Transport(t)
	}
}

// DelayedTeletransporter returns the transporter whose activation waits
// for the current action to finish, if any.
func (h *Hero) DelayedTeletransporter() *world.Teletransporter {
	return h.delayedTeletransporter
}

// ClearDelayedTeletransporter forgets the pending transporter.
func (h *Hero) ClearDelayedTeletransporter() {
	h.delayedTeletransporter = nil
}

// NotifyCollisionWithStream starts a stream action on the hero unless
// the state resists this stream.
func (h *Hero) NotifyCollisionWithStream(s *world.Stream) {
	if h.streamAction != nil && h.streamAction.Stream() == s {
		return
	}
	if h.state.CanAvoidStream(s) {
		return
	}
	h.streamAction = world.NewStreamAction(envClock{h.env}, s, h)
	if !s.AllowsMovement() {
		h.SetState(newStreamFreezed(h))
	}
}

// StreamAction returns the stream action currently applied to the hero,
// nil when none.
func (h *Hero) StreamAction() *world.StreamAction { return h.streamAction }

// NotifyCollisionWithConveyorBelt takes the hero onto a conveyor belt
// when a significant part of him is on it and both the belt and its
// exit are clear in the belt's direction.
func (h *Hero) NotifyCollisionWithConveyorBelt(c *world.ConveyorBelt, dx, dy int) {
	h.onConveyorBelt = true

	if h.state.CanAvoidConveyorBelt() {
		return
	}

	// Would the hero be stuck 8 pixels after the belt?
	belt := c.BoundingBox()
	var entry geom.Rect
	if dx != 0 {
		entry = geom.NewRect(h.box.X+dx, belt.Y, 16, 16)
	} else {
		entry = geom.NewRect(belt.X, h.box.Y+dy, 16, 16)
	}
	if h.env.Map().TestCollisionWithObstacles(h.layer, entry, h) {
		return
	}

	// Is the belt's own exit clear? Otherwise a blocked belt could not
	// be crossed the reverse way.
	exit := belt.Add(dx, dy)
	if h.env.Map().TestCollisionWithObstacles(h.layer, exit, h) {
		return
	}

	h.SetState(NewConveyorBelt(h, c))
}

// IsOnConveyorBelt reports whether a belt claimed the hero this tick.
func (h *Hero) IsOnConveyorBelt() bool { return h.onConveyorBelt }

// NotifyCollisionWithStairs starts taking the stairs when the state
// allows it and the hero moves toward them.
func (h *Hero) NotifyCollisionWithStairs(s *world.Stairs, mode world.CollisionMode) {
	if !h.state.CanTakeStairs() {
		return
	}

	var way world.StairsWay
	if s.IsInsideFloor() {
		if h.layer == s.Layer() {
			way = world.StairsNormalWay
		} else {
			way = world.StairsReverseWay
		}
	} else {
		if mode == world.ModeFacingPointAny {
			way = world.StairsNormalWay
		} else {
			way = world.StairsReverseWay
		}
	}

	correctDirection8 := s.MovementDirection8(way)
	if h.IsMovingTowards(correctDirection8 / 2) {
		h.SetState(NewStairs(h, s, way))
	}
}

// NotifyCollisionWithJumper lets the state decide whether to jump.
func (h *Hero) NotifyCollisionWithJumper(j *world.Jumper, mode world.CollisionMode) {
	if mode == world.ModeCustom {
		h.state.NotifyJumperActivated(j)
	}
}

// NotifyCollisionWithSensor activates the sensor when the hero is
// entirely inside it.
func (h *Hero) NotifyCollisionWithSensor(s *world.Sensor, mode world.CollisionMode) {
	if mode != world.ModeInside || h.state.CanAvoidSensor() {
		return
	}
	if s.Activate() {
		h.env.Notifier().NotifySensorActivated(s.Name())
	}
}

// NotifyCollisionWithSwitch activates a walkable switch.
func (h *Hero) NotifyCollisionWithSwitch(s *world.Switch, mode world.CollisionMode) {
	if mode != world.ModeInside || !s.IsWalkable() || h.state.CanAvoidSwitch() {
		return
	}
	if s.TryActivate() {
		h.env.Notifier().NotifySwitchActivated(s.Name())
	}
}

// NotifyCollisionWithCrystal shows the look icon when the hero faces a
// crystal.
func (h *Hero) NotifyCollisionWithCrystal(c *world.Crystal, mode world.CollisionMode) {
	if mode != world.ModeFacingPoint {
		return
	}
	h.facingEntity = c
	if h.actionEffect == ActionNone && h.IsFree() {
		h.actionEffect = ActionLook
	}
}

// NotifyCollisionWithChest shows the open icon when the hero faces a
// closed chest from below.
func (h *Hero) NotifyCollisionWithChest(c *world.Chest) {
	h.facingEntity = c
	if h.actionEffect == ActionNone && h.IsFree() && h.dir4 == 1 && !c.IsOpen() {
		h.actionEffect = ActionOpen
	}
}

// NotifyCollisionWithBlock shows the grab icon when the hero faces a
// block.
func (h *Hero) NotifyCollisionWithBlock(b *world.Block) {
	h.facingEntity = b
	if h.actionEffect == ActionNone && h.IsFree() {
		h.actionEffect = ActionGrab
	}
}

// NotifyCollisionWithSeparator reports a region crossing to the session.
func (h *Hero) NotifyCollisionWithSeparator(s *world.Separator, _ world.CollisionMode) {
	if n, ok := h.env.Notifier().(SeparatorNotifier); ok {
		n.NotifySeparatorCrossed(s.Name())
	}
}

// NotifyCollisionWithBomb shows the lift icon when the hero faces a bomb.
func (h *Hero) NotifyCollisionWithBomb(b *world.Bomb, mode world.CollisionMode) {
	if mode != world.ModeFacingPoint {
		return
	}
	h.facingEntity = b
	if h.actionEffect == ActionNone && h.IsFree() {
		h.actionEffect = ActionLift
	}
}

// NotifyCollisionWithExplosion hurts the hero.
func (h *Hero) NotifyCollisionWithExplosion(e *world.Explosion) {
	if !h.state.CanAvoidExplosion() {
		h.Hurt(geom.Point{X: e.X(), Y: e.Y()}, 2)
	}
}

// Hurt knocks the hero back from a damage source unless the current
// state protects him.
func (h *Hero) Hurt(source geom.Point, lifePoints int) {
	if h.state.CanBeHurt() {
		h.SetState(NewHurt(h, source, lifePoints))
	}
}

// SeparatorNotifier is the optional separator part of the sink.
type SeparatorNotifier interface {
	NotifySeparatorCrossed(name string)
}

// envClock adapts Env to clock.Source for stream actions.
type envClock struct{ env Env }

func (c envClock) Now() int64 { return c.env.Now() }

var _ clock.Source = envClock{}

// --- obstacle traits, delegated to the current state ---

func (h *Hero) IsShallowWaterObstacle() bool { return h.state.IsShallowWaterObstacle() }
func (h *Hero) IsDeepWaterObstacle() bool    { return h.state.IsDeepWaterObstacle() }
func (h *Hero) IsHoleObstacle() bool         { return h.state.IsHoleObstacle() }
func (h *Hero) IsLavaObstacle() bool         { return h.state.IsLavaObstacle() }
func (h *Hero) IsPrickleObstacle() bool      { return h.state.IsPrickleObstacle() }
func (h *Hero) IsLadderObstacle() bool       { return h.state.IsLadderObstacle() }
func (h *Hero) IsLowWallObstacle() bool      { return true }

func (h *Hero) IsTeletransporterObstacle(t *world.Teletransporter) bool {
	return h.state.IsTeletransporterObstacle(t)
}
func (h *Hero) IsConveyorBeltObstacle(c *world.ConveyorBelt) bool {
	return h.state.IsConveyorBeltObstacle(c)
}
func (h *Hero) IsStairsObstacle(s *world.Stairs) bool {
	return h.state.IsStairsObstacle(s)
}
func (h *Hero) IsSensorObstacle(s *world.Sensor) bool {
	return h.state.IsSensorObstacle(s)
}
func (h *Hero) IsJumperObstacle(j *world.Jumper) bool {
	return h.state.IsJumperObstacle(j)
}
func (h *Hero) IsSeparatorObstacle(s *world.Separator) bool {
	return h.state.IsSeparatorObstacle(s)
}
func (h *Hero) IsStreamObstacle(s *world.Stream) bool {
	return h.state.IsStreamObstacle(s)
}

// IsBeingRemoved reports whether the hero is being removed from the map.
// The hero outlives every map, so the answer is always no.
func (h *Hero) IsBeingRemoved() bool { return false }

// IsEnabled reports whether the hero takes part in the simulation.
func (h *Hero) IsEnabled() bool { return true }

var (
	_ world.CollisionObserver = (*Hero)(nil)
	_ world.Moved             = (*Hero)(nil)
	_ movement.Body           = (*Hero)(nil)
	_ movement.Intent         = (*Hero)(nil)
)
