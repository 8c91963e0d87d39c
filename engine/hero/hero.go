// Package hero implements the hero controller and his state machine: the
// component that owns the hero's position, reconciles it against the
// terrain every tick, and routes every environment event to the current
// behavioral state.
package hero

import (
	"fmt"

	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/engine/world"
	"github.com/nathoo/actioncore/geom"
)

// Equipment is what the state machine needs to know about the hero's
// gear and life.
type Equipment interface {
	Life() int
	RemoveLife(points int)
	HasAbility(name string) bool
}

// Commands exposes the player's current inputs.
type Commands interface {
	// WantedDirection8 derives the wanted direction from the pressed
	// directional commands, -1 when none applies.
	WantedDirection8() int
	IsPressed(c Command) bool
}

// Notifier is the fire-and-forget callback sink toward quest scripts.
// Implementations must never fail back into the caller.
type Notifier interface {
	NotifyPositionChanged(x, y int, layer world.Layer)
	NotifyGroundChanged(g ground.Ground)
	NotifyStateChanged(name string)
	NotifyTreasureObtained(treasure string)
	NotifySensorActivated(name string)
	NotifySwitchActivated(name string)
}

// Env is the hero's view of the game session. The session layer
// implements it; states receive it through the hero so they never reach
// for globals.
type Env interface {
	Map() *world.Map
	Now() int64
	Equipment() Equipment
	Commands() Commands
	Notifier() Notifier

	// StartGameOver begins the game-over sequence; the session calls
	// NotifyGameOverFinished on the hero when it resolves.
	StartGameOver()
	// Transport sends the hero through a teletransporter.
	Transport(t *world.Teletransporter)
	// Errorf reports a non-fatal anomaly.
	Errorf(format string, args ...interface{})
}

// ActionEffect is the contextual meaning of the action command, shown to
// the player as an icon.
type ActionEffect int

// The action command effects.
const (
	ActionNone ActionEffect = iota
	ActionLook
	ActionOpen
	ActionGrab
	ActionLift
)

// String returns the effect name.
func (a ActionEffect) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLook:
		return "look"
	case ActionOpen:
		return "open"
	case ActionGrab:
		return "grab"
	case ActionLift:
		return "lift"
	}
	return "unknown"
}

const (
	// NormalWalkingSpeed is the baseline walking speed in pixels per second.
	NormalWalkingSpeed = 88

	originX = 8
	originY = 13
)

// Hero is the hero controller: position, current state, ground timers
// and the dispatch of every environment notification.
type Hero struct {
	env Env

	box   geom.Rect
	layer world.Layer
	dir4  int // animation/facing direction

	state     State
	oldStates []State

	movement movement.Movement

	normalWalkingSpeed int
	walkingSpeed       int

	groundBelow     ground.Ground
	nextGroundDate  int64
	nextIceDate     int64
	iceMovementDir8 int
	groundDXY       geom.Point

	lastSolidGround   geom.Point
	lastSolidLayer    world.Layer
	targetSolidGround geom.Point // (-1,-1): none
	targetSolidLayer  world.Layer

	facingEntity interface{}
	actionEffect ActionEffect

	delayedTeletransporter *world.Teletransporter
	streamAction           *world.StreamAction

	suspended     bool
	whenSuspended int64

	onConveyorBelt bool

	// Decoration cues counted for the session layer (footsteps in grass
	// or shallow water, layer-drop landings).
	footsteps int
	landings  int
}

// New creates the hero at the origin of the current map, in no state
// yet. Call PlaceOnDestination (or SetTopLeftXY + StartFree) before the
// first update.
func New(env Env) *Hero {
	h := &Hero{
		env:                env,
		box:                geom.NewRect(0, 0, 16, 16),
		dir4:               3,
		normalWalkingSpeed: NormalWalkingSpeed,
		walkingSpeed:       NormalWalkingSpeed,
		groundBelow:        ground.Empty,
		lastSolidGround:    geom.Point{X: -1, Y: -1},
		targetSolidGround:  geom.Point{X: -1, Y: -1},
		iceMovementDir8:    -1,
	}
	return h
}

// --- position ---

// X returns the x coordinate of the hero's origin point.
func (h *Hero) X() int { return h.box.X + originX }

// Y returns the y coordinate of the hero's origin point.
func (h *Hero) Y() int { return h.box.Y + originY }

// SetXY moves the hero so that his origin point is at (x, y).
func (h *Hero) SetXY(x, y int) {
	h.box.X = x - originX
	h.box.Y = y - originY
}

// SetTopLeftXY moves the hero so that his bounding box starts at (x, y).
func (h *Hero) SetTopLeftXY(x, y int) {
	h.box.X = x
	h.box.Y = y
}

// BoundingBox returns the hero's 16x16 bounding box.
func (h *Hero) BoundingBox() geom.Rect { return h.box }

// Layer returns the hero's current layer.
func (h *Hero) Layer() world.Layer { return h.layer }

// SetLayer moves the hero to another layer.
func (h *Hero) SetLayer(layer world.Layer) {
	if layer == h.layer {
		return
	}
	h.layer = layer
	if h.state != nil {
		h.state.NotifyLayerChanged()
	}
}

// GroundPoint returns the point sampling the ground below the hero,
// 2 pixels above his origin point.
func (h *Hero) GroundPoint() geom.Point {
	return geom.Point{X: h.X(), Y: h.Y() - 2}
}

// AnimationDirection returns the 4-way direction the hero looks toward.
func (h *Hero) AnimationDirection() int { return h.dir4 }

// SetAnimationDirection turns the hero toward a 4-way direction.
func (h *Hero) SetAnimationDirection(direction4 int) {
	if direction4 < 0 || direction4 >= 4 {
		panic(fmt.Sprintf("hero: invalid direction4 %d", direction4))
	}
	h.dir4 = direction4
}

// FacingPoint returns the probe one pixel outside the bounding box in
// the direction the hero looks toward.
func (h *Hero) FacingPoint() geom.Point {
	return h.FacingPointIn(h.dir4)
}

// FacingPointIn returns the facing probe for an arbitrary 4-way
// direction.
func (h *Hero) FacingPointIn(direction4 int) geom.Point {
	switch direction4 {
	case 0:
		return geom.Point{X: h.box.X + 16, Y: h.box.Y + 8}
	case 1:
		return geom.Point{X: h.box.X + 8, Y: h.box.Y - 1}
	case 2:
		return geom.Point{X: h.box.X - 1, Y: h.box.Y + 8}
	case 3:
		return geom.Point{X: h.box.X + 8, Y: h.box.Y + 16}
	}
	panic(fmt.Sprintf("hero: invalid direction4 %d", direction4))
}

// --- state machine ---

// State returns the current state.
func (h *Hero) State() State { return h.state }

// StateName returns the name of the current state.
func (h *Hero) StateName() string {
	if h.state == nil {
		return ""
	}
	return h.state.Name()
}

// SetState stops the current state and makes newState current. The old
// state is retired, not discarded, until the end of the state-update
// pass: it may be the caller of this very function.
func (h *Hero) SetState(newState State) {
	old := h.state
	if old != nil {
		old.Stop(newState)

		if h.state != old {
			// old.Stop called SetState again. Only stopping was asked of
			// it; force the state that was supposed to start.
			h.env.Errorf("hero state %q did not stop properly to let state %q go, it started state %q instead; state %q will be forced",
				old.Name(), newState.Name(), h.state.Name(), newState.Name())
			h.SetState(newState)
			return
		}

		h.oldStates = append(h.oldStates, old)
	}

	h.state = newState
	h.env.Notifier().NotifyStateChanged(newState.Name())
	newState.Start(old)

	if h.state == newState {
		h.CheckPosition()
	}
}

func (h *Hero) updateState() {
	h.state.Update()
	h.oldStates = h.oldStates[:0]
}

// --- movement plumbing ---

// Movement returns the hero's current movement, nil when none.
func (h *Hero) Movement() movement.Movement { return h.movement }

// SetMovement installs a movement on the hero. States own this choice.
func (h *Hero) SetMovement(m movement.Movement) {
	h.movement = m
	h.NotifyMovementChanged()
}

// ClearMovement removes the current movement.
func (h *Hero) ClearMovement() { h.movement = nil }

// Env returns the hero's environment, for states.
func (h *Hero) Env() Env { return h.env }

// TestCollisionWithObstacles tests a box on the hero's layer with the
// hero's current obstacle traits.
func (h *Hero) TestCollisionWithObstacles(box geom.Rect) bool {
	return h.env.Map().TestCollisionWithObstacles(h.layer, box, h)
}

// WantedMovementDirection8 returns the direction the player wants the
// hero to move toward, as filtered by the current state.
func (h *Hero) WantedMovementDirection8() int {
	return h.state.WantedMovementDirection8()
}

// RealMovementDirection8 returns the direction the hero actually moves
// toward, accounting for obstacles: the wanted direction if free, else
// one of the two adjacent directions if sliding, else the wanted
// direction even though it is blocked.
func (h *Hero) RealMovementDirection8() int {
	wanted := h.WantedMovementDirection8()
	if wanted == -1 {
		return -1
	}

	for _, candidate := range []int{wanted, (wanted + 1) % 8, (wanted + 7) % 8} {
		move := geom.DirectionToXY(candidate)
		if !h.TestCollisionWithObstacles(h.box.Add(move.X, move.Y)) {
			return candidate
		}
	}
	return wanted
}

// IsMovingTowards reports whether the hero moves toward the given 4-way
// direction; a diagonal move counts for both of its components.
func (h *Hero) IsMovingTowards(direction4 int) bool {
	if h.movement == nil {
		return false
	}
	direction8 := direction4 * 2
	wanted := h.WantedMovementDirection8()
	return wanted != -1 &&
		(wanted == direction8 ||
			(wanted+1)%8 == direction8 ||
			(wanted+7)%8 == direction8)
}

// WantedDirection8 implements movement.Intent: the player movement asks
// the hero, the hero asks his state.
func (h *Hero) WantedDirection8() int { return h.WantedMovementDirection8() }

// --- walking speed ---

// NormalWalkingSpeed returns the baseline walking speed.
func (h *Hero) NormalWalkingSpeed() int { return h.normalWalkingSpeed }

// SetNormalWalkingSpeed changes the baseline; if the hero was walking at
// the old baseline he adopts the new one immediately.
func (h *Hero) SetNormalWalkingSpeed(speed int) {
	wasNormal := h.walkingSpeed == h.normalWalkingSpeed
	h.normalWalkingSpeed = speed
	if wasNormal {
		h.SetWalkingSpeed(speed)
	}
}

// WalkingSpeed returns the current walking speed.
func (h *Hero) WalkingSpeed() int { return h.walkingSpeed }

// SetWalkingSpeed changes the current walking speed and tells the state.
func (h *Hero) SetWalkingSpeed(speed int) {
	if speed == h.walkingSpeed {
		return
	}
	h.walkingSpeed = speed
	h.state.NotifyWalkingSpeedChanged()
}

// --- update pipeline ---

// Update advances the hero by one tick: movement first, then the state,
// then (unless suspended) ground effects, the detector sweep and the
// game-over check.
func (h *Hero) Update() {
	h.updateMovement()
	h.updateState()

	if !h.suspended {
		h.updateGroundEffects()
		h.onConveyorBelt = false
		h.env.Map().CheckCollisionWithDetectors(h)
		h.checkGameOver()
	}
}

func (h *Hero) updateMovement() {
	if h.movement != nil {
		h.movement.Update()
	}
	if h.streamAction != nil {
		h.streamAction.Update()
		if !h.streamAction.IsActive() {
			h.streamAction = nil
			if f, ok := h.state.(*Freezed); ok && f.fromStream {
				h.StartStateFromGround()
			}
		}
	}
}

// IsSuspended reports whether the hero's simulation time is frozen.
func (h *Hero) IsSuspended() bool { return h.suspended }

// SetSuspended freezes or resumes every time-based computation of the
// hero. Resuming adds the suspended duration back to the pending ground
// deadline; suspending twice is a no-op.
func (h *Hero) SetSuspended(suspended bool) {
	if suspended == h.suspended {
		return
	}
	h.suspended = suspended

	if suspended {
		h.whenSuspended = h.env.Now()
	} else {
		h.nextGroundDate += h.env.Now() - h.whenSuspended
	}

	if h.movement != nil {
		h.movement.SetSuspended(suspended)
	}
	if h.streamAction != nil {
		h.streamAction.SetSuspended(suspended)
	}
	if h.state != nil {
		h.state.SetSuspended(suspended)
	}
}

func (h *Hero) checkGameOver() {
	if h.env.Equipment().Life() <= 0 && h.state.CanStartGameOver() {
		h.env.StartGameOver()
	}
}

// NotifyGameOverFinished is called by the session when a game-over
// sequence was canceled and play resumes.
func (h *Hero) NotifyGameOverFinished() {
	h.StartStateFromGround()
	h.whenSuspended = h.env.Now()
}

// --- ground effects ---

// GroundBelow returns the ground kind below the hero as of the last
// position check.
func (h *Hero) GroundBelow() ground.Ground { return h.groundBelow }

// Footsteps returns the number of footstep cues played on decorated
// ground (grass, shallow water).
func (h *Hero) Footsteps() int { return h.footsteps }

// Landings returns the number of layer-drop landings on walkable ground.
func (h *Hero) Landings() int { return h.landings }

// isGroundVisible reports whether a decoration is displayed under the
// hero (grass or shallow water while touching ground).
func (h *Hero) isGroundVisible() bool {
	return (h.groundBelow == ground.Grass || h.groundBelow == ground.ShallowWater) &&
		h.state.IsTouchingGround()
}

func (h *Hero) updateGroundEffects() {
	now := h.env.Now()
	if now < h.nextGroundDate {
		return
	}

	if h.isGroundVisible() && h.movement != nil {
		// Decorated ground: time to play a footstep, throttled by speed.
		speed := float64(h.walkingSpeed)
		if s, ok := h.movement.(interface{ Speed() float64 }); ok && s.Speed() > 0 {
			speed = s.Speed()
		}
		throttle := int64(20000 / speed)
		if throttle < 150 {
			throttle = 150
		}
		h.nextGroundDate = now + throttle

		if h.isWalking() && h.state.IsTouchingGround() {
			h.footsteps++
		}
		return
	}

	switch h.groundBelow {
	case ground.Hole:
		if h.state.CanAvoidHole() {
			return
		}
		// Attracted by the hole: one more pixel toward it.
		h.nextGroundDate = now + 60

		if geom.Distance(h.X(), h.Y(), h.lastSolidGround.X, h.lastSolidGround.Y) >= 8 {
			// Too far from solid ground: fall.
			h.SetWalkingSpeed(h.normalWalkingSpeed)
			h.SetState(NewFalling(h))
		} else {
			h.applyGroundMovement()
		}

	case ground.Ice:
		if !h.state.CanAvoidIce() {
			h.applyGroundMovement()
		}
		h.nextGroundDate = now + 20
		if now >= h.nextIceDate {
			h.updateIce()
			h.iceMovementDir8 = h.WantedMovementDirection8()
		}
	}
}

func (h *Hero) isWalking() bool {
	m, ok := h.movement.(interface{ IsStarted() bool })
	return ok && m.IsStarted()
}

// updateIce recomputes the ice drift from what the player wants against
// what the slide is currently doing.
func (h *Hero) updateIce() {
	now := h.env.Now()
	wanted := h.WantedMovementDirection8()

	if wanted == -1 {
		if h.iceMovementDir8 == -1 {
			// Stopped for a while: stop sliding.
			h.groundDXY = geom.Point{}
			h.nextIceDate = now + 1000
		} else {
			// Just released the controls: momentum continues.
			h.groundDXY = geom.DirectionToXY(h.iceMovementDir8)
			h.nextIceDate = now + 300
		}
		return
	}

	if h.iceMovementDir8 == -1 {
		// Starting to move from a standstill: the ice resists.
		h.groundDXY = geom.DirectionToXY((wanted + 4) % 8)
	} else if h.iceMovementDir8 != wanted {
		// Direction change: the old slide continues.
		h.groundDXY = geom.DirectionToXY(h.iceMovementDir8)
		h.nextIceDate = now + 300
	} else {
		// Same direction: the slide follows.
		h.groundDXY = geom.DirectionToXY(wanted)
		h.nextIceDate = now + 300
	}
}

func (h *Hero) stopIceMovement() {
	h.iceMovementDir8 = -1
	h.groundDXY = geom.Point{}
}

// applyGroundMovement shifts the hero by the current ground drift,
// trying the full vector first and then each axis alone. A fully
// blocked drift into a hole forces the fall.
func (h *Hero) applyGroundMovement() {
	if h.groundDXY.X == 0 && h.groundDXY.Y == 0 {
		return
	}

	moved := false
	attempts := [3]geom.Point{
		h.groundDXY,
		{X: h.groundDXY.X},
		{Y: h.groundDXY.Y},
	}
	for _, d := range attempts {
		if d.X == 0 && d.Y == 0 {
			continue
		}
		box := h.box.Add(d.X, d.Y)
		if !h.env.Map().TestCollisionWithObstacles(h.layer, box, h) {
			h.box = box
			h.NotifyPositionChanged()
			moved = true
			break
		}
	}

	if !moved && h.groundBelow == ground.Hole {
		h.SetWalkingSpeed(h.normalWalkingSpeed)
		h.SetState(NewFalling(h))
	}
}

// --- position checks ---

// NotifyPositionChanged is called whenever the hero's coordinates have
// just changed.
func (h *Hero) NotifyPositionChanged() {
	h.CheckPosition()
	h.state.NotifyPositionChanged()
	h.env.Notifier().NotifyPositionChanged(h.X(), h.Y(), h.layer)
}

// NotifyObstacleReached is called when a movement step was refused.
func (h *Hero) NotifyObstacleReached() {
	h.state.NotifyObstacleReached()

	if h.groundBelow == ground.Ice {
		h.groundDXY = geom.Point{}
		h.iceMovementDir8 = -1
	}
}

// NotifyMovementChanged is called when the movement direction changes.
func (h *Hero) NotifyMovementChanged() {
	wanted := h.WantedMovementDirection8()
	if wanted != -1 && !h.state.IsDirectionLocked() {
		real8 := h.RealMovementDirection8()
		if real8 != -1 && real8%2 == 0 {
			h.dir4 = real8 / 2
		} else if wanted%2 == 0 {
			h.dir4 = wanted / 2
		}
	}

	h.state.NotifyMovementChanged()
	h.CheckPosition()

	if h.groundBelow == ground.Ice {
		h.updateIce()
	}
}

// NotifyMovementFinished is called when a finite movement completes.
func (h *Hero) NotifyMovementFinished() {
	h.state.NotifyMovementFinished()
}

// ResetMovement stops a player-controlled movement so that no residual
// steps play when control returns.
func (h *Hero) ResetMovement() {
	if h.state.CanControlMovement() && h.movement != nil {
		h.movement.Stop()
	}
}

// CheckPosition recomputes everything that depends on the hero's
// coordinates: facing entity, detector collisions, the ground below, the
// remembered solid-ground position and the layer-drop rule.
func (h *Hero) CheckPosition() {
	if h.state == nil || h.state.AreCollisionsIgnored() {
		return
	}

	h.facingEntity = nil
	h.actionEffect = ActionNone
	state := h.state
	h.env.Map().CheckCollisionWithDetectors(h)
	if h.state != state {
		// A detector started another state, whose transition already ran
		// its own position check. Going on would apply stale ground rules
		// to the new state, undoing a layer change the transition made.
		return
	}

	if h.suspended {
		// Coordinates may be transient (map transition).
		return
	}

	h.updateGroundBelow()

	g := h.groundBelow
	if !g.IsBad() && h.state.CanComeFromBadGround() &&
		(h.X() != h.lastSolidGround.X || h.Y() != h.lastSolidGround.Y) {
		h.lastSolidGround = geom.Point{X: h.X(), Y: h.Y()}
		h.lastSolidLayer = h.layer
	}

	if g == ground.Empty && h.state.IsTouchingGround() &&
		h.layer > world.LayerLow &&
		h.env.Map().HasEmptyGround(h.layer, h.box) {

		h.SetLayer(h.layer - 1)
		h.updateGroundBelow()
		newGround := h.groundBelow
		if h.state.IsFree() &&
			(newGround == ground.Traversable || newGround == ground.Grass || newGround == ground.Ladder) {
			h.landings++
		}
	}
}

func (h *Hero) updateGroundBelow() {
	p := h.GroundPoint()
	g := h.env.Map().Ground(h.layer, p.X, p.Y)
	if g != h.groundBelow {
		h.groundBelow = g
		h.NotifyGroundBelowChanged()
	}
}

// NotifyGroundBelowChanged reacts to the new ground kind. Each kind maps
// to exactly one reaction.
func (h *Hero) NotifyGroundBelowChanged() {
	switch g := h.groundBelow; {
	case g == ground.Traversable:
		h.SetWalkingSpeed(h.normalWalkingSpeed)

	case g == ground.DeepWater:
		if !h.state.CanAvoidDeepWater() {
			h.startDeepWater()
		}

	case g == ground.Hole:
		if !h.state.CanAvoidHole() {
			h.startHole()
		}

	case g == ground.Ice:
		if !h.state.CanAvoidIce() {
			h.startIce()
		}

	case g == ground.Lava:
		if !h.state.CanAvoidLava() {
			h.SetState(NewPlunging(h))
		}

	case g == ground.Prickle:
		if !h.state.CanAvoidPrickle() {
			h.startPrickle(500)
		}

	case g == ground.ShallowWater, g == ground.Grass:
		h.startDecoratedGround()

	case g == ground.Ladder:
		h.SetWalkingSpeed(h.normalWalkingSpeed * 3 / 5)

	case g.IsWall():
		// Stuck inside a wall: a content defect. Not recoverable here;
		// leave the hero where he is and let the session intervene.
		h.env.Errorf("hero is stuck in ground %v at (%d, %d) layer %v",
			g, h.X(), h.Y(), h.layer)

	case g == ground.Empty:
		// Handled by the layer-drop rule in CheckPosition.
	}

	h.env.Notifier().NotifyGroundChanged(h.groundBelow)
	h.state.NotifyGroundChanged()
}

// --- ground entries ---

// startDecoratedGround starts grass or shallow water: slow down and
// resume the footstep schedule.
func (h *Hero) startDecoratedGround() {
	now := h.env.Now()
	if h.nextGroundDate < now {
		h.nextGroundDate = now
	}
	h.SetWalkingSpeed(h.normalWalkingSpeed * 4 / 5)
}

func (h *Hero) startDeepWater() {
	if !h.state.IsTouchingGround() {
		h.SetState(NewPlunging(h))
		return
	}
	if h.env.Equipment().HasAbility("swim") {
		h.SetState(NewSwimming(h))
		return
	}
	direction8 := h.WantedMovementDirection8()
	if direction8 == -1 {
		direction8 = h.dir4 * 2
	}
	h.StartJumping(direction8, 32, false)
}

func (h *Hero) startHole() {
	if !h.state.CanControlMovement() {
		// No control (running, being hurt): fall immediately.
		h.SetState(NewFalling(h))
		return
	}

	h.nextGroundDate = h.env.Now()

	if h.lastSolidGround.X == -1 ||
		(h.lastSolidGround.X == h.X() && h.lastSolidGround.Y == h.Y()) {
		// Placed directly on the hole with no drift target: fall now.
		h.SetState(NewFalling(h))
		return
	}

	// Drift one pixel at a time away from the solid ground point.
	h.groundDXY = geom.Point{}
	if h.X() > h.lastSolidGround.X {
		h.groundDXY.X = 1
	} else if h.X() < h.lastSolidGround.X {
		h.groundDXY.X = -1
	}
	if h.Y() > h.lastSolidGround.Y {
		h.groundDXY.Y = 1
	} else if h.Y() < h.lastSolidGround.Y {
		h.groundDXY.Y = -1
	}
	h.SetWalkingSpeed(h.normalWalkingSpeed / 3)
}

func (h *Hero) startIce() {
	now := h.env.Now()
	h.nextGroundDate = now
	h.nextIceDate = now

	h.iceMovementDir8 = h.WantedMovementDirection8()
	if h.iceMovementDir8 == -1 {
		h.groundDXY = geom.Point{}
	} else {
		h.groundDXY = geom.DirectionToXY(h.iceMovementDir8)
	}
}

func (h *Hero) startPrickle(delay int64) {
	h.env.Equipment().RemoveLife(2)
	h.StartBackToSolidGround(false, delay)
}

// --- solid ground bookkeeping ---

// LastSolidGround returns the last remembered safe position, (-1,-1)
// when none was recorded yet.
func (h *Hero) LastSolidGround() (geom.Point, world.Layer) {
	return h.lastSolidGround, h.lastSolidLayer
}

// SetTargetSolidGround memorizes a position where the hero goes back
// after falling into bad ground. Quests set it from special sensors.
func (h *Hero) SetTargetSolidGround(p geom.Point, layer world.Layer) {
	h.targetSolidGround = p
	h.targetSolidLayer = layer
}

// ResetTargetSolidGround forgets the memorized position; the last solid
// ground position is used instead.
func (h *Hero) ResetTargetSolidGround() {
	h.targetSolidGround = geom.Point{X: -1, Y: -1}
}

// --- commands ---

// NotifyCommandPressed routes a pressed command to the current state.
func (h *Hero) NotifyCommandPressed(c Command) {
	h.state.NotifyCommandPressed(c)
}

// NotifyCommandReleased routes a released command to the current state.
func (h *Hero) NotifyCommandReleased(c Command) {
	h.state.NotifyCommandReleased(c)
}

// ActionEffect returns the contextual meaning of the action command.
func (h *Hero) ActionEffect() ActionEffect { return h.actionEffect }

// FacingEntity returns the detector the hero currently faces, if any.
func (h *Hero) FacingEntity() interface{} { return h.facingEntity }

// IsFree reports whether the hero can walk normally and interact.
func (h *Hero) IsFree() bool { return h.state.IsFree() }

// --- map placement ---

// PlaceOnDestination puts the hero on a destination of the map and
// starts the state matching the arrival: stairs if he arrives on some,
// free otherwise.
func (h *Hero) PlaceOnDestination(name string) error {
	m := h.env.Map()
	dest, err := m.Destination(name)
	if err != nil {
		return err
	}

	h.SetXY(dest.X(), dest.Y())
	h.layer = dest.Layer()
	if dest.Direction() != -1 {
		h.dir4 = dest.Direction()
	}
	h.lastSolidGround = geom.Point{X: h.X(), Y: h.Y()}
	h.lastSolidLayer = h.layer
	h.delayedTeletransporter = nil

	if stairs := m.StairsOverlapping(h.layer, h.box); stairs != nil {
		// Arrived by stairs: walk out of them first.
		h.SetState(NewStairs(h, stairs, world.StairsReverseWay))
	} else {
		h.StartFree()
	}
	return nil
}
