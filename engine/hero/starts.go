package hero

import "github.com/nathoo/actioncore/engine/ground"

// StartFree lets the hero walk normally.
func (h *Hero) StartFree() {
	if h.state == nil || !h.state.IsFree() {
		h.SetState(NewFree(h))
	}
}

// StartFreeOrCarrying lets the hero walk, keeping a carried item from
// the previous state.
func (h *Hero) StartFreeOrCarrying() {
	if h.state != nil && h.state.IsCarryingItem() {
		if c, ok := h.state.(carrier); ok {
			h.SetState(NewCarrying(h, c.CarriedItem()))
			return
		}
	}
	h.SetState(NewFree(h))
}

// carrier is implemented by states holding a carried item.
type carrier interface {
	CarriedItem() string
}

// StartTreasure makes the hero brandish a treasure.
func (h *Hero) StartTreasure(treasure string) {
	h.SetState(NewTreasure(h, treasure))
}

// StartVictory makes the hero play the victory pose.
func (h *Hero) StartVictory() {
	h.SetState(NewVictory(h))
}

// StartFreezed freezes the hero until something else starts a state.
func (h *Hero) StartFreezed() {
	h.SetState(NewFreezed(h))
}

// StartForcedWalking walks the hero along a predetermined path; the
// player has no control.
func (h *Hero) StartForcedWalking(path string, loop, ignoreObstacles bool) {
	h.SetState(NewForcedWalking(h, path, loop, ignoreObstacles))
}

// StartJumping makes the hero jump in an 8-way direction over the given
// distance in pixels.
func (h *Hero) StartJumping(direction8, distance int, ignoreObstacles bool) {
	h.SetState(NewJumping(h, direction8, distance, ignoreObstacles))
}

// StartGrabbing makes the hero grab the obstacle he is facing.
func (h *Hero) StartGrabbing() {
	h.SetState(NewGrabbing(h))
}

// StartLifting makes the hero lift an entity; he carries it afterwards.
func (h *Hero) StartLifting(item string) {
	h.SetState(NewLifting(h, item))
}

// StartRunning makes the hero run straight ahead until he hits
// something or the command is released.
func (h *Hero) StartRunning(command Command) {
	h.SetState(NewRunning(h, command))
}

// StartItem uses an equipment item for its fixed duration.
func (h *Hero) StartItem(item string) {
	h.SetState(NewUsingItem(h, item))
}

// StartBoomerang makes the hero throw a boomerang.
func (h *Hero) StartBoomerang() {
	h.SetState(NewBoomerang(h))
}

// StartBow makes the hero shoot an arrow.
func (h *Hero) StartBow() {
	h.SetState(NewBow(h))
}

// StartHookshot makes the hero shoot the hookshot.
func (h *Hero) StartHookshot() {
	h.SetState(NewHookshot(h))
}

// StartBackToSolidGround brings the hero back to his last safe position
// (or the memorized one), ignoring everything on the way.
func (h *Hero) StartBackToSolidGround(useMemorized bool, endDelay int64) {
	h.SetState(NewBackToSolidGround(h, useMemorized, endDelay))
}

// StartStateFromGround starts the state matching the current ground.
// Called when a state that ignored the ground ends (a jump lands) and
// the ground's effect must apply no matter whether it changed.
func (h *Hero) StartStateFromGround() {
	switch g := h.groundBelow; {
	case g == ground.DeepWater || g == ground.Lava:
		h.SetState(NewPlunging(h))

	case g == ground.Hole:
		h.SetState(NewFalling(h))

	case g == ground.Prickle:
		h.SetState(NewFree(h))
		h.startPrickle(0)

	case g == ground.ShallowWater || g == ground.Grass:
		h.startDecoratedGround()
		h.StartFreeOrCarrying()

	case g.IsWall():
		// Probably sent here by a teletransporter; a content defect.
		h.env.Errorf("hero landed in ground %v at (%d, %d)", g, h.X(), h.Y())
		h.StartFreeOrCarrying()

	default:
		// Traversable, empty, ladder, ice.
		h.StartFreeOrCarrying()
	}
}
