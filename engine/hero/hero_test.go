package hero

import (
	"fmt"
	"testing"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/world"
	"github.com/nathoo/actioncore/geom"
	"github.com/nathoo/actioncore/types"
)

type fakeEquipment struct {
	life      int
	abilities map[string]bool
}

func (e *fakeEquipment) Life() int { return e.life }

func (e *fakeEquipment) RemoveLife(points int) {
	e.life -= points
	if e.life < 0 {
		e.life = 0
	}
}

func (e *fakeEquipment) HasAbility(name string) bool { return e.abilities[name] }

type fakeCommands struct {
	wanted  int
	pressed map[Command]bool
}

func (c *fakeCommands) WantedDirection8() int    { return c.wanted }
func (c *fakeCommands) IsPressed(cmd Command) bool { return c.pressed[cmd] }

type fakeNotifier struct {
	states    []string
	grounds   []string
	treasures []string
	sensors   []string
	switches  []string
}

func (n *fakeNotifier) NotifyPositionChanged(x, y int, layer world.Layer) {}
func (n *fakeNotifier) NotifyGroundChanged(g ground.Ground)              { n.grounds = append(n.grounds, g.String()) }
func (n *fakeNotifier) NotifyStateChanged(name string)                   { n.states = append(n.states, name) }
func (n *fakeNotifier) NotifyTreasureObtained(treasure string)           { n.treasures = append(n.treasures, treasure) }
func (n *fakeNotifier) NotifySensorActivated(name string)                { n.sensors = append(n.sensors, name) }
func (n *fakeNotifier) NotifySwitchActivated(name string)                { n.switches = append(n.switches, name) }

type testEnv struct {
	m        *world.Map
	clock    *clock.Manual
	equip    *fakeEquipment
	commands *fakeCommands
	notifier *fakeNotifier

	gameOvers  int
	transports []*world.Teletransporter
	errors     []string
}

func (e *testEnv) Map() *world.Map                     { return e.m }
func (e *testEnv) Now() int64                          { return e.clock.Now() }
func (e *testEnv) Equipment() Equipment                { return e.equip }
func (e *testEnv) Commands() Commands                  { return e.commands }
func (e *testEnv) Notifier() Notifier                  { return e.notifier }
func (e *testEnv) StartGameOver()                      { e.gameOvers++ }
func (e *testEnv) Transport(t *world.Teletransporter)  { e.transports = append(e.transports, t) }

func (e *testEnv) Errorf(format string, args ...interface{}) {
	e.errors = append(e.errors, fmt.Sprintf(format, args...))
}

// plainMapDef is a 96x96 map exercising most ground kinds:
// a hole pool, an ice patch, a shallow-water row and a ladder.
func plainMapDef() *types.MapDef {
	return &types.MapDef{
		ID:     "proving_grounds",
		Width:  96,
		Height: 96,
		Tiles: [][]string{{
			"############",
			"#..........#",
			"#..........#",
			"#...oo.....#",
			"#...oo.....#",
			"#........^.#",
			"#...**.....#",
			"#...**.....#",
			"#,,,,,,,,..#",
			"#.....H....#",
			"#..........#",
			"############",
		}},
	}
}

func newTestEnv(t *testing.T, def *types.MapDef) (*testEnv, *Hero) {
	t.Helper()
	m, err := world.NewMap(def)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	env := &testEnv{
		m:        m,
		clock:    clock.NewManual(0),
		equip:    &fakeEquipment{life: 12, abilities: map[string]bool{}},
		commands: &fakeCommands{wanted: -1, pressed: map[Command]bool{}},
		notifier: &fakeNotifier{},
	}
	return env, New(env)
}

// moveTo teleports the hero's origin point and runs the position checks,
// like a movement step would.
func moveTo(h *Hero, x, y int) {
	h.SetXY(x, y)
	h.NotifyPositionChanged()
}

// run ticks the simulation for the given duration in small steps.
func run(env *testEnv, h *Hero, ms int64) {
	for elapsed := int64(0); elapsed < ms; elapsed += 5 {
		env.clock.Advance(5)
		h.Update()
	}
}

// badStopState misbehaves once: instead of stopping, it starts a state
// of its own choosing.
type badStopState struct {
	baseState
	rogue     State
	misfired  bool
}

func (s *badStopState) Stop(State) {
	if s.misfired {
		return
	}
	s.misfired = true
	s.hero.SetState(s.rogue)
}

func TestSetStateForcesIntendedStateAfterRogueStop(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 44)
	h.StartFree()

	rogue := NewGrabbing(h)
	bad := &badStopState{baseState: newBaseState(h, "bad"), rogue: rogue}
	h.SetState(bad)

	intended := NewFreezed(h)
	h.SetState(intended)

	if h.State() != intended {
		t.Fatalf("current state = %q, want the intended %q", h.StateName(), intended.Name())
	}
	if len(env.errors) != 1 {
		t.Fatalf("errors reported = %d, want exactly 1: %v", len(env.errors), env.errors)
	}
}

func TestRetiredStatesDrainedAfterUpdate(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 44)
	h.StartFree()
	h.StartFreezed()

	if len(h.oldStates) == 0 {
		t.Fatal("expected the replaced state to be retired, not discarded")
	}
	env.clock.Advance(5)
	h.Update()
	if len(h.oldStates) != 0 {
		t.Fatalf("retired states not drained: %d left", len(h.oldStates))
	}
}

func TestSuspensionShiftsGroundDeadline(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 44)
	h.StartFree()

	h.nextGroundDate = 1000
	env.clock.Set(100)
	h.SetSuspended(true)
	h.SetSuspended(true) // idempotent
	env.clock.Set(500)
	h.SetSuspended(false)

	if h.nextGroundDate != 1400 {
		t.Errorf("nextGroundDate = %d after 400ms suspension, want 1400", h.nextGroundDate)
	}
	if h.IsSuspended() {
		t.Error("hero still suspended after resume")
	}
}

func TestHoleDriftsThenFalls(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	// Solid ground just left of the hole pool (cells 4-5 of rows 3-4).
	h.SetXY(28, 34)
	h.StartFree()
	if p, _ := h.LastSolidGround(); p.X != 28 || p.Y != 34 {
		t.Fatalf("last solid ground = %v, want (28, 34)", p)
	}

	// Step onto the hole, 6 pixels from safety.
	moveTo(h, 34, 34)
	if h.GroundBelow() != ground.Hole {
		t.Fatalf("ground below = %v, want hole", h.GroundBelow())
	}
	if h.StateName() != "free" {
		t.Fatalf("state = %q, want free while still close to solid ground", h.StateName())
	}
	if h.WalkingSpeed() != NormalWalkingSpeed/3 {
		t.Errorf("walking speed on hole edge = %d, want %d", h.WalkingSpeed(), NormalWalkingSpeed/3)
	}

	// The drift pulls away from the solid ground point, one pixel per
	// 60ms tick, until the distance reaches 8 and the fall starts.
	x := h.X()
	run(env, h, 300)
	if h.X() <= x {
		t.Errorf("hole drift did not move the hero away: x still %d", h.X())
	}
	if h.StateName() != "falling" {
		t.Errorf("state = %q after drifting out of reach, want falling", h.StateName())
	}
	if h.WalkingSpeed() != NormalWalkingSpeed {
		t.Errorf("walking speed = %d when the fall starts, want restored %d", h.WalkingSpeed(), NormalWalkingSpeed)
	}
}

func TestHoleWithoutSolidGroundFallsImmediately(t *testing.T) {
	_, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 34) // origin directly over the hole pool
	h.StartFree()

	if h.StateName() != "falling" {
		t.Fatalf("state = %q, want falling with no solid ground to drift from", h.StateName())
	}
}

func TestFallingEndRemovesLifeAndReturnsToSolidGround(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(28, 34)
	h.StartFree()
	moveTo(h, 34, 34)
	run(env, h, 300) // drift out of reach, start falling
	if h.StateName() != "falling" {
		t.Fatalf("state = %q, want falling", h.StateName())
	}
	life := env.equip.life

	run(env, h, 800)              // fall animation
	run(env, h, 1000)             // travel back
	if env.equip.life != life-1 {
		t.Errorf("life = %d after the fall, want %d", env.equip.life, life-1)
	}
	if h.StateName() != "free" {
		t.Errorf("state = %q after returning, want free", h.StateName())
	}
	if h.X() != 28 || h.Y() != 34 {
		t.Errorf("hero at (%d, %d), want back at solid ground (28, 34)", h.X(), h.Y())
	}
}

func TestFallingIntoTeletransporterTransports(t *testing.T) {
	def := plainMapDef()
	def.Teletransporters = []types.TeletransporterDef{{
		Placement: types.Placement{Name: "pit_exit", X: 32, Y: 24},
		Width:     16, Height: 16,
		Destination: "from_pit",
		Side:        -1,
	}}
	env, h := newTestEnv(t, def)

	h.SetXY(40, 34) // over the hole, inside the transporter
	h.StartFree()
	if h.StateName() != "falling" {
		t.Fatalf("state = %q, want falling", h.StateName())
	}

	run(env, h, 800)
	if len(env.transports) == 0 {
		t.Fatal("transporter under the hole was not used when the fall ended")
	}
	if env.transports[0].Destination() != "from_pit" {
		t.Errorf("transported toward %q, want from_pit", env.transports[0].Destination())
	}
}

func TestIceDrift(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 57) // ground point (40, 55) on the ice patch
	h.StartFree()
	if h.GroundBelow() != ground.Ice {
		t.Fatalf("ground below = %v, want ice", h.GroundBelow())
	}
	env.clock.Set(2000)
	now := env.clock.Now()

	cases := []struct {
		name     string
		wanted   int
		sliding  int
		wantDXY  geom.Point
		wantDate int64
	}{
		{"standing still", -1, -1, geom.Point{}, now + 1000},
		{"released controls", -1, 2, geom.Point{X: 0, Y: -1}, now + 300},
		{"starting against resistance", 0, -1, geom.Point{X: -1, Y: 0}, 0},
		{"turning keeps the old slide", 0, 4, geom.Point{X: -1, Y: 0}, now + 300},
		{"steady direction", 0, 0, geom.Point{X: 1, Y: 0}, now + 300},
	}
	for _, c := range cases {
		env.commands.wanted = c.wanted
		h.iceMovementDir8 = c.sliding
		h.nextIceDate = 0
		h.updateIce()
		if h.groundDXY != c.wantDXY {
			t.Errorf("%s: drift = %v, want %v", c.name, h.groundDXY, c.wantDXY)
		}
		if c.wantDate != 0 && h.nextIceDate != c.wantDate {
			t.Errorf("%s: next ice date = %d, want %d", c.name, h.nextIceDate, c.wantDate)
		}
		if c.wantDate == 0 && h.nextIceDate != 0 {
			t.Errorf("%s: next ice date = %d, want unchanged", c.name, h.nextIceDate)
		}
	}
}

func TestGroundWalkingSpeeds(t *testing.T) {
	_, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 85) // plain ground
	h.StartFree()
	if h.WalkingSpeed() != NormalWalkingSpeed {
		t.Fatalf("walking speed = %d on plain ground, want %d", h.WalkingSpeed(), NormalWalkingSpeed)
	}

	moveTo(h, 20, 70) // ground point (20, 68) on shallow water
	if h.GroundBelow() != ground.ShallowWater {
		t.Fatalf("ground below = %v, want shallow water", h.GroundBelow())
	}
	if want := NormalWalkingSpeed * 4 / 5; h.WalkingSpeed() != want {
		t.Errorf("walking speed = %d on shallow water, want %d", h.WalkingSpeed(), want)
	}

	moveTo(h, 52, 78) // ground point (52, 76) on the ladder
	if h.GroundBelow() != ground.Ladder {
		t.Fatalf("ground below = %v, want ladder", h.GroundBelow())
	}
	if want := NormalWalkingSpeed * 3 / 5; h.WalkingSpeed() != want {
		t.Errorf("walking speed = %d on a ladder, want %d", h.WalkingSpeed(), want)
	}

	moveTo(h, 52, 50) // back to plain ground
	if h.WalkingSpeed() != NormalWalkingSpeed {
		t.Errorf("walking speed = %d back on plain ground, want %d", h.WalkingSpeed(), NormalWalkingSpeed)
	}
}

func TestFootstepsOnShallowWater(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(20, 70) // on the shallow-water row
	h.StartFree()

	env.commands.wanted = 0 // walk east along the row
	run(env, h, 580)

	if h.Footsteps() < 2 {
		t.Errorf("footsteps = %d after 580ms of walking on shallow water, want at least 2", h.Footsteps())
	}
}

func TestPrickleSendsBackToSolidGround(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(60, 44)
	h.StartFree()
	life := env.equip.life

	moveTo(h, 76, 44) // ground point on the prickle cell
	if h.StateName() != "back to solid ground" {
		t.Fatalf("state = %q on prickles, want back to solid ground", h.StateName())
	}
	if env.equip.life != life-2 {
		t.Errorf("life = %d after prickles, want %d", env.equip.life, life-2)
	}

	run(env, h, 1200)
	if h.StateName() != "free" {
		t.Errorf("state = %q after the return, want free", h.StateName())
	}
	if h.X() != 60 || h.Y() != 44 {
		t.Errorf("hero at (%d, %d), want back at (60, 44)", h.X(), h.Y())
	}
}

func TestDeepWaterJumpsWithoutSwimAbility(t *testing.T) {
	def := plainMapDef()
	def.Tiles[0][10] = "#..~~~~....#"
	_, h := newTestEnv(t, def)

	h.SetXY(40, 86) // ground point (40, 84) in deep water
	h.StartFree()
	if h.StateName() != "jumping" {
		t.Fatalf("state = %q in deep water without swim, want jumping", h.StateName())
	}
}

func TestDeepWaterSwimsWithAbility(t *testing.T) {
	def := plainMapDef()
	def.Tiles[0][10] = "#..~~~~....#"
	env, h := newTestEnv(t, def)
	env.equip.abilities["swim"] = true

	h.SetXY(40, 86)
	h.StartFree()
	if h.StateName() != "swimming" {
		t.Fatalf("state = %q in deep water with swim, want swimming", h.StateName())
	}
	if want := NormalWalkingSpeed / 2; h.WalkingSpeed() != want {
		t.Errorf("swimming speed = %d, want %d", h.WalkingSpeed(), want)
	}
}

func TestSensorFiresOncePerStay(t *testing.T) {
	def := plainMapDef()
	def.Sensors = []types.SensorDef{{Placement: types.Placement{Name: "alarm", X: 16, Y: 8}}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(16, 8) // box exactly on the sensor
	h.StartFree()
	run(env, h, 50)
	if len(env.notifier.sensors) != 1 {
		t.Fatalf("sensor fired %d times, want once", len(env.notifier.sensors))
	}

	moveTo(h, 60, 60) // leave, re-arming the sensor
	run(env, h, 20)
	h.SetTopLeftXY(16, 8)
	h.NotifyPositionChanged()
	run(env, h, 20)
	if len(env.notifier.sensors) != 2 {
		t.Errorf("sensor fired %d times after leaving and returning, want 2", len(env.notifier.sensors))
	}
}

func TestWalkableSwitchActivates(t *testing.T) {
	def := plainMapDef()
	def.Switches = []types.SwitchDef{{
		Placement: types.Placement{Name: "floor_button", X: 16, Y: 8},
		Walkable:  true,
	}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(16, 8)
	h.StartFree()
	run(env, h, 20)
	if len(env.notifier.switches) != 1 {
		t.Fatalf("switch activated %d times, want once", len(env.notifier.switches))
	}
	if env.notifier.switches[0] != "floor_button" {
		t.Errorf("activated switch %q, want floor_button", env.notifier.switches[0])
	}
}

func TestTeletransporterTransportsImmediately(t *testing.T) {
	def := plainMapDef()
	def.Teletransporters = []types.TeletransporterDef{{
		Placement:   types.Placement{Name: "door", X: 32, Y: 8},
		Destination: "elsewhere",
		Side:        -1,
	}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(32, 8) // center inside the transporter
	h.StartFree()
	run(env, h, 10)
	if len(env.transports) == 0 {
		t.Fatal("transporter not used while standing on it")
	}
}

func TestConveyorBeltCarriesAcross(t *testing.T) {
	def := plainMapDef()
	def.ConveyorBelts = []types.ConveyorBeltDef{{
		Placement: types.Placement{Name: "belt", X: 40, Y: 16},
		Direction: 0,
	}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(32, 8) // center on the belt
	h.StartFree()
	env.clock.Advance(5)
	h.Update()
	if h.StateName() != "conveyor belt" {
		t.Fatalf("state = %q on the belt, want conveyor belt", h.StateName())
	}

	run(env, h, 500)
	if h.StateName() != "free" {
		t.Errorf("state = %q after crossing, want free", h.StateName())
	}
	if got := h.BoundingBox().X; got != 48 {
		t.Errorf("box x = %d after the belt, want 48 (two 8-pixel hops)", got)
	}
}

func TestWalkingTurnsTheHero(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 84)
	h.StartFree()
	h.SetAnimationDirection(3) // facing down

	env.commands.wanted = 4 // walk left
	run(env, h, 100)
	if h.AnimationDirection() != 2 {
		t.Errorf("animation direction = %d walking left, want 2", h.AnimationDirection())
	}
	if h.X() >= 40 {
		t.Errorf("x = %d after walking left, want less than 40", h.X())
	}
}

func TestHurtKnockbackAndRecovery(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(24, 84)
	h.StartFree()
	life := env.equip.life

	h.Hurt(geom.Point{X: 24, Y: 92}, 1) // hit from below
	if h.StateName() != "hurt" {
		t.Fatalf("state = %q after a hit, want hurt", h.StateName())
	}
	if env.equip.life != life-1 {
		t.Errorf("life = %d after a hit, want %d", env.equip.life, life-1)
	}

	// While hurt, further hits are ignored.
	h.Hurt(geom.Point{X: 24, Y: 92}, 1)
	if env.equip.life != life-1 {
		t.Errorf("life = %d after a hit during invulnerability, want unchanged %d", env.equip.life, life-1)
	}

	y := h.Y()
	run(env, h, 250)
	if h.Y() >= y {
		t.Errorf("hero y = %d after knockback from below, want above %d", h.Y(), y)
	}

	run(env, h, 400)
	if h.StateName() != "free" {
		t.Errorf("state = %q after the hurt time, want free", h.StateName())
	}
}

func TestEnemyContactHurts(t *testing.T) {
	def := plainMapDef()
	def.Enemies = []types.EnemyDef{{
		Placement: types.Placement{Name: "slime", X: 56, Y: 44},
		Damage:    2,
	}}
	env, h := newTestEnv(t, def)

	h.SetXY(48, 44) // boxes overlap
	life := env.equip.life
	h.StartFree() // the first position check already touches the enemy
	run(env, h, 10)

	if h.StateName() != "hurt" {
		t.Fatalf("state = %q touching an enemy, want hurt", h.StateName())
	}
	if env.equip.life != life-2 {
		t.Errorf("life = %d, want %d", env.equip.life, life-2)
	}
}

func TestGameOverStartsWhenLifeRunsOut(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 44)
	h.StartFree()

	env.equip.life = 0
	run(env, h, 10)
	if env.gameOvers == 0 {
		t.Fatal("game-over sequence not started at zero life")
	}

	env.equip.life = 12
	h.NotifyGameOverFinished()
	if h.StateName() != "free" {
		t.Errorf("state = %q after the game-over resolved, want free", h.StateName())
	}
}

func TestChestOpensIntoTreasure(t *testing.T) {
	def := plainMapDef()
	def.Chests = []types.ChestDef{{
		Placement: types.Placement{Name: "chest", X: 64, Y: 8},
		Treasure:  "silver_key",
	}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(64, 24) // just below the chest
	h.StartFree()
	h.SetAnimationDirection(1) // face it
	run(env, h, 10)

	if h.ActionEffect() != ActionOpen {
		t.Fatalf("action effect = %v facing a closed chest, want open", h.ActionEffect())
	}

	h.NotifyCommandPressed(CommandAction)
	if h.StateName() != "treasure" {
		t.Fatalf("state = %q after opening, want treasure", h.StateName())
	}
	if len(env.notifier.treasures) != 1 || env.notifier.treasures[0] != "silver_key" {
		t.Errorf("treasures notified = %v, want [silver_key]", env.notifier.treasures)
	}

	run(env, h, 1600)
	if h.StateName() != "free" {
		t.Errorf("state = %q after brandishing, want free", h.StateName())
	}
}

func TestGrabbingFollowsActionCommand(t *testing.T) {
	def := plainMapDef()
	def.Blocks = []types.BlockDef{{Placement: types.Placement{X: 64, Y: 8}}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(64, 24)
	h.StartFree()
	h.SetAnimationDirection(1)
	run(env, h, 10)

	if h.ActionEffect() != ActionGrab {
		t.Fatalf("action effect = %v facing a block, want grab", h.ActionEffect())
	}
	env.commands.pressed[CommandAction] = true
	h.NotifyCommandPressed(CommandAction)
	if h.StateName() != "grabbing" {
		t.Fatalf("state = %q, want grabbing", h.StateName())
	}

	env.commands.pressed[CommandAction] = false
	run(env, h, 10)
	if h.StateName() != "free" {
		t.Errorf("state = %q after releasing the action command, want free", h.StateName())
	}
}

func TestLiftingCarriesDestructible(t *testing.T) {
	def := plainMapDef()
	def.Destructibles = []types.DestructibleDef{{
		Placement: types.Placement{Name: "pot", X: 72, Y: 21},
		Weight:    0,
	}}
	env, h := newTestEnv(t, def)

	h.SetTopLeftXY(64, 24)
	h.StartFree()
	h.SetAnimationDirection(1)
	run(env, h, 10)

	if h.ActionEffect() != ActionLift {
		t.Fatalf("action effect = %v facing a pot, want lift", h.ActionEffect())
	}
	h.NotifyCommandPressed(CommandAction)
	if h.StateName() != "lifting" {
		t.Fatalf("state = %q, want lifting", h.StateName())
	}

	run(env, h, 600)
	if h.StateName() != "carrying" {
		t.Fatalf("state = %q after the lift, want carrying", h.StateName())
	}
	c, ok := h.State().(*Carrying)
	if !ok || c.CarriedItem() != "pot" {
		t.Errorf("carried item = %v, want pot", h.State())
	}

	// Throwing returns to plain free.
	h.NotifyCommandPressed(CommandAction)
	if h.StateName() != "free" {
		t.Errorf("state = %q after throwing, want free", h.StateName())
	}
}

// layeredMapDef is a two-layer map: a full low layer and a partial
// platform on the intermediate layer, with inside-floor stairs leading
// up to it and a destination hanging over the void.
func layeredMapDef() *types.MapDef {
	return &types.MapDef{
		ID:     "terraces",
		Width:  96,
		Height: 96,
		Tiles: [][]string{
			{
				"############",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"#..........#",
				"############",
			},
			{
				"            ",
				"            ",
				"  ........  ",
				"  ........  ",
				"  ........  ",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
				"            ",
			},
		},
		Destinations: []types.DestinationDef{{
			Placement: types.Placement{Name: "over_the_void", Layer: 1, X: 80, Y: 80},
			Direction: 3,
		}},
		Stairs: []types.StairsDef{{
			Placement:   types.Placement{Name: "steps", X: 40, Y: 40},
			Direction:   1,
			InsideFloor: true,
		}},
	}
}

func TestLayerDropOverEmptyGround(t *testing.T) {
	_, h := newTestEnv(t, layeredMapDef())

	if err := h.PlaceOnDestination("over_the_void"); err != nil {
		t.Fatalf("PlaceOnDestination: %v", err)
	}
	if h.Layer() != world.LayerLow {
		t.Errorf("layer = %v standing over empty ground, want the drop to low", h.Layer())
	}
	if h.Landings() != 1 {
		t.Errorf("landings = %d, want 1", h.Landings())
	}
}

func TestInsideFloorStairsClimbToUpperLayer(t *testing.T) {
	env, h := newTestEnv(t, layeredMapDef())
	h.SetXY(48, 70) // below the stairs
	h.StartFree()

	env.commands.wanted = 2 // walk up into them
	run(env, h, 400)
	if h.StateName() != "stairs" {
		t.Fatalf("state = %q walking into inside-floor stairs, want stairs", h.StateName())
	}
	if h.Layer() != world.LayerIntermediate {
		t.Fatalf("layer = %v on the stairs, want intermediate", h.Layer())
	}

	env.commands.wanted = -1
	run(env, h, 1000)
	if h.StateName() != "free" {
		t.Errorf("state = %q after the climb, want free", h.StateName())
	}
	if h.Layer() != world.LayerIntermediate {
		t.Errorf("layer = %v after the climb, want intermediate", h.Layer())
	}
}

func TestJumperStartsJump(t *testing.T) {
	def := plainMapDef()
	def.Jumpers = []types.JumperDef{{
		Placement: types.Placement{Name: "ledge", X: 56, Y: 72},
		Width:     8, Height: 8,
		Direction: 0,
		JumpLen:   32,
	}}
	env, h := newTestEnv(t, def)

	h.SetXY(44, 82) // box right edge just left of the jumper
	h.StartFree()
	env.commands.wanted = 0
	run(env, h, 150)

	if h.StateName() != "jumping" {
		t.Fatalf("state = %q after walking into a jumper, want jumping", h.StateName())
	}
	j := h.State().(*Jumping)
	if j.Direction8() != 0 {
		t.Errorf("jump direction = %d, want 0", j.Direction8())
	}
}

func TestRunningChargesAndStopsAtWall(t *testing.T) {
	env, h := newTestEnv(t, plainMapDef())
	h.SetXY(40, 85)
	h.StartFree()
	h.SetAnimationDirection(0)
	env.equip.abilities["run"] = true

	h.NotifyCommandPressed(CommandAttack)
	if h.StateName() != "running" {
		t.Fatalf("state = %q after the run command, want running", h.StateName())
	}

	x := h.X()
	run(env, h, 350) // warmup, then full speed
	if h.X() <= x {
		t.Errorf("hero did not move during the run: x still %d", h.X())
	}

	run(env, h, 500) // east wall stops the run
	if h.StateName() != "free" {
		t.Errorf("state = %q after hitting the wall, want free", h.StateName())
	}
}

func TestBlockingStreamFreezesUntilCarried(t *testing.T) {
	def := plainMapDef()
	def.Streams = []types.StreamDef{{
		Placement:     types.Placement{Name: "current", X: 40, Y: 68},
		Direction:     0,
		Speed:         88,
		AllowMovement: false,
	}}
	env, h := newTestEnv(t, def)

	h.SetXY(40, 70) // ground point (40, 68) on the stream
	h.StartFree()
	run(env, h, 10)

	if h.StateName() != "freezed" {
		t.Fatalf("state = %q on a blocking stream, want freezed", h.StateName())
	}
	if h.StreamAction() == nil {
		t.Fatal("no stream action while on the stream")
	}

	run(env, h, 800)
	if h.StateName() != "free" {
		t.Errorf("state = %q after the stream released the hero, want free", h.StateName())
	}
	if h.StreamAction() != nil {
		t.Error("stream action still present after it finished")
	}
}
