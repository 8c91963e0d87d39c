package movement

import (
	"testing"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/geom"
)

// fakeBody is a hero-shaped body on an open field with a single vertical
// wall at wallX (use a large value for no wall).
type fakeBody struct {
	x, y       int
	wallX      int
	moves      int
	obstacles  int
	dirChanges int
}

func newFakeBody(x, y int) *fakeBody {
	return &fakeBody{x: x, y: y, wallX: 1 << 20}
}

func (b *fakeBody) X() int         { return b.x }
func (b *fakeBody) Y() int         { return b.y }
func (b *fakeBody) SetXY(x, y int) { b.x, b.y = x, y }

func (b *fakeBody) BoundingBox() geom.Rect {
	return geom.NewRect(b.x-8, b.y-13, 16, 16)
}

func (b *fakeBody) TestCollisionWithObstacles(box geom.Rect) bool {
	return box.X+box.W > b.wallX
}

func (b *fakeBody) NotifyPositionChanged() { b.moves++ }
func (b *fakeBody) NotifyObstacleReached() { b.obstacles++ }
func (b *fakeBody) NotifyMovementChanged() { b.dirChanges++ }

func TestStraightCardinalTiming(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	m := NewStraight(c, body)
	m.SetDirection8(0)
	m.SetSpeed(100)

	// One pixel every 10 ms.
	c.Advance(95)
	m.Update()
	if body.moves != 9 {
		t.Errorf("moves after 95 ms = %d, want 9", body.moves)
	}
	if body.x != 59 || body.y != 50 {
		t.Errorf("position = (%d, %d), want (59, 50)", body.x, body.y)
	}
}

func TestStraightDiagonalAxisDelay(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	m := NewStraight(c, body)
	m.SetDirection8(1) // right-up
	m.SetSpeed(100)

	// Each axis runs at speed/sqrt(2): 14 ms per pixel instead of 10.
	c.Advance(13)
	m.Update()
	if body.moves != 0 {
		t.Error("diagonal moved before its axis delay")
	}
	c.Advance(1)
	m.Update()
	if body.x != 51 || body.y != 49 {
		t.Errorf("position after 14 ms = (%d, %d), want (51, 49)", body.x, body.y)
	}
}

func TestStraightSlidesAlongWall(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	body.wallX = 58 // box right edge already touches the wall
	m := NewStraight(c, body)
	m.SetDirection8(1)
	m.SetSpeed(100)

	c.Advance(14 * 4)
	m.Update()
	if body.x != 50 {
		t.Errorf("x = %d, blocked axis moved", body.x)
	}
	if body.y >= 50 {
		t.Errorf("y = %d, free axis did not slide", body.y)
	}
	if body.obstacles == 0 {
		t.Error("obstacle never reported")
	}
}

func TestStraightSuspension(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	m := NewStraight(c, body)
	m.SetDirection8(0)
	m.SetSpeed(100)

	c.Advance(5)
	m.SetSuspended(true)
	c.Advance(500)
	m.Update()
	if body.moves != 0 {
		t.Error("suspended movement stepped")
	}

	m.SetSuspended(false)
	m.Update()
	if body.moves != 0 {
		t.Error("resume replayed suspended time")
	}
	c.Advance(5)
	m.Update()
	if body.moves != 1 {
		t.Errorf("moves after resume + 5 ms = %d, want 1", body.moves)
	}
}

// fixedIntent wants a settable direction.
type fixedIntent struct{ dir int }

func (i *fixedIntent) WantedDirection8() int { return i.dir }

func TestPlayerFollowsIntent(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	intent := &fixedIntent{dir: -1}
	m := NewPlayer(c, body, intent)
	m.SetMovingSpeed(100)

	c.Advance(50)
	m.Update()
	if body.moves != 0 {
		t.Error("moved without a wanted direction")
	}

	intent.dir = 6 // down
	m.Update()     // adopts the direction, schedules from now
	c.Advance(30)
	m.Update()
	if body.y != 53 {
		t.Errorf("y = %d, want 53", body.y)
	}

	intent.dir = -1
	m.Update()
	if m.IsStarted() {
		t.Error("still started after releasing all directions")
	}
	c.Advance(100)
	m.Update()
	if body.y != 53 {
		t.Error("moved while stopped")
	}
}

func TestPlayerNotifiesDirectionChanges(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	intent := &fixedIntent{dir: -1}
	m := NewPlayer(c, body, intent)
	m.SetMovingSpeed(100)

	m.Update()
	if body.dirChanges != 0 {
		t.Error("movement change reported without a direction change")
	}

	intent.dir = 4 // left
	m.Update()
	if body.dirChanges != 1 {
		t.Fatalf("movement changes after turning = %d, want 1", body.dirChanges)
	}
	m.Update() // same direction, nothing new
	if body.dirChanges != 1 {
		t.Errorf("movement changes without turning = %d, want still 1", body.dirChanges)
	}

	intent.dir = -1
	m.Update() // stopping is a change too
	if body.dirChanges != 2 {
		t.Errorf("movement changes after stopping = %d, want 2", body.dirChanges)
	}
}

func TestPathElements(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	m, err := NewPath(c, body, "06", 100, false, false)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 40; i++ {
		c.Advance(10)
		m.Update()
	}
	if !m.IsFinished() {
		t.Fatal("path not finished")
	}
	// 8 px right then 8 px down.
	if body.x != 58 || body.y != 58 {
		t.Errorf("final position = (%d, %d), want (58, 58)", body.x, body.y)
	}
	if body.moves != 16 {
		t.Errorf("moves = %d, want 16", body.moves)
	}
}

func TestPathLoops(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	m, err := NewPath(c, body, "0", 100, true, false)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 30; i++ {
		c.Advance(10)
		m.Update()
	}
	if m.IsFinished() {
		t.Error("looping path finished")
	}
	if body.x <= 58 {
		t.Errorf("x = %d, loop did not continue past one element", body.x)
	}
}

func TestPathStopsAtObstacle(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	body.wallX = 61 // 3 free pixels to the right
	m, err := NewPath(c, body, "0", 100, false, false)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		c.Advance(10)
		m.Update()
	}
	if !m.IsFinished() {
		t.Error("path not finished at obstacle")
	}
	if body.x != 53 {
		t.Errorf("x = %d, want 53", body.x)
	}
	if body.obstacles != 1 {
		t.Errorf("obstacle reported %d times, want 1", body.obstacles)
	}
}

func TestPathValidation(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	if _, err := NewPath(c, body, "", 100, false, false); err == nil {
		t.Error("empty path accepted")
	}
	if _, err := NewPath(c, body, "09", 100, false, false); err == nil {
		t.Error("invalid path digit accepted")
	}
}

func TestTargetReachesPoint(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	m := NewTarget(c, body, 53, 46, 100, false)

	c.Advance(200)
	m.Update()
	if !m.IsFinished() {
		t.Fatal("target not reached")
	}
	if body.x != 53 || body.y != 46 {
		t.Errorf("position = (%d, %d), want (53, 46)", body.x, body.y)
	}
	if body.moves != 4 {
		t.Errorf("moves = %d, want 4 (3 diagonal + 1 vertical)", body.moves)
	}
}

func TestTargetIgnoresObstacles(t *testing.T) {
	c := clock.NewManual(0)
	body := newFakeBody(50, 50)
	body.wallX = 50
	m := NewTarget(c, body, 60, 50, 100, true)

	c.Advance(500)
	m.Update()
	if !m.IsFinished() {
		t.Error("movement blocked despite ignoring obstacles")
	}
	if body.x != 60 {
		t.Errorf("x = %d, want 60", body.x)
	}
}
