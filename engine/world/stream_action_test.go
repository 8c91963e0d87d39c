package world

import (
	"testing"

	"github.com/nathoo/actioncore/engine/clock"
	"github.com/nathoo/actioncore/geom"
	"github.com/nathoo/actioncore/types"
)

// streamBody is a 16x16 hero-shaped entity for stream tests. Its origin
// and ground point are at (8, 13) inside the box.
type streamBody struct {
	m     *Map
	box   geom.Rect
	moves int
}

func newStreamBody(m *Map, x, y int) *streamBody {
	return &streamBody{m: m, box: geom.NewRect(x-8, y-13, 16, 16)}
}

func (b *streamBody) X() int                 { return b.box.X + 8 }
func (b *streamBody) Y() int                 { return b.box.Y + 13 }
func (b *streamBody) SetXY(x, y int)         { b.box.X = x - 8; b.box.Y = y - 13 }
func (b *streamBody) BoundingBox() geom.Rect { return b.box }
func (b *streamBody) Layer() Layer           { return LayerLow }
func (b *streamBody) GroundPoint() geom.Point {
	return geom.Point{X: b.X(), Y: b.Y()}
}
func (b *streamBody) NotifyPositionChanged() { b.moves++ }
func (b *streamBody) IsBeingRemoved() bool   { return false }
func (b *streamBody) IsEnabled() bool        { return true }
func (b *streamBody) TestCollisionWithObstacles(box geom.Rect) bool {
	return b.m.TestCollisionWithObstacles(LayerLow, box, fakeTraits{})
}

// streamTestMap builds an empty walled 80x80 room so the pushed entity
// meets no terrain but the border.
func streamTestMap(t *testing.T, defs ...types.StreamDef) (*Map, *Stream) {
	t.Helper()
	def := &types.MapDef{
		ID: "basin",
		Tiles: [][]string{{
			"##########",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"##########",
		}},
	}
	def.Streams = defs
	m, err := NewMap(def)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range m.entities {
		if s, ok := e.(*Stream); ok {
			return m, s
		}
	}
	t.Fatal("no stream in map")
	return nil, nil
}

func TestStreamPlacedOnItsOriginPoint(t *testing.T) {
	_, s := streamTestMap(t, types.StreamDef{
		Placement: types.Placement{Name: "st", X: 40, Y: 40},
		Direction: 0,
		Speed:     100,
	})

	if s.X() != 40 || s.Y() != 40 {
		t.Fatalf("stream origin = (%d, %d), want (40, 40)", s.X(), s.Y())
	}
	box := s.BoundingBox()
	if box.X != 32 || box.Y != 32 || box.W != 16 || box.H != 16 {
		t.Errorf("bounding box = %+v, want a 16x16 cell centered on the origin", box)
	}
}

func TestStreamActionCardinal(t *testing.T) {
	c := clock.NewManual(0)
	m, s := streamTestMap(t, types.StreamDef{
		Placement: types.Placement{Name: "st", X: 40, Y: 40},
		Direction: 0, // right
		Speed:     100,
	})

	body := newStreamBody(m, 40, 40)
	a := NewStreamAction(c, s, body)

	// 100 px/s: one pixel every 10 ms, 16 pixels to the target.
	c.Advance(159)
	a.Update()
	if !a.IsActive() {
		t.Fatal("action finished one step early")
	}
	if body.moves != 15 {
		t.Errorf("moves after 159 ms = %d, want 15", body.moves)
	}

	c.Advance(1)
	a.Update()
	if a.IsActive() {
		t.Error("action still active at the target")
	}
	if body.X() != s.X()+16 {
		t.Errorf("final x = %d, want %d", body.X(), s.X()+16)
	}
	if body.Y() != 40 {
		t.Errorf("final y = %d, want 40", body.Y())
	}
}

func TestStreamActionCatchUp(t *testing.T) {
	c := clock.NewManual(0)
	m, s := streamTestMap(t, types.StreamDef{
		Placement: types.Placement{Name: "st", X: 40, Y: 40},
		Direction: 0,
		Speed:     100,
	})

	body := newStreamBody(m, 40, 40)
	a := NewStreamAction(c, s, body)

	// A single late update applies every elapsed step at once.
	c.Advance(55)
	a.Update()
	if body.moves != 5 {
		t.Errorf("moves after one 55 ms update = %d, want 5", body.moves)
	}
}

func TestStreamActionDiagonalDelay(t *testing.T) {
	c := clock.NewManual(0)
	m, s := streamTestMap(t, types.StreamDef{
		Placement: types.Placement{Name: "st", X: 40, Y: 40},
		Direction: 1, // right-up, blocking
		Speed:     100,
	})

	body := newStreamBody(m, 40, 40)
	a := NewStreamAction(c, s, body)

	// Diagonal steps are sqrt(2) slower: 14 ms instead of 10.
	c.Advance(13)
	a.Update()
	if body.moves != 0 {
		t.Errorf("moved after 13 ms, diagonal delay too short")
	}
	c.Advance(1)
	a.Update()
	if body.moves != 1 {
		t.Errorf("moves after 14 ms = %d, want 1", body.moves)
	}

	// The diagonal target is 16 px from the start on both axes.
	for i := 0; i < 30; i++ {
		c.Advance(14)
		a.Update()
	}
	if a.IsActive() {
		t.Error("diagonal action never finished")
	}
	if body.X() != 56 || body.Y() != 24 {
		t.Errorf("final position = (%d, %d), want (56, 24)", body.X(), body.Y())
	}
}

func TestStreamActionBlockingStopsAtObstacle(t *testing.T) {
	c := clock.NewManual(0)
	// Stream pushing right, close to the east wall (x >= 72).
	m, s := streamTestMap(t, types.StreamDef{
		Placement: types.Placement{Name: "st", X: 56, Y: 40},
		Direction: 0,
		Speed:     100,
	})

	// Box right edge at x 71: the first one-pixel move reaches the wall.
	body := newStreamBody(m, 64, 40)
	c.Advance(10)
	a := NewStreamAction(c, s, body)
	c.Advance(1000)
	a.Update()

	if a.IsActive() {
		t.Error("blocking stream still active against a wall")
	}
	if body.moves != 0 {
		t.Errorf("entity moved %d px into the wall", body.moves)
	}
}

func TestStreamActionEscape(t *testing.T) {
	c := clock.NewManual(0)
	m, s := streamTestMap(t, types.StreamDef{
		Placement:     types.Placement{Name: "st", X: 40, Y: 40},
		Direction:     0,
		Speed:         100,
		AllowMovement: true,
	})

	body := newStreamBody(m, 40, 40)
	a := NewStreamAction(c, s, body)

	// The entity walks off the stream, far from the target: the action dies.
	body.SetXY(20, 40)
	c.Advance(10)
	a.Update()
	if a.IsActive() {
		t.Error("action survived the entity escaping the stream")
	}

	// Near the target the ground point leaves the stream too, but the
	// action continues to the end.
	body2 := newStreamBody(m, 50, 40)
	a2 := NewStreamAction(c, s, body2)
	body2.SetXY(50, 40)
	for i := 0; i < 10; i++ {
		c.Advance(10)
		a2.Update()
	}
	if body2.X() != 56 {
		t.Errorf("x = %d, want 56 (finish despite leaving the stream)", body2.X())
	}
}

func TestStreamActionSuspension(t *testing.T) {
	c := clock.NewManual(0)
	m, s := streamTestMap(t, types.StreamDef{
		Placement: types.Placement{Name: "st", X: 40, Y: 40},
		Direction: 0,
		Speed:     100,
	})

	body := newStreamBody(m, 40, 40)
	a := NewStreamAction(c, s, body)

	c.Advance(5)
	a.SetSuspended(true)
	c.Advance(1000)
	a.Update()
	if body.moves != 0 {
		t.Error("suspended action moved the entity")
	}

	a.SetSuspended(false)
	a.Update()
	if body.moves != 0 {
		t.Error("resume replayed time spent suspended")
	}

	// The original schedule resumes where it left off: 5 ms remained.
	c.Advance(5)
	a.Update()
	if body.moves != 1 {
		t.Errorf("moves after resume + 5 ms = %d, want 1", body.moves)
	}
}
