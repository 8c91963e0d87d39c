package engine

import (
	"testing"

	"github.com/nathoo/actioncore/engine/hero"
	"github.com/nathoo/actioncore/engine/save"
)

func TestCaptureRecordsSession(t *testing.T) {
	g, clk := newTestGame(t)
	g.Press(hero.CommandRight)
	run(g, clk, 100)
	g.Release(hero.CommandRight)

	d := g.Capture()
	if d.Map != "outside" {
		t.Errorf("Map = %q, want outside", d.Map)
	}
	if d.X != g.Hero().X() || d.Y != g.Hero().Y() {
		t.Errorf("position = (%d,%d), hero at (%d,%d)", d.X, d.Y, g.Hero().X(), g.Hero().Y())
	}
	if d.Life != 4 || d.MaxLife != 8 {
		t.Errorf("life = %d/%d, want 4/8", d.Life, d.MaxLife)
	}
	if d.Abilities["run"] != 1 {
		t.Errorf("abilities = %v", d.Abilities)
	}
}

func TestRestoreRebuildsSession(t *testing.T) {
	g, clk := newTestGame(t)
	g.Press(hero.CommandRight)
	run(g, clk, 100)
	g.Release(hero.CommandRight)
	g.Equipment().RemoveLife(2)
	d := g.Capture()

	// A fresh session, restored from the snapshot.
	game, maps := testDefs()
	g2 := New(game, maps, clk)
	if err := g2.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := g2.Restore(d); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if g2.Hero().X() != d.X || g2.Hero().Y() != d.Y {
		t.Errorf("hero at (%d,%d), want (%d,%d)", g2.Hero().X(), g2.Hero().Y(), d.X, d.Y)
	}
	if g2.Life() != 2 {
		t.Errorf("life = %d, want 2", g2.Life())
	}
	if g2.Map().ID() != "outside" {
		t.Errorf("map = %q, want outside", g2.Map().ID())
	}

	// The restored session keeps running.
	run(g2, clk, 50)
	if len(g2.Errors()) != 0 {
		t.Errorf("errors after restore: %v", g2.Errors())
	}
}

func TestRestoreRejectsUnknownMap(t *testing.T) {
	g, _ := newTestGame(t)
	d := g.Capture()
	d.Map = "nowhere"
	if err := g.Restore(d); err == nil {
		t.Error("restore with unknown map succeeded")
	}
}

func TestSnapshotRoundTripThroughJSON(t *testing.T) {
	g, _ := newTestGame(t)
	data, err := save.Marshal(g.Capture())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	d, err := save.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := g.Restore(d); err != nil {
		t.Errorf("Restore: %v", err)
	}
}
