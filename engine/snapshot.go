package engine

import (
	"fmt"

	"github.com/nathoo/actioncore/engine/save"
	"github.com/nathoo/actioncore/engine/world"
)

// Capture snapshots the session: where the hero stands and what he owns.
func (g *Game) Capture() *save.Data {
	h := g.hero
	return &save.Data{
		Game:      g.def.Title,
		Map:       g.currentMap.ID(),
		X:         h.X(),
		Y:         h.Y(),
		Layer:     int(h.Layer()),
		Direction: h.AnimationDirection(),
		Life:      g.equipment.Life(),
		MaxLife:   g.equipment.MaxLife(),
		Abilities: g.equipment.Abilities(),
		Items: [2]string{
			g.equipment.ItemAssigned(0),
			g.equipment.ItemAssigned(1),
		},
	}
}

// Restore rebuilds the session from a snapshot: the map restarts and
// the hero is placed where he was captured, equipment included.
func (g *Game) Restore(d *save.Data) error {
	if err := g.startMap(d.Map, ""); err != nil {
		return fmt.Errorf("restoring: %w", err)
	}
	h := g.hero
	h.SetXY(d.X, d.Y)
	h.SetLayer(world.Layer(d.Layer))
	h.SetAnimationDirection(d.Direction)

	g.equipment.SetMaxLife(d.MaxLife)
	g.equipment.SetLife(d.Life)
	for name, level := range d.Abilities {
		g.equipment.SetAbilityLevel(name, level)
	}
	for slot, item := range d.Items {
		g.equipment.AssignItem(slot, item)
	}

	g.gameOver = false
	g.SetSuspended(false)
	return nil
}
