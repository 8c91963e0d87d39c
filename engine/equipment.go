package engine

import "github.com/nathoo/actioncore/types"

// Equipment holds the hero's life and abilities for one play session.
type Equipment struct {
	life    int
	maxLife int

	// Ability levels by name. 0 or absent means not owned.
	abilities map[string]int

	// Items assigned to the two item commands.
	items [2]string
}

// NewEquipment creates the equipment described by the game definition.
func NewEquipment(def *types.GameDef) *Equipment {
	e := &Equipment{
		maxLife:   def.MaxLife,
		abilities: make(map[string]int),
	}
	if e.maxLife <= 0 {
		e.maxLife = 1
	}
	e.SetLife(def.Life)
	for name, level := range def.Abilities {
		e.abilities[name] = level
	}
	return e
}

// Life returns the current life points.
func (e *Equipment) Life() int { return e.life }

// MaxLife returns the maximum life points.
func (e *Equipment) MaxLife() int { return e.maxLife }

// SetLife sets the current life, clamped to [0, max].
func (e *Equipment) SetLife(life int) {
	if life < 0 {
		life = 0
	}
	if life > e.maxLife {
		life = e.maxLife
	}
	e.life = life
}

// AddLife restores life points.
func (e *Equipment) AddLife(points int) { e.SetLife(e.life + points) }

// RemoveLife removes life points.
func (e *Equipment) RemoveLife(points int) { e.SetLife(e.life - points) }

// SetMaxLife changes the maximum life, keeping the current life clamped.
func (e *Equipment) SetMaxLife(maxLife int) {
	if maxLife < 1 {
		maxLife = 1
	}
	e.maxLife = maxLife
	e.SetLife(e.life)
}

// HasAbility reports whether the named ability is owned at any level.
func (e *Equipment) HasAbility(name string) bool { return e.abilities[name] > 0 }

// AbilityLevel returns the level of the named ability, 0 when not owned.
func (e *Equipment) AbilityLevel(name string) int { return e.abilities[name] }

// Abilities returns a copy of the owned ability levels.
func (e *Equipment) Abilities() map[string]int {
	out := make(map[string]int, len(e.abilities))
	for name, level := range e.abilities {
		out[name] = level
	}
	return out
}

// SetAbilityLevel grants or changes an ability.
func (e *Equipment) SetAbilityLevel(name string, level int) {
	e.abilities[name] = level
}

// ItemAssigned returns the item assigned to an item slot (0 or 1), empty
// when none.
func (e *Equipment) ItemAssigned(slot int) string {
	if slot < 0 || slot >= len(e.items) {
		return ""
	}
	return e.items[slot]
}

// AssignItem assigns an item to an item slot (0 or 1).
func (e *Equipment) AssignItem(slot int, item string) {
	if slot < 0 || slot >= len(e.items) {
		return
	}
	e.items[slot] = item
}
