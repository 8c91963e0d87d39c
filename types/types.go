// Package types defines the shared data structures produced by the content
// loader. This package contains only type definitions — no logic, no methods.
package types

// GameDef is the top-level game description from game.lua.
type GameDef struct {
	Title    string
	Author   string
	Version  string
	StartMap string
	Life     int
	MaxLife  int
	// Ability levels by name ("swim", "run", ...). 0 means not owned.
	Abilities map[string]int
}

// MapDef is one compiled map.
type MapDef struct {
	ID     string
	Width  int // pixels
	Height int // pixels
	World  string
	Floor  int
	// Tiles holds one ground row-set per layer, low to high. Each row is
	// one rune per 8x8 cell. Missing layers default to empty ground.
	Tiles [][]string

	Destinations     []DestinationDef
	Streams          []StreamDef
	ConveyorBelts    []ConveyorBeltDef
	Stairs           []StairsDef
	Sensors          []SensorDef
	Switches         []SwitchDef
	Teletransporters []TeletransporterDef
	Jumpers          []JumperDef
	Enemies          []EnemyDef
	Destructibles    []DestructibleDef
	Chests           []ChestDef
	Blocks           []BlockDef
	Separators       []SeparatorDef
	Crystals         []CrystalDef
	Bombs            []BombDef
}

// Placement is the part shared by every entity definition.
type Placement struct {
	Name  string
	Layer int
	X     int
	Y     int
}

// DestinationDef is a point where the hero can appear on the map.
type DestinationDef struct {
	Placement
	Direction int // 4-way facing direction, or -1 to keep the previous one
	Default   bool
}

// StreamDef is a directional effector that forcibly displaces entities.
type StreamDef struct {
	Placement
	Direction     int // 8-way
	Speed         int // pixels per second
	AllowMovement bool
}

// ConveyorBeltDef is a belt tile that carries the hero across itself.
type ConveyorBeltDef struct {
	Placement
	Direction int // 8-way
}

// StairsDef connects two layers or two maps.
type StairsDef struct {
	Placement
	Direction   int // 4-way direction of the normal way
	InsideFloor bool
}

// SensorDef triggers quest callbacks when the hero is entirely inside.
type SensorDef struct {
	Placement
}

// SwitchDef is a walkable or solid switch.
type SwitchDef struct {
	Placement
	Walkable bool
}

// TeletransporterDef sends the hero to another destination.
type TeletransporterDef struct {
	Placement
	Width       int
	Height      int
	Destination string // destination name on the target map
	Map         string // target map id (empty: same map)
	Side        int    // map side (0..3) for scrolling transporters, or -1
}

// JumperDef makes the hero jump over a gap.
type JumperDef struct {
	Placement
	Width     int
	Height    int
	Direction int // 8-way
	JumpLen   int // pixels
}

// EnemyDef is a minimal hostile entity: a hurt zone with damage.
type EnemyDef struct {
	Placement
	Damage int
}

// DestructibleDef is a liftable or cuttable obstacle (bush, pot).
type DestructibleDef struct {
	Placement
	Weight int // ability level required to lift it, -1: not liftable
}

// ChestDef is an openable treasure container.
type ChestDef struct {
	Placement
	Treasure string
	Open     bool
}

// BlockDef is a pushable/pullable block.
type BlockDef struct {
	Placement
}

// SeparatorDef splits a map into camera regions.
type SeparatorDef struct {
	Placement
	Width  int
	Height int
}

// CrystalDef toggles crystal blocks when hit.
type CrystalDef struct {
	Placement
}

// BombDef is a bomb placed on the map, liftable and explosive.
type BombDef struct {
	Placement
}
