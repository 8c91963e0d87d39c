// Package ground defines the closed terrain classification of map cells.
// Exactly one ground applies to a given point of a given layer at any
// instant; the value is always queried from the map, never cached.
package ground

import "fmt"

// Ground is the terrain kind of one 8x8 map cell.
type Ground int

// The closed set of ground kinds.
const (
	Empty Ground = iota // no ground data: candidate for falling to the layer below
	Traversable
	Wall
	LowWall
	WallTopRight
	WallTopLeft
	WallBottomLeft
	WallBottomRight
	WallTopRightWater
	WallTopLeftWater
	WallBottomLeftWater
	WallBottomRightWater
	DeepWater
	ShallowWater
	Grass
	Hole
	Ice
	Ladder
	Prickle
	Lava
)

var names = map[Ground]string{
	Empty:                "empty",
	Traversable:          "traversable",
	Wall:                 "wall",
	LowWall:              "low_wall",
	WallTopRight:         "wall_top_right",
	WallTopLeft:          "wall_top_left",
	WallBottomLeft:       "wall_bottom_left",
	WallBottomRight:      "wall_bottom_right",
	WallTopRightWater:    "wall_top_right_water",
	WallTopLeftWater:     "wall_top_left_water",
	WallBottomLeftWater:  "wall_bottom_left_water",
	WallBottomRightWater: "wall_bottom_right_water",
	DeepWater:            "deep_water",
	ShallowWater:         "shallow_water",
	Grass:                "grass",
	Hole:                 "hole",
	Ice:                  "ice",
	Ladder:               "ladder",
	Prickle:              "prickle",
	Lava:                 "lava",
}

// String returns the ground name as used in map files and notifications.
func (g Ground) String() string {
	if name, ok := names[g]; ok {
		return name
	}
	return fmt.Sprintf("Ground(%d)", int(g))
}

// IsWall reports whether the ground is a wall variant, including the
// diagonal halves and their over-water versions.
func (g Ground) IsWall() bool {
	switch g {
	case Wall, LowWall,
		WallTopRight, WallTopLeft, WallBottomLeft, WallBottomRight,
		WallTopRightWater, WallTopLeftWater, WallBottomLeftWater, WallBottomRightWater:
		return true
	}
	return false
}

// IsDiagonalWall reports whether the ground blocks only half of its cell.
func (g Ground) IsDiagonalWall() bool {
	switch g {
	case WallTopRight, WallTopLeft, WallBottomLeft, WallBottomRight,
		WallTopRightWater, WallTopLeftWater, WallBottomLeftWater, WallBottomRightWater:
		return true
	}
	return false
}

// IsDiagonalWallOverWater reports whether the non-wall half of the cell is
// deep water rather than traversable ground.
func (g Ground) IsDiagonalWallOverWater() bool {
	switch g {
	case WallTopRightWater, WallTopLeftWater, WallBottomLeftWater, WallBottomRightWater:
		return true
	}
	return false
}

// IsBad reports whether standing here forfeits the position as a
// remembered solid-ground point.
func (g Ground) IsBad() bool {
	switch g {
	case DeepWater, Hole, Lava, Prickle, Empty:
		return true
	}
	return false
}

// runes maps map-file runes to grounds. The rune set is the loader's
// contract with content authors.
var runes = map[rune]Ground{
	' ': Empty,
	'.': Traversable,
	'#': Wall,
	'-': LowWall,
	'1': WallTopRight,
	'2': WallTopLeft,
	'3': WallBottomLeft,
	'4': WallBottomRight,
	'5': WallTopRightWater,
	'6': WallTopLeftWater,
	'7': WallBottomLeftWater,
	'8': WallBottomRightWater,
	'~': DeepWater,
	',': ShallowWater,
	'"': Grass,
	'o': Hole,
	'*': Ice,
	'H': Ladder,
	'^': Prickle,
	'%': Lava,
}

// FromRune translates one map-file rune into a ground kind.
func FromRune(r rune) (Ground, error) {
	g, ok := runes[r]
	if !ok {
		return Empty, fmt.Errorf("unknown ground rune %q", r)
	}
	return g, nil
}
