package engine

import "github.com/nathoo/actioncore/engine/hero"

// Commands tracks which abstract game commands are currently pressed and
// derives the wanted movement direction from the four directional ones.
type Commands struct {
	pressed map[hero.Command]bool
}

// NewCommands creates an empty command state.
func NewCommands() *Commands {
	return &Commands{pressed: make(map[hero.Command]bool)}
}

// Press records a command as pressed. It reports whether the command was
// up before, so a held key repeat is not notified twice.
func (c *Commands) Press(cmd hero.Command) bool {
	if c.pressed[cmd] {
		return false
	}
	c.pressed[cmd] = true
	return true
}

// Release records a command as released. It reports whether the command
// was down before.
func (c *Commands) Release(cmd hero.Command) bool {
	if !c.pressed[cmd] {
		return false
	}
	delete(c.pressed, cmd)
	return true
}

// IsPressed reports whether a command is currently down.
func (c *Commands) IsPressed(cmd hero.Command) bool { return c.pressed[cmd] }

// wantedDirections maps the bitmask of pressed directional commands
// (right=1, up=2, left=4, down=8) to an 8-way direction. Opposite or
// empty combinations give no direction.
var wantedDirections = [16]int{
	-1, // none
	0,  // right
	2,  // up
	1,  // right + up
	4,  // left
	-1, // left + right
	3,  // left + up
	-1, // left + right + up
	6,  // down
	7,  // down + right
	-1, // down + up
	-1, // down + right + up
	5,  // down + left
	-1, // down + left + right
	-1, // down + left + up
	-1, // all four
}

// WantedDirection8 derives the direction the player pushes toward from
// the pressed directional commands, -1 when none applies.
func (c *Commands) WantedDirection8() int {
	mask := 0
	if c.pressed[hero.CommandRight] {
		mask |= 1
	}
	if c.pressed[hero.CommandUp] {
		mask |= 2
	}
	if c.pressed[hero.CommandLeft] {
		mask |= 4
	}
	if c.pressed[hero.CommandDown] {
		mask |= 8
	}
	return wantedDirections[mask]
}
