package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/actioncore/engine/ground"
)

// Styles used throughout the TUI.
var (
	styleTitleBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	stylePaused = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("214")).
			Bold(true)

	styleGameOver = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleFeed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleFloor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleWall = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	styleDeepWater = lipgloss.NewStyle().
			Foreground(lipgloss.Color("27"))

	styleShallowWater = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	styleGrass = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	styleHole = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	styleIce = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	styleLadder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179"))

	stylePrickle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("163"))

	styleLava = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleEntity = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleEnemy = lipgloss.NewStyle().
			Foreground(lipgloss.Color("161")).
			Bold(true)

	styleHero = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	styleHeroHurt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleHeroWater = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	styleHeroFalling = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				Bold(true)
)

// groundCell renders one map cell. The glyphs mirror the tile runes of
// the quest files, so a map on screen reads like its source.
func groundCell(g ground.Ground) string {
	switch g {
	case ground.Empty:
		return " "
	case ground.Traversable:
		return styleFloor.Render(".")
	case ground.Wall:
		return styleWall.Render("#")
	case ground.LowWall:
		return styleWall.Render("-")
	case ground.WallTopRight, ground.WallBottomLeft:
		return styleWall.Render("/")
	case ground.WallTopLeft, ground.WallBottomRight:
		return styleWall.Render("\\")
	case ground.WallTopRightWater, ground.WallBottomLeftWater:
		return styleDeepWater.Render("/")
	case ground.WallTopLeftWater, ground.WallBottomRightWater:
		return styleDeepWater.Render("\\")
	case ground.DeepWater:
		return styleDeepWater.Render("~")
	case ground.ShallowWater:
		return styleShallowWater.Render(",")
	case ground.Grass:
		return styleGrass.Render(`"`)
	case ground.Hole:
		return styleHole.Render("o")
	case ground.Ice:
		return styleIce.Render("*")
	case ground.Ladder:
		return styleLadder.Render("H")
	case ground.Prickle:
		return stylePrickle.Render("^")
	case ground.Lava:
		return styleLava.Render("%")
	}
	return " "
}

// entityGlyphs maps visible entity kinds to their cell. Invisible
// detectors (destinations, sensors, separators) are not drawn.
var entityGlyphs = map[string]string{
	"enemy":           "M",
	"chest":           "$",
	"block":           "B",
	"destructible":    "p",
	"switch":          "_",
	"teletransporter": "T",
	"stairs":          ">",
	"conveyor_belt":   "=",
	"stream":          ";",
	"jumper":          "j",
	"crystal":         "+",
	"bomb":            "b",
	"explosion":       "!",
}

func entityCell(kind string) (string, bool) {
	glyph, ok := entityGlyphs[kind]
	if !ok {
		return "", false
	}
	if kind == "enemy" {
		return styleEnemy.Render(glyph), true
	}
	return styleEntity.Render(glyph), true
}

// heroCell renders the hero, colored by what he is doing.
func heroCell(state string) string {
	switch state {
	case "hurt":
		return styleHeroHurt.Render("@")
	case "swimming", "plunging":
		return styleHeroWater.Render("@")
	case "falling", "jumping":
		return styleHeroFalling.Render("@")
	}
	return styleHero.Render("@")
}
