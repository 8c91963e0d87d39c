// Package tui provides the Bubble Tea terminal front-end: it draws the
// current map as a character grid, one cell per 8x8 pixel square, and
// turns key presses into engine commands.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/actioncore/engine"
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/hero"
	"github.com/nathoo/actioncore/engine/world"
)

const (
	// cellSize is the pixel square drawn as one terminal cell.
	cellSize = 8

	// tickInterval paces the simulation at roughly 30 updates per second.
	tickInterval = 33 * time.Millisecond

	// keyHoldTimeout decides when a held key counts as released.
	// Terminals report key repeats, never releases: a command is
	// considered released once its repeats stop arriving.
	keyHoldTimeout = 300 * time.Millisecond

	feedCapacity = 50
	feedShown    = 3
)

// tickMsg drives one simulation step.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// keyMap binds terminal keys to engine commands.
type keyMap struct {
	Right  key.Binding
	Up     key.Binding
	Left   key.Binding
	Down   key.Binding
	Action key.Binding
	Attack key.Binding
	Item1  key.Binding
	Item2  key.Binding
	Pause  key.Binding
	Retry  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Right:  key.NewBinding(key.WithKeys("right", "d")),
		Up:     key.NewBinding(key.WithKeys("up", "w")),
		Left:   key.NewBinding(key.WithKeys("left", "a")),
		Down:   key.NewBinding(key.WithKeys("down", "s")),
		Action: key.NewBinding(key.WithKeys(" ", "enter")),
		Attack: key.NewBinding(key.WithKeys("x")),
		Item1:  key.NewBinding(key.WithKeys("1")),
		Item2:  key.NewBinding(key.WithKeys("2")),
		Pause:  key.NewBinding(key.WithKeys("p")),
		Retry:  key.NewBinding(key.WithKeys("r")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// Model is the Bubble Tea model wrapping one game session.
type Model struct {
	game *engine.Game
	keys keyMap
	feed *Feed

	// held tracks the last time each pressed command was (re)seen.
	held map[hero.Command]time.Time

	width    int
	height   int
	quitting bool
}

// New creates a TUI model for the given session and tees the session's
// notifications into the event feed.
func New(g *engine.Game) Model {
	f := NewFeed(feedCapacity)
	g.SetNotifier(feedNotifier{next: g.Notifier(), feed: f})
	return Model{
		game: g,
		keys: defaultKeyMap(),
		feed: f,
		held: make(map[hero.Command]time.Time),
	}
}

// Run starts the session and runs the Bubble Tea program until the
// player quits.
func Run(g *engine.Game) error {
	m := New(g)
	if err := g.Start(); err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init schedules the first simulation tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles key presses, resizes and simulation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.expireHeld(time.Now())
		m.game.Update()
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if !m.game.IsGameOver() {
			m.game.SetSuspended(!m.game.IsSuspended())
		}

	case key.Matches(msg, m.keys.Retry):
		if m.game.IsGameOver() {
			m.game.FinishGameOver()
		}

	case key.Matches(msg, m.keys.Right):
		m.press(hero.CommandRight)
	case key.Matches(msg, m.keys.Up):
		m.press(hero.CommandUp)
	case key.Matches(msg, m.keys.Left):
		m.press(hero.CommandLeft)
	case key.Matches(msg, m.keys.Down):
		m.press(hero.CommandDown)
	case key.Matches(msg, m.keys.Action):
		m.press(hero.CommandAction)
	case key.Matches(msg, m.keys.Attack):
		m.press(hero.CommandAttack)
	case key.Matches(msg, m.keys.Item1):
		m.press(hero.CommandItem1)
	case key.Matches(msg, m.keys.Item2):
		m.press(hero.CommandItem2)
	}
	return m, nil
}

// press forwards a command press and arms its hold timer. Repeats only
// refresh the timer: the engine filters them out.
func (m Model) press(c hero.Command) {
	m.game.Press(c)
	m.held[c] = time.Now()
}

// expireHeld releases every command whose key repeats have stopped.
func (m Model) expireHeld(now time.Time) {
	for c, last := range m.held {
		if now.Sub(last) > keyHoldTimeout {
			delete(m.held, c)
			m.game.Release(c)
		}
	}
}

// View renders the title bar, the map grid, the status bar, the event
// feed and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	for _, line := range m.feed.Last(feedShown) {
		b.WriteString(styleFeed.Render(line))
		b.WriteString("\n")
	}

	if m.game.IsGameOver() {
		b.WriteString(styleGameOver.Render("GAME OVER - press r to continue"))
		b.WriteString("\n")
	}

	b.WriteString(styleHelp.Render("arrows/wasd move · space action · x attack · 1/2 items · p pause · q quit"))
	return b.String()
}

func (m Model) renderTitleBar() string {
	title := " " + m.game.Title()
	width := m.width
	if width < len(title) {
		width = len(title)
	}
	return styleTitleBar.Width(width).Render(title)
}

// renderGrid draws the map one character per cell: the topmost visible
// ground, the visible entities on top of it, the hero on top of all.
func (m Model) renderGrid() string {
	mp := m.game.Map()
	if mp == nil {
		return ""
	}
	cols := mp.Width() / cellSize
	rows := mp.Height() / cellSize

	grid := make([][]string, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]string, cols)
		for x := 0; x < cols; x++ {
			px := x*cellSize + cellSize/2
			py := y*cellSize + cellSize/2
			grid[y][x] = groundCell(topGround(mp, px, py))
		}
	}

	for _, v := range mp.EntityViews() {
		cell, ok := entityCell(v.Kind)
		if !ok {
			continue
		}
		x := (v.Box.X + v.Box.W/2) / cellSize
		y := (v.Box.Y + v.Box.H/2) / cellSize
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = cell
		}
	}

	h := m.game.Hero()
	box := h.BoundingBox()
	hx := (box.X + box.W/2) / cellSize
	hy := (box.Y + box.H/2) / cellSize
	if hy >= 0 && hy < rows && hx >= 0 && hx < cols {
		grid[hy][hx] = heroCell(h.StateName())
	}

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		lines[y] = strings.Join(grid[y], "")
	}
	return strings.Join(lines, "\n")
}

// topGround returns the highest non-empty ground at a pixel, the one a
// viewer looking down on the map would see.
func topGround(mp *world.Map, x, y int) ground.Ground {
	for layer := world.Layer(world.LayerCount - 1); layer >= world.LayerLow; layer-- {
		if g := mp.Ground(layer, x, y); g != ground.Empty {
			return g
		}
	}
	return ground.Empty
}
