package tui

import (
	"fmt"

	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/hero"
	"github.com/nathoo/actioncore/engine/world"
)

// Feed is a ring buffer of recent simulation events shown under the map.
type Feed struct {
	lines []string
	max   int
}

// NewFeed creates a feed keeping at most max lines.
func NewFeed(max int) *Feed {
	return &Feed{
		lines: make([]string, 0, max),
		max:   max,
	}
}

// Push adds an event line. Consecutive duplicates are skipped.
func (f *Feed) Push(line string) {
	if len(f.lines) > 0 && f.lines[len(f.lines)-1] == line {
		return
	}
	f.lines = append(f.lines, line)
	if len(f.lines) > f.max {
		f.lines = f.lines[1:]
	}
}

// Last returns the most recent n lines, oldest first.
func (f *Feed) Last(n int) []string {
	if n > len(f.lines) {
		n = len(f.lines)
	}
	return f.lines[len(f.lines)-n:]
}

// feedNotifier tees simulation notifications into the feed, then
// forwards them to the sink that was installed before it, typically the
// quest script bridge.
type feedNotifier struct {
	next hero.Notifier
	feed *Feed
}

func (n feedNotifier) NotifyPositionChanged(x, y int, layer world.Layer) {
	n.next.NotifyPositionChanged(x, y, layer)
}

func (n feedNotifier) NotifyGroundChanged(g ground.Ground) {
	n.next.NotifyGroundChanged(g)
}

func (n feedNotifier) NotifyStateChanged(name string) {
	n.feed.Push(name)
	n.next.NotifyStateChanged(name)
}

func (n feedNotifier) NotifyTreasureObtained(treasure string) {
	n.feed.Push(fmt.Sprintf("obtained %s", treasure))
	n.next.NotifyTreasureObtained(treasure)
}

func (n feedNotifier) NotifySensorActivated(name string) {
	n.feed.Push(fmt.Sprintf("sensor %s", name))
	n.next.NotifySensorActivated(name)
}

func (n feedNotifier) NotifySwitchActivated(name string) {
	n.feed.Push(fmt.Sprintf("switch %s", name))
	n.next.NotifySwitchActivated(name)
}

func (n feedNotifier) NotifySeparatorCrossed(name string) {
	if sep, ok := n.next.(hero.SeparatorNotifier); ok {
		sep.NotifySeparatorCrossed(name)
	}
}

func (n feedNotifier) NotifyMapStarted(id, destination string) {
	n.feed.Push(fmt.Sprintf("entered %s", id))
	if mn, ok := n.next.(interface{ NotifyMapStarted(id, destination string) }); ok {
		mn.NotifyMapStarted(id, destination)
	}
}

func (n feedNotifier) NotifyGameOverStarted() {
	n.feed.Push("game over")
	if gn, ok := n.next.(interface{ NotifyGameOverStarted() }); ok {
		gn.NotifyGameOverStarted()
	}
}
