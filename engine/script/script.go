// Package script bridges simulation notifications to quest Lua handlers.
// The loader collects the handler functions from the quest files; the
// sink keeps the VM alive and calls them as the simulation runs. A
// failing handler is reported as a non-fatal anomaly and never fails
// back into the simulation.
package script

import (
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/hero"
	"github.com/nathoo/actioncore/engine/world"
	lua "github.com/yuin/gopher-lua"
)

// The handler names a quest can define.
const (
	HandlerPositionChanged  = "on_position_changed"
	HandlerGroundChanged    = "on_ground_changed"
	HandlerStateChanged     = "on_state_changed"
	HandlerTreasureObtained = "on_treasure_obtained"
	HandlerSensorActivated  = "on_sensor_activated"
	HandlerSwitchActivated  = "on_switch_activated"
	HandlerSeparatorCrossed = "on_separator_crossed"
	HandlerMapStarted       = "on_map_started"
	HandlerGameOver         = "on_game_over"
)

// Sink dispatches notifications to the quest's Lua handlers.
type Sink struct {
	l        *lua.LState
	handlers map[string]*lua.LFunction
	errorf   func(format string, args ...interface{})
}

// NewSink creates a sink calling the given handlers on the given VM.
// errorf receives handler failures; nil discards them.
func NewSink(l *lua.LState, handlers map[string]*lua.LFunction, errorf func(format string, args ...interface{})) *Sink {
	if errorf == nil {
		errorf = func(string, ...interface{}) {}
	}
	return &Sink{l: l, handlers: handlers, errorf: errorf}
}

// SetErrorf changes where handler failures are reported.
func (s *Sink) SetErrorf(errorf func(format string, args ...interface{})) {
	if errorf == nil {
		errorf = func(string, ...interface{}) {}
	}
	s.errorf = errorf
}

func (s *Sink) call(name string, args ...lua.LValue) {
	fn, ok := s.handlers[name]
	if !ok || fn == nil {
		return
	}
	err := s.l.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	if err != nil {
		s.errorf("quest handler %s: %v", name, err)
	}
}

func (s *Sink) NotifyPositionChanged(x, y int, layer world.Layer) {
	s.call(HandlerPositionChanged,
		lua.LNumber(x), lua.LNumber(y), lua.LNumber(layer))
}

func (s *Sink) NotifyGroundChanged(g ground.Ground) {
	s.call(HandlerGroundChanged, lua.LString(g.String()))
}

func (s *Sink) NotifyStateChanged(name string) {
	s.call(HandlerStateChanged, lua.LString(name))
}

func (s *Sink) NotifyTreasureObtained(treasure string) {
	s.call(HandlerTreasureObtained, lua.LString(treasure))
}

func (s *Sink) NotifySensorActivated(name string) {
	s.call(HandlerSensorActivated, lua.LString(name))
}

func (s *Sink) NotifySwitchActivated(name string) {
	s.call(HandlerSwitchActivated, lua.LString(name))
}

func (s *Sink) NotifySeparatorCrossed(name string) {
	s.call(HandlerSeparatorCrossed, lua.LString(name))
}

func (s *Sink) NotifyMapStarted(id, destination string) {
	s.call(HandlerMapStarted, lua.LString(id), lua.LString(destination))
}

func (s *Sink) NotifyGameOverStarted() {
	s.call(HandlerGameOver)
}

var (
	_ hero.Notifier          = (*Sink)(nil)
	_ hero.SeparatorNotifier = (*Sink)(nil)
)
