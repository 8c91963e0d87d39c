package script

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nathoo/actioncore/engine/ground"
	lua "github.com/yuin/gopher-lua"
)

func newTestSink(t *testing.T, code string, names ...string) (*Sink, *lua.LState, *[]string) {
	t.Helper()
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	t.Cleanup(l.Close)
	lua.OpenBase(l)
	lua.OpenTable(l)
	lua.OpenString(l)

	if err := l.DoString(code); err != nil {
		t.Fatalf("loading test script: %v", err)
	}

	handlers := make(map[string]*lua.LFunction)
	for _, name := range names {
		fn, ok := l.GetGlobal(name).(*lua.LFunction)
		if !ok {
			t.Fatalf("test script does not define %s", name)
		}
		handlers[name] = fn
	}

	var errs []string
	sink := NewSink(l, handlers, func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	})
	return sink, l, &errs
}

func TestHandlersReceiveArguments(t *testing.T) {
	sink, l, errs := newTestSink(t, `
		log = {}
		function on_state_changed(name)
			table.insert(log, "state:" .. name)
		end
		function on_position_changed(x, y, layer)
			table.insert(log, string.format("pos:%d,%d,%d", x, y, layer))
		end
		function on_ground_changed(g)
			table.insert(log, "ground:" .. g)
		end
	`, HandlerStateChanged, HandlerPositionChanged, HandlerGroundChanged)

	sink.NotifyStateChanged("free")
	sink.NotifyPositionChanged(24, 36, 0)
	sink.NotifyGroundChanged(ground.ShallowWater)

	logTbl, ok := l.GetGlobal("log").(*lua.LTable)
	if !ok {
		t.Fatal("log table missing")
	}
	var got []string
	logTbl.ForEach(func(_, v lua.LValue) { got = append(got, v.String()) })

	want := []string{"state:free", "pos:24,36,0", "ground:shallow_water"}
	if len(got) != len(want) {
		t.Fatalf("log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(*errs) != 0 {
		t.Errorf("unexpected handler errors: %v", *errs)
	}
}

func TestMissingHandlerIsIgnored(t *testing.T) {
	sink, _, errs := newTestSink(t, `x = 1`)

	sink.NotifyStateChanged("free")
	sink.NotifyGameOverStarted()
	sink.NotifyMapStarted("outside", "")

	if len(*errs) != 0 {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestFailingHandlerIsReportedNotPropagated(t *testing.T) {
	sink, _, errs := newTestSink(t, `
		function on_sensor_activated(name)
			error("boom: " .. name)
		end
	`, HandlerSensorActivated)

	sink.NotifySensorActivated("trap")

	if len(*errs) != 1 {
		t.Fatalf("errors = %v, want one", *errs)
	}
	if !strings.Contains((*errs)[0], "on_sensor_activated") ||
		!strings.Contains((*errs)[0], "boom: trap") {
		t.Errorf("error %q does not name the handler and cause", (*errs)[0])
	}
}
