package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals.
func registerAPI(l *lua.LState, coll *collector) {
	// Game { title = "...", start_map = "...", ... }
	l.SetGlobal("Game", l.NewFunction(func(l *lua.LState) int {
		coll.game = l.CheckTable(1)
		return 0
	}))

	// Map "id" { ... } — curried: Map("id") returns a function taking
	// the map table.
	l.SetGlobal("Map", l.NewFunction(func(l *lua.LState) int {
		id := l.CheckString(1)
		l.Push(l.NewFunction(func(l *lua.LState) int {
			tbl := l.CheckTable(1)
			coll.maps = append(coll.maps, rawMap{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Events { on_state_changed = function(name) ... end, ... }
	// Later declarations override earlier ones handler by handler.
	l.SetGlobal("Events", l.NewFunction(func(l *lua.LState) int {
		tbl := l.CheckTable(1)
		tbl.ForEach(func(k, v lua.LValue) {
			name, ok := k.(lua.LString)
			if !ok {
				return
			}
			if fn, ok := v.(*lua.LFunction); ok {
				coll.handlers[string(name)] = fn
			}
		})
		return 0
	}))
}
