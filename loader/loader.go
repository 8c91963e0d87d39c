// Package loader loads Lua quest content: game.lua describes the game,
// its abilities and its event handlers; every other .lua file describes
// maps. Definitions are compiled to Go structs, but the VM stays alive
// to run the quest handlers — Close the quest when the session ends.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/actioncore/engine/script"
	"github.com/nathoo/actioncore/types"
	lua "github.com/yuin/gopher-lua"
)

// Quest is one loaded quest: the compiled definitions plus the live VM
// holding its event handlers.
type Quest struct {
	Game *types.GameDef
	Maps map[string]*types.MapDef

	l        *lua.LState
	handlers map[string]*lua.LFunction
}

// Sink creates the notification sink calling the quest's handlers.
// errorf receives handler failures.
func (q *Quest) Sink(errorf func(format string, args ...interface{})) *script.Sink {
	return script.NewSink(q.l, q.handlers, errorf)
}

// Close shuts the quest's VM down.
func (q *Quest) Close() { q.l.Close() }

// collector accumulates Lua definitions during file execution.
type collector struct {
	game     *lua.LTable
	maps     []rawMap
	handlers map[string]*lua.LFunction
}

// Load reads all .lua files from dir and returns the compiled quest.
func Load(dir string) (*Quest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading quest directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedLuaFiles(luaFiles)

	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(l)
	sandbox(l)

	coll := &collector{handlers: make(map[string]*lua.LFunction)}
	registerAPI(l, coll)

	for _, f := range luaFiles {
		if err := l.DoFile(filepath.Join(dir, f)); err != nil {
			l.Close()
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	quest, err := compile(coll)
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("compiling quest: %w", err)
	}
	quest.l = l
	quest.handlers = coll.handlers

	if err := validate(quest); err != nil {
		l.Close()
		return nil, err
	}
	return quest, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(l *lua.LState) {
	lua.OpenBase(l)
	lua.OpenTable(l)
	lua.OpenString(l)
	lua.OpenMath(l)
}

// sandbox removes dangerous globals and functions.
func sandbox(l *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		l.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl, ok := l.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
}

// sortedLuaFiles returns the file names with game.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
