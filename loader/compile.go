package loader

import (
	"fmt"

	"github.com/nathoo/actioncore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawMap holds a map table before compilation.
type rawMap struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or the default if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// eachEntry calls f for every array element of tbl that is a table.
func eachEntry(tbl *lua.LTable, f func(*lua.LTable)) {
	if tbl == nil {
		return
	}
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		if e, ok := v.(*lua.LTable); ok {
			f(e)
		}
	})
}

// placement extracts the fields shared by every entity definition.
func placement(tbl *lua.LTable) types.Placement {
	return types.Placement{
		Name:  getString(tbl, "name"),
		Layer: getInt(tbl, "layer", 0),
		X:     getInt(tbl, "x", 0),
		Y:     getInt(tbl, "y", 0),
	}
}

// compile converts the collected Lua data into a quest.
func compile(coll *collector) (*Quest, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	quest := &Quest{
		Game: compileGame(coll.game),
		Maps: make(map[string]*types.MapDef),
	}

	for _, raw := range coll.maps {
		if _, ok := quest.Maps[raw.id]; ok {
			return nil, fmt.Errorf("map %q defined twice", raw.id)
		}
		m, err := compileMap(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling map %s: %w", raw.id, err)
		}
		quest.Maps[raw.id] = m
	}

	return quest, nil
}

func compileGame(tbl *lua.LTable) *types.GameDef {
	game := &types.GameDef{
		Title:     getString(tbl, "title"),
		Author:    getString(tbl, "author"),
		Version:   getString(tbl, "version"),
		StartMap:  getString(tbl, "start_map"),
		Life:      getInt(tbl, "life", 1),
		MaxLife:   getInt(tbl, "max_life", 1),
		Abilities: make(map[string]int),
	}
	if abilities := getTable(tbl, "abilities"); abilities != nil {
		abilities.ForEach(func(k, v lua.LValue) {
			name, ok := k.(lua.LString)
			if !ok {
				return
			}
			if level, ok := v.(lua.LNumber); ok {
				game.Abilities[string(name)] = int(level)
			}
		})
	}
	return game
}

func compileMap(raw rawMap) (*types.MapDef, error) {
	tbl := raw.table
	m := &types.MapDef{
		ID:    raw.id,
		World: getString(tbl, "world"),
		Floor: getInt(tbl, "floor", 0),
	}

	tiles, err := compileTiles(getTable(tbl, "tiles"))
	if err != nil {
		return nil, err
	}
	m.Tiles = tiles
	if len(tiles) > 0 && len(tiles[0]) > 0 {
		m.Height = len(tiles[0]) * 8
		m.Width = len([]rune(tiles[0][0])) * 8
	}

	eachEntry(getTable(tbl, "destinations"), func(e *lua.LTable) {
		m.Destinations = append(m.Destinations, types.DestinationDef{
			Placement: placement(e),
			Direction: getInt(e, "direction", -1),
			Default:   getBool(e, "default", false),
		})
	})
	eachEntry(getTable(tbl, "streams"), func(e *lua.LTable) {
		m.Streams = append(m.Streams, types.StreamDef{
			Placement:     placement(e),
			Direction:     getInt(e, "direction", 6),
			Speed:         getInt(e, "speed", 64),
			AllowMovement: getBool(e, "allow_movement", true),
		})
	})
	eachEntry(getTable(tbl, "conveyor_belts"), func(e *lua.LTable) {
		m.ConveyorBelts = append(m.ConveyorBelts, types.ConveyorBeltDef{
			Placement: placement(e),
			Direction: getInt(e, "direction", 6),
		})
	})
	eachEntry(getTable(tbl, "stairs"), func(e *lua.LTable) {
		m.Stairs = append(m.Stairs, types.StairsDef{
			Placement:   placement(e),
			Direction:   getInt(e, "direction", 1),
			InsideFloor: getBool(e, "inside_floor", false),
		})
	})
	eachEntry(getTable(tbl, "sensors"), func(e *lua.LTable) {
		m.Sensors = append(m.Sensors, types.SensorDef{Placement: placement(e)})
	})
	eachEntry(getTable(tbl, "switches"), func(e *lua.LTable) {
		m.Switches = append(m.Switches, types.SwitchDef{
			Placement: placement(e),
			Walkable:  getBool(e, "walkable", true),
		})
	})
	eachEntry(getTable(tbl, "teletransporters"), func(e *lua.LTable) {
		m.Teletransporters = append(m.Teletransporters, types.TeletransporterDef{
			Placement:   placement(e),
			Width:       getInt(e, "width", 16),
			Height:      getInt(e, "height", 16),
			Destination: getString(e, "destination"),
			Map:         getString(e, "map"),
			Side:        getInt(e, "side", -1),
		})
	})
	eachEntry(getTable(tbl, "jumpers"), func(e *lua.LTable) {
		m.Jumpers = append(m.Jumpers, types.JumperDef{
			Placement: placement(e),
			Width:     getInt(e, "width", 8),
			Height:    getInt(e, "height", 8),
			Direction: getInt(e, "direction", 6),
			JumpLen:   getInt(e, "jump_length", 32),
		})
	})
	eachEntry(getTable(tbl, "enemies"), func(e *lua.LTable) {
		m.Enemies = append(m.Enemies, types.EnemyDef{
			Placement: placement(e),
			Damage:    getInt(e, "damage", 1),
		})
	})
	eachEntry(getTable(tbl, "destructibles"), func(e *lua.LTable) {
		m.Destructibles = append(m.Destructibles, types.DestructibleDef{
			Placement: placement(e),
			Weight:    getInt(e, "weight", 0),
		})
	})
	eachEntry(getTable(tbl, "chests"), func(e *lua.LTable) {
		m.Chests = append(m.Chests, types.ChestDef{
			Placement: placement(e),
			Treasure:  getString(e, "treasure"),
			Open:      getBool(e, "open", false),
		})
	})
	eachEntry(getTable(tbl, "blocks"), func(e *lua.LTable) {
		m.Blocks = append(m.Blocks, types.BlockDef{Placement: placement(e)})
	})
	eachEntry(getTable(tbl, "separators"), func(e *lua.LTable) {
		m.Separators = append(m.Separators, types.SeparatorDef{
			Placement: placement(e),
			Width:     getInt(e, "width", 16),
			Height:    getInt(e, "height", 16),
		})
	})
	eachEntry(getTable(tbl, "crystals"), func(e *lua.LTable) {
		m.Crystals = append(m.Crystals, types.CrystalDef{Placement: placement(e)})
	})
	eachEntry(getTable(tbl, "bombs"), func(e *lua.LTable) {
		m.Bombs = append(m.Bombs, types.BombDef{Placement: placement(e)})
	})

	return m, nil
}

// compileTiles reads the tiles field: either an array of row strings
// (a single layer) or an array of such arrays (one per layer, low to
// high).
func compileTiles(tbl *lua.LTable) ([][]string, error) {
	if tbl == nil || tbl.MaxN() == 0 {
		return nil, fmt.Errorf("no tiles")
	}

	switch tbl.RawGetInt(1).(type) {
	case lua.LString:
		rows, err := tileRows(tbl)
		if err != nil {
			return nil, err
		}
		return [][]string{rows}, nil

	case *lua.LTable:
		var layers [][]string
		for i := 1; i <= tbl.MaxN(); i++ {
			layerTbl, ok := tbl.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("tiles layer %d is not a table", i)
			}
			rows, err := tileRows(layerTbl)
			if err != nil {
				return nil, fmt.Errorf("tiles layer %d: %w", i, err)
			}
			layers = append(layers, rows)
		}
		return layers, nil
	}
	return nil, fmt.Errorf("tiles must be rows or layers of rows")
}

func tileRows(tbl *lua.LTable) ([]string, error) {
	var rows []string
	for i := 1; i <= tbl.MaxN(); i++ {
		s, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("row %d is not a string", i)
		}
		rows = append(rows, string(s))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	return rows, nil
}
