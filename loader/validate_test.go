package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/actioncore/types"
	lua "github.com/yuin/gopher-lua"
)

func validMapDef(id string) *types.MapDef {
	return &types.MapDef{
		ID: id,
		Tiles: [][]string{{
			"####",
			"#..#",
			"####",
		}},
		Destinations: []types.DestinationDef{
			{
				Placement: types.Placement{Name: "start_point", X: 16, Y: 13},
				Direction: -1,
				Default:   true,
			},
		},
	}
}

func validQuest() *Quest {
	return &Quest{
		Game: &types.GameDef{
			Title:    "q",
			StartMap: "m",
			Life:     1,
			MaxLife:  1,
		},
		Maps: map[string]*types.MapDef{"m": validMapDef("m")},
	}
}

func wantInvalid(t *testing.T, q *Quest, fragment string) {
	t.Helper()
	err := validate(q)
	if err == nil {
		t.Fatalf("validation passed, want error containing %q", fragment)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Errorf("error = %q, want fragment %q", err, fragment)
	}
}

func TestValidateAcceptsMinimalQuest(t *testing.T) {
	if err := validate(validQuest()); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidateRequiresTitleAndStartMap(t *testing.T) {
	q := validQuest()
	q.Game.Title = ""
	wantInvalid(t, q, "title is required")

	q = validQuest()
	q.Game.StartMap = "elsewhere"
	wantInvalid(t, q, "start map")
}

func TestValidateRejectsMapWithoutDestination(t *testing.T) {
	q := validQuest()
	q.Maps["m"].Destinations = nil
	wantInvalid(t, q, "no destination")
}

func TestValidateRejectsDuplicateDestination(t *testing.T) {
	q := validQuest()
	q.Maps["m"].Destinations = append(q.Maps["m"].Destinations,
		q.Maps["m"].Destinations[0])
	wantInvalid(t, q, "defined twice")
}

func TestValidateRejectsBadDirections(t *testing.T) {
	q := validQuest()
	q.Maps["m"].Destinations[0].Direction = 4
	wantInvalid(t, q, "invalid direction 4")

	q = validQuest()
	q.Maps["m"].Streams = []types.StreamDef{{
		Placement: types.Placement{Name: "s", X: 8, Y: 8},
		Direction: 9,
		Speed:     64,
	}}
	wantInvalid(t, q, "invalid direction 9")

	q = validQuest()
	q.Maps["m"].Stairs = []types.StairsDef{{
		Placement: types.Placement{Name: "st", X: 8, Y: 8},
		Direction: 7,
	}}
	wantInvalid(t, q, "invalid direction 7")
}

func TestValidateRejectsBadLayer(t *testing.T) {
	q := validQuest()
	q.Maps["m"].Sensors = []types.SensorDef{{
		Placement: types.Placement{Name: "alarm", Layer: 5, X: 8, Y: 8},
	}}
	wantInvalid(t, q, "invalid layer 5")
}

func TestValidateRejectsBrokenTeletransporter(t *testing.T) {
	q := validQuest()
	q.Maps["m"].Teletransporters = []types.TeletransporterDef{{
		Placement:   types.Placement{Name: "t", X: 8, Y: 8},
		Width:       16,
		Height:      16,
		Destination: "nowhere_point",
		Side:        -1,
	}}
	wantInvalid(t, q, "undefined destination")
}

func TestValidateRejectsUnknownHandler(t *testing.T) {
	q := validQuest()
	q.handlers = map[string]*lua.LFunction{"on_hero_moved": nil}
	wantInvalid(t, q, "unknown event handler")
}
