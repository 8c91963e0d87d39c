package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/actioncore/engine/script"
	"github.com/nathoo/actioncore/engine/world"
	"github.com/nathoo/actioncore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// knownHandlers is the closed set of quest event handlers.
var knownHandlers = map[string]bool{
	script.HandlerPositionChanged:  true,
	script.HandlerGroundChanged:    true,
	script.HandlerStateChanged:     true,
	script.HandlerTreasureObtained: true,
	script.HandlerSensorActivated:  true,
	script.HandlerSwitchActivated:  true,
	script.HandlerSeparatorCrossed: true,
	script.HandlerMapStarted:       true,
	script.HandlerGameOver:         true,
}

// validate checks the compiled quest for referential integrity and
// consistency.
func validate(q *Quest) error {
	ve := &ValidationError{}

	if q.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if q.Game.StartMap == "" {
		ve.Errors = append(ve.Errors, "Game.start_map is required")
	} else if _, ok := q.Maps[q.Game.StartMap]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start map %q not found in defined maps", q.Game.StartMap))
	}
	if q.Game.Life > q.Game.MaxLife {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"life %d exceeds max_life %d and will be clamped", q.Game.Life, q.Game.MaxLife))
	}

	for name := range q.handlers {
		if !knownHandlers[name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"unknown event handler %q", name))
		}
	}

	for id, def := range q.Maps {
		validateMap(q, id, def, ve)
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateMap(q *Quest, id string, def *types.MapDef, ve *ValidationError) {
	// The map compiler is the authority on tile grids and layers; run it
	// here so content defects surface at load time.
	if _, err := world.NewMap(def); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
		return
	}

	if len(def.Destinations) == 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"map %q has no destination", id))
	}
	destinations := map[string]bool{}
	for _, d := range def.Destinations {
		if destinations[d.Name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"map %q destination %q defined twice", id, d.Name))
		}
		destinations[d.Name] = true
		if d.Direction < -1 || d.Direction > 3 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"map %q destination %q has invalid direction %d", id, d.Name, d.Direction))
		}
	}

	for _, t := range def.Teletransporters {
		target := t.Map
		if target == "" {
			target = id
		}
		targetDef, ok := q.Maps[target]
		if !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"map %q teletransporter %q targets undefined map %q", id, t.Name, t.Map))
			continue
		}
		if t.Destination == "" {
			continue
		}
		found := false
		for _, d := range targetDef.Destinations {
			if d.Name == t.Destination {
				found = true
				break
			}
		}
		if !found {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"map %q teletransporter %q targets undefined destination %q on map %q",
				id, t.Name, t.Destination, target))
		}
	}

	for _, p := range placements(def) {
		if p.Layer < 0 || p.Layer >= int(world.LayerCount) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"map %q entity %q has invalid layer %d", id, p.Name, p.Layer))
		}
	}

	for _, s := range def.Streams {
		validateDirection8(id, "stream", s.Name, s.Direction, ve)
	}
	for _, c := range def.ConveyorBelts {
		validateDirection8(id, "conveyor belt", c.Name, c.Direction, ve)
	}
	for _, j := range def.Jumpers {
		validateDirection8(id, "jumper", j.Name, j.Direction, ve)
	}
	for _, s := range def.Stairs {
		if s.Direction < 0 || s.Direction > 3 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"map %q stairs %q has invalid direction %d", id, s.Name, s.Direction))
		}
	}
}

// placements gathers the placement of every entity of the map.
func placements(def *types.MapDef) []types.Placement {
	var all []types.Placement
	for _, e := range def.Destinations {
		all = append(all, e.Placement)
	}
	for _, e := range def.Streams {
		all = append(all, e.Placement)
	}
	for _, e := range def.ConveyorBelts {
		all = append(all, e.Placement)
	}
	for _, e := range def.Stairs {
		all = append(all, e.Placement)
	}
	for _, e := range def.Sensors {
		all = append(all, e.Placement)
	}
	for _, e := range def.Switches {
		all = append(all, e.Placement)
	}
	for _, e := range def.Teletransporters {
		all = append(all, e.Placement)
	}
	for _, e := range def.Jumpers {
		all = append(all, e.Placement)
	}
	for _, e := range def.Enemies {
		all = append(all, e.Placement)
	}
	for _, e := range def.Destructibles {
		all = append(all, e.Placement)
	}
	for _, e := range def.Chests {
		all = append(all, e.Placement)
	}
	for _, e := range def.Blocks {
		all = append(all, e.Placement)
	}
	for _, e := range def.Separators {
		all = append(all, e.Placement)
	}
	for _, e := range def.Crystals {
		all = append(all, e.Placement)
	}
	for _, e := range def.Bombs {
		all = append(all, e.Placement)
	}
	return all
}

func validateDirection8(mapID, kind, name string, direction int, ve *ValidationError) {
	if direction < 0 || direction > 7 {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"map %q %s %q has invalid direction %d", mapID, kind, name, direction))
	}
}
