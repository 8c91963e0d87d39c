// Package save implements JSON serialization and deserialization of a
// play session snapshot: the current map, the hero's position and the
// equipment.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/actioncore/engine/world"
)

// FormatVersion is bumped on incompatible changes to Data.
const FormatVersion = 1

// Data is the JSON-serializable snapshot format.
type Data struct {
	Version   int            `json:"version"`
	Game      string         `json:"game"`
	Map       string         `json:"map"`
	X         int            `json:"x"`
	Y         int            `json:"y"`
	Layer     int            `json:"layer"`
	Direction int            `json:"direction"`
	Life      int            `json:"life"`
	MaxLife   int            `json:"max_life"`
	Abilities map[string]int `json:"abilities"`
	Items     [2]string      `json:"items"`
}

// Marshal serializes a snapshot to JSON bytes.
func Marshal(d *Data) ([]byte, error) {
	d.Version = FormatVersion
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal deserializes JSON bytes into a snapshot and validates it.
func Unmarshal(data []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	if d.Version != FormatVersion {
		return nil, fmt.Errorf("save: unsupported format version %d", d.Version)
	}
	if d.Map == "" {
		return nil, fmt.Errorf("save: no map")
	}
	if d.Layer < 0 || d.Layer >= world.LayerCount {
		return nil, fmt.Errorf("save: invalid layer %d", d.Layer)
	}
	if d.Direction < 0 || d.Direction > 3 {
		return nil, fmt.Errorf("save: invalid direction %d", d.Direction)
	}
	if d.Abilities == nil {
		d.Abilities = map[string]int{}
	}
	return &d, nil
}
