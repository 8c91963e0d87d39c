package world

import "fmt"

// Layer is a discrete vertical stratum of the map. Entities only collide
// with entities and grounds of their own layer.
type Layer int

// The three map layers, low to high.
const (
	LayerLow Layer = iota
	LayerIntermediate
	LayerHigh

	LayerCount = 3
)

// String returns a readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerLow:
		return "low"
	case LayerIntermediate:
		return "intermediate"
	case LayerHigh:
		return "high"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}
