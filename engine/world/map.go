package world

import (
	"fmt"

	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/geom"
	"github.com/nathoo/actioncore/types"
)

// cellSize is the side of one ground cell in pixels.
const cellSize = 8

// Map is the collision oracle and detector registry of one loaded map.
// It owns the per-layer ground grid and every entity placed by the map
// file. The map never mutates the hero; the post-move sweep reports
// collisions to a CollisionObserver instead.
type Map struct {
	id      string
	width   int
	height  int
	width8  int
	height8 int
	world   string
	floor   int

	grounds [LayerCount][]ground.Ground

	destinations map[string]*Destination
	defaultDest  *Destination
	entities     []mapEntity
}

// mapEntity is any placed entity. Concrete kinds are resolved by type
// switches in the collision code.
type mapEntity interface {
	Name() string
	Layer() Layer
	BoundingBox() geom.Rect
	IsEnabled() bool
	IsBeingRemoved() bool
}

// NewMap compiles a map definition into a live map.
func NewMap(def *types.MapDef) (*Map, error) {
	if len(def.Tiles) == 0 || len(def.Tiles[0]) == 0 {
		return nil, fmt.Errorf("map %s: no tile rows", def.ID)
	}
	if len(def.Tiles) > LayerCount {
		return nil, fmt.Errorf("map %s: %d tile layers, at most %d supported", def.ID, len(def.Tiles), LayerCount)
	}

	height8 := len(def.Tiles[0])
	width8 := len([]rune(def.Tiles[0][0]))

	m := &Map{
		id:           def.ID,
		width:        width8 * cellSize,
		height:       height8 * cellSize,
		width8:       width8,
		height8:      height8,
		world:        def.World,
		floor:        def.Floor,
		destinations: make(map[string]*Destination),
	}

	for layer := 0; layer < LayerCount; layer++ {
		m.grounds[layer] = make([]ground.Ground, width8*height8)
	}
	for layer, rows := range def.Tiles {
		if len(rows) != height8 {
			return nil, fmt.Errorf("map %s: layer %d has %d rows, want %d", def.ID, layer, len(rows), height8)
		}
		for y, row := range rows {
			runes := []rune(row)
			if len(runes) != width8 {
				return nil, fmt.Errorf("map %s: layer %d row %d has %d cells, want %d", def.ID, layer, y, len(runes), width8)
			}
			for x, r := range runes {
				g, err := ground.FromRune(r)
				if err != nil {
					return nil, fmt.Errorf("map %s: layer %d row %d col %d: %w", def.ID, layer, y, x, err)
				}
				m.grounds[layer][y*width8+x] = g
			}
		}
	}

	for _, d := range def.Destinations {
		dest := newDestination(d)
		m.destinations[dest.Name()] = dest
		if d.Default || m.defaultDest == nil {
			m.defaultDest = dest
		}
		m.entities = append(m.entities, dest)
	}
	for _, d := range def.Streams {
		m.entities = append(m.entities, newStream(d))
	}
	for _, d := range def.ConveyorBelts {
		m.entities = append(m.entities, newConveyorBelt(d))
	}
	for _, d := range def.Stairs {
		m.entities = append(m.entities, newStairs(d))
	}
	for _, d := range def.Sensors {
		m.entities = append(m.entities, newSensor(d))
	}
	for _, d := range def.Switches {
		m.entities = append(m.entities, newSwitch(d))
	}
	for _, d := range def.Teletransporters {
		m.entities = append(m.entities, newTeletransporter(d))
	}
	for _, d := range def.Jumpers {
		m.entities = append(m.entities, newJumper(d))
	}
	for _, d := range def.Enemies {
		m.entities = append(m.entities, newEnemy(d))
	}
	for _, d := range def.Destructibles {
		m.entities = append(m.entities, newDestructible(d))
	}
	for _, d := range def.Chests {
		m.entities = append(m.entities, newChest(d))
	}
	for _, d := range def.Blocks {
		m.entities = append(m.entities, newBlock(d))
	}
	for _, d := range def.Separators {
		m.entities = append(m.entities, newSeparator(d))
	}
	for _, d := range def.Crystals {
		m.entities = append(m.entities, newCrystal(d))
	}
	for _, d := range def.Bombs {
		m.entities = append(m.entities, newBomb(d))
	}

	return m, nil
}

// ID returns the map id.
func (m *Map) ID() string { return m.id }

// Width returns the map width in pixels.
func (m *Map) Width() int { return m.width }

// Height returns the map height in pixels.
func (m *Map) Height() int { return m.height }

// Destination returns a destination by name, or the default one for "".
func (m *Map) Destination(name string) (*Destination, error) {
	if name == "" {
		if m.defaultDest == nil {
			return nil, fmt.Errorf("map %s: no destination", m.id)
		}
		return m.defaultDest, nil
	}
	d, ok := m.destinations[name]
	if !ok {
		return nil, fmt.Errorf("map %s: no destination %q", m.id, name)
	}
	return d, nil
}

// AddEntity registers a dynamically created entity (e.g. an explosion).
func (m *Map) AddEntity(e mapEntity) {
	m.entities = append(m.entities, e)
}

// RemoveEntity flags an entity for removal. Holders of references observe
// IsBeingRemoved on their next tick.
func (m *Map) RemoveEntity(e mapEntity) {
	switch ent := e.(type) {
	case interface{ markRemoved() }:
		ent.markRemoved()
	}
}

func (e *Entity) markRemoved() { e.beingRemoved = true }

// Update purges removed entities and expires explosions.
func (m *Map) Update(now int64) {
	kept := m.entities[:0]
	for _, e := range m.entities {
		if ex, ok := e.(*Explosion); ok && now >= ex.endDate {
			ex.markRemoved()
		}
		if e.IsBeingRemoved() {
			continue
		}
		kept = append(kept, e)
	}
	m.entities = kept
}

// IsInside reports whether the point is inside the map area.
func (m *Map) IsInside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Ground returns the terrain kind at a point of a layer. Points outside
// the map have empty ground.
func (m *Map) Ground(layer Layer, x, y int) ground.Ground {
	if !m.IsInside(x, y) {
		return ground.Empty
	}
	return m.grounds[layer][(y/cellSize)*m.width8+x/cellSize]
}

// obstacleAt reports whether the ground at one point blocks the moving
// entity described by traits. Diagonal walls block only half of their
// cell; the other half of an over-water variant behaves as deep water.
func (m *Map) obstacleAt(layer Layer, x, y int, traits ObstacleTraits) bool {
	if !m.IsInside(x, y) {
		return true
	}

	g := m.Ground(layer, x, y)
	switch g {
	case ground.Wall:
		return true
	case ground.LowWall:
		return traits.IsLowWallObstacle()
	case ground.DeepWater:
		return traits.IsDeepWaterObstacle()
	case ground.ShallowWater:
		return traits.IsShallowWaterObstacle()
	case ground.Hole:
		return traits.IsHoleObstacle()
	case ground.Lava:
		return traits.IsLavaObstacle()
	case ground.Prickle:
		return traits.IsPrickleObstacle()
	case ground.Ladder:
		return traits.IsLadderObstacle()
	}

	if g.IsDiagonalWall() {
		ox := x % cellSize
		oy := y % cellSize
		var onWall bool
		switch g {
		case ground.WallTopRight, ground.WallTopRightWater:
			onWall = ox >= oy
		case ground.WallTopLeft, ground.WallTopLeftWater:
			onWall = ox+oy <= cellSize-1
		case ground.WallBottomLeft, ground.WallBottomLeftWater:
			onWall = ox <= oy
		case ground.WallBottomRight, ground.WallBottomRightWater:
			onWall = ox+oy >= cellSize-1
		}
		if onWall {
			return true
		}
		if g.IsDiagonalWallOverWater() {
			return traits.IsDeepWaterObstacle()
		}
		return false
	}

	return false
}

// samplePoints returns the coordinates to test along one box axis: every
// cell-sized step plus the far edge.
func samplePoints(start, size int) []int {
	var points []int
	for v := start; v < start+size; v += cellSize {
		points = append(points, v)
	}
	points = append(points, start+size-1)
	return points
}

// TestCollisionWithObstacles reports whether the given box overlaps an
// obstacle of the layer: the map border, a blocking ground, or a
// blocking entity.
func (m *Map) TestCollisionWithObstacles(layer Layer, box geom.Rect, traits ObstacleTraits) bool {
	for _, y := range samplePoints(box.Y, box.H) {
		for _, x := range samplePoints(box.X, box.W) {
			if m.obstacleAt(layer, x, y, traits) {
				return true
			}
		}
	}
	return m.testCollisionWithEntities(layer, box, traits)
}

// TestPointCollision reports whether a single point overlaps an obstacle.
func (m *Map) TestPointCollision(layer Layer, x, y int, traits ObstacleTraits) bool {
	if m.obstacleAt(layer, x, y, traits) {
		return true
	}
	return m.testCollisionWithEntities(layer, geom.NewRect(x, y, 1, 1), traits)
}

func (m *Map) testCollisionWithEntities(layer Layer, box geom.Rect, traits ObstacleTraits) bool {
	for _, e := range m.entities {
		if e.Layer() != layer || !e.IsEnabled() || e.IsBeingRemoved() {
			continue
		}
		if !e.BoundingBox().Overlaps(box) {
			continue
		}
		if m.entityIsObstacle(e, traits) {
			return true
		}
	}
	return false
}

func (m *Map) entityIsObstacle(e mapEntity, traits ObstacleTraits) bool {
	switch ent := e.(type) {
	case *Block, *Chest, *Destructible, *Bomb, *Crystal:
		return true
	case *Switch:
		return !ent.IsWalkable()
	case *Teletransporter:
		return traits.IsTeletransporterObstacle(ent)
	case *ConveyorBelt:
		return traits.IsConveyorBeltObstacle(ent)
	case *Stairs:
		return traits.IsStairsObstacle(ent)
	case *Sensor:
		return traits.IsSensorObstacle(ent)
	case *Jumper:
		return traits.IsJumperObstacle(ent)
	case *Separator:
		return traits.IsSeparatorObstacle(ent)
	case *Stream:
		return traits.IsStreamObstacle(ent)
	}
	return false
}

// HasEmptyGround reports whether every corner of the box rests on empty
// ground of the given layer.
func (m *Map) HasEmptyGround(layer Layer, box geom.Rect) bool {
	corners := [4][2]int{
		{box.X, box.Y},
		{box.X + box.W - 1, box.Y},
		{box.X, box.Y + box.H - 1},
		{box.X + box.W - 1, box.Y + box.H - 1},
	}
	for _, c := range corners {
		if m.Ground(layer, c[0], c[1]) != ground.Empty {
			return false
		}
	}
	return true
}

// CheckCollisionWithDetectors runs the post-move sweep: every enabled
// detector overlapping the observer reports its collision with the mode
// its protocol uses.
func (m *Map) CheckCollisionWithDetectors(o CollisionObserver) {
	box := o.BoundingBox()
	layer := o.Layer()
	facing := o.FacingPoint()
	groundPoint := o.GroundPoint()
	center := box.Center()

	for _, e := range m.entities {
		if !e.IsEnabled() || e.IsBeingRemoved() {
			continue
		}

		switch ent := e.(type) {
		case *Destructible:
			if e.Layer() == layer && ent.ContainsPoint(facing.X, facing.Y) {
				o.NotifyCollisionWithDestructible(ent, ModeFacingPoint)
			}
		case *Enemy:
			if e.Layer() == layer && ent.Overlaps(box) {
				o.NotifyCollisionWithEnemy(ent)
			}
		case *Teletransporter:
			if e.Layer() == layer && m.testTeletransporter(ent, box) {
				o.NotifyCollisionWithTeletransporter(ent, ModeOverlapping)
			}
		case *Stream:
			if e.Layer() == layer && ent.ContainsPoint(groundPoint.X, groundPoint.Y) {
				o.NotifyCollisionWithStream(ent)
			}
		case *ConveyorBelt:
			// A belt takes the hero when the 2x2 box around his center is on it.
			centerBox := geom.NewRect(center.X-1, center.Y-1, 2, 2)
			if e.Layer() == layer && ent.Overlaps(centerBox) {
				move := geom.DirectionToXY(ent.Direction())
				o.NotifyCollisionWithConveyorBelt(ent, move.X, move.Y)
			}
		case *Stairs:
			m.testStairs(ent, o, box, layer)
		case *Jumper:
			if e.Layer() == layer && ent.Overlaps(box) {
				o.NotifyCollisionWithJumper(ent, ModeCustom)
			}
		case *Sensor:
			if e.Layer() != layer {
				continue
			}
			if ent.BoundingBox().ContainsRect(box) {
				o.NotifyCollisionWithSensor(ent, ModeInside)
			} else if !ent.Overlaps(box) {
				ent.Reset()
			}
		case *Switch:
			if e.Layer() != layer {
				continue
			}
			if ent.IsWalkable() && ent.BoundingBox().ContainsRect(box) {
				o.NotifyCollisionWithSwitch(ent, ModeInside)
			} else if !ent.IsWalkable() && ent.ContainsPoint(facing.X, facing.Y) {
				o.NotifyCollisionWithSwitch(ent, ModeFacingPoint)
			}
		case *Crystal:
			if e.Layer() == layer && ent.ContainsPoint(facing.X, facing.Y) {
				o.NotifyCollisionWithCrystal(ent, ModeFacingPoint)
			}
		case *Chest:
			if e.Layer() == layer && ent.ContainsPoint(facing.X, facing.Y) {
				o.NotifyCollisionWithChest(ent)
			}
		case *Block:
			if e.Layer() == layer && ent.ContainsPoint(facing.X, facing.Y) {
				o.NotifyCollisionWithBlock(ent)
			}
		case *Separator:
			if e.Layer() == layer && ent.ContainsPoint(center.X, center.Y) {
				o.NotifyCollisionWithSeparator(ent, ModeCenter)
			}
		case *Bomb:
			if e.Layer() == layer && ent.ContainsPoint(facing.X, facing.Y) {
				o.NotifyCollisionWithBomb(ent, ModeFacingPoint)
			}
		case *Explosion:
			if e.Layer() == layer && ent.Overlaps(box) {
				o.NotifyCollisionWithExplosion(ent)
			}
		}
	}
}

// testTeletransporter checks the transporter's trigger zone: side
// transporters trigger on any overlap, normal ones when the observer's
// box is mostly inside (center contained).
func (m *Map) testTeletransporter(t *Teletransporter, box geom.Rect) bool {
	if t.IsOnMapSide() {
		return t.Overlaps(box)
	}
	c := box.Center()
	return t.ContainsPoint(c.X, c.Y)
}

// testStairs reports stairs collisions. Inside-floor stairs are also
// detected from the layer just above, so the hero can take them back down.
func (m *Map) testStairs(s *Stairs, o CollisionObserver, box geom.Rect, layer Layer) {
	sameLayer := s.Layer() == layer
	layerAbove := s.IsInsideFloor() && layer == s.Layer()+1
	if !sameLayer && !layerAbove {
		return
	}

	if s.IsInsideFloor() {
		if s.Overlaps(box) {
			o.NotifyCollisionWithStairs(s, ModeOverlapping)
		}
		return
	}

	for dir := 0; dir < 4; dir++ {
		p := o.FacingPointIn(dir)
		if s.ContainsPoint(p.X, p.Y) {
			o.NotifyCollisionWithStairs(s, ModeFacingPointAny)
			return
		}
	}
	if s.Overlaps(box) {
		o.NotifyCollisionWithStairs(s, ModeOverlapping)
	}
}

// StairsOverlapping returns the stairs overlapping the given box on a
// layer, or nil.
func (m *Map) StairsOverlapping(layer Layer, box geom.Rect) *Stairs {
	for _, e := range m.entities {
		s, ok := e.(*Stairs)
		if ok && s.Layer() == layer && s.IsEnabled() && s.Overlaps(box) {
			return s
		}
	}
	return nil
}

// EntityView is a read-only description of a placed entity, for
// front-ends that draw the map.
type EntityView struct {
	Kind  string
	Name  string
	Layer Layer
	Box   geom.Rect
}

// EntityViews returns a snapshot of the enabled entities.
func (m *Map) EntityViews() []EntityView {
	var views []EntityView
	for _, e := range m.entities {
		if !e.IsEnabled() || e.IsBeingRemoved() {
			continue
		}
		kind := ""
		switch e.(type) {
		case *Destination:
			kind = "destination"
		case *Stream:
			kind = "stream"
		case *ConveyorBelt:
			kind = "conveyor_belt"
		case *Stairs:
			kind = "stairs"
		case *Sensor:
			kind = "sensor"
		case *Switch:
			kind = "switch"
		case *Teletransporter:
			kind = "teletransporter"
		case *Jumper:
			kind = "jumper"
		case *Enemy:
			kind = "enemy"
		case *Destructible:
			kind = "destructible"
		case *Chest:
			kind = "chest"
		case *Block:
			kind = "block"
		case *Separator:
			kind = "separator"
		case *Crystal:
			kind = "crystal"
		case *Bomb:
			kind = "bomb"
		case *Explosion:
			kind = "explosion"
		}
		views = append(views, EntityView{Kind: kind, Name: e.Name(), Layer: e.Layer(), Box: e.BoundingBox()})
	}
	return views
}
