package world

import (
	"github.com/nathoo/actioncore/geom"
	"github.com/nathoo/actioncore/types"
)

// Destination is a point where the hero can appear on the map.
type Destination struct {
	Entity
	direction int // 4-way, or -1 to keep the previous facing
	isDefault bool
}

func newDestination(def types.DestinationDef) *Destination {
	d := &Destination{
		Entity:    newEntity(def.Name, Layer(def.Layer), def.X-8, def.Y-13, 16, 16),
		direction: def.Direction,
		isDefault: def.Default,
	}
	d.setOrigin(8, 13)
	return d
}

// Direction returns the facing direction the hero takes on arrival.
func (d *Destination) Direction() int { return d.direction }

// Stream is a directional effector tile: any entity whose ground point
// touches it is forcibly displaced by a StreamAction.
type Stream struct {
	Entity
	direction     int
	speed         int
	allowMovement bool
}

func newStream(def types.StreamDef) *Stream {
	s := &Stream{
		Entity:        newEntity(def.Name, Layer(def.Layer), def.X-8, def.Y-8, 16, 16),
		direction:     def.Direction,
		speed:         def.Speed,
		allowMovement: def.AllowMovement,
	}
	s.setOrigin(8, 8)
	if s.speed <= 0 {
		s.speed = 40
	}
	return s
}

// Direction returns the stream's 8-way direction.
func (s *Stream) Direction() int { return s.direction }

// Speed returns the stream speed in pixels per second.
func (s *Stream) Speed() int { return s.speed }

// AllowsMovement reports whether the entity keeps control of its own
// movement while streamed. Blocking streams return false.
func (s *Stream) AllowsMovement() bool { return s.allowMovement }

// ConveyorBelt carries the hero across itself in a fixed direction.
type ConveyorBelt struct {
	Entity
	direction int
}

func newConveyorBelt(def types.ConveyorBeltDef) *ConveyorBelt {
	c := &ConveyorBelt{
		Entity:    newEntity(def.Name, Layer(def.Layer), def.X-8, def.Y-8, 16, 16),
		direction: def.Direction,
	}
	c.setOrigin(8, 8)
	return c
}

// Direction returns the belt's 8-way direction.
func (c *ConveyorBelt) Direction() int { return c.direction }

// StairsWay is the direction the hero takes some stairs.
type StairsWay int

const (
	// StairsNormalWay follows the stairs' declared direction.
	StairsNormalWay StairsWay = iota
	// StairsReverseWay goes back down/out.
	StairsReverseWay
)

// Stairs connect two layers of the same map or two maps.
type Stairs struct {
	Entity
	direction   int // 4-way, the normal way
	insideFloor bool
}

func newStairs(def types.StairsDef) *Stairs {
	s := &Stairs{
		Entity:      newEntity(def.Name, Layer(def.Layer), def.X, def.Y, 16, 16),
		direction:   def.Direction,
		insideFloor: def.InsideFloor,
	}
	s.setOrigin(0, 0)
	return s
}

// IsInsideFloor reports whether the stairs connect two layers of this map.
func (s *Stairs) IsInsideFloor() bool { return s.insideFloor }

// Direction returns the 4-way direction of the normal way.
func (s *Stairs) Direction() int { return s.direction }

// MovementDirection8 returns the 8-way movement direction for a way.
func (s *Stairs) MovementDirection8(way StairsWay) int {
	direction8 := s.direction * 2
	if way == StairsReverseWay {
		return geom.OppositeDirection8(direction8)
	}
	return direction8
}

// Sensor triggers a quest callback when the hero is entirely inside it.
type Sensor struct {
	Entity
	activated bool
}

func newSensor(def types.SensorDef) *Sensor {
	s := &Sensor{Entity: newEntity(def.Name, Layer(def.Layer), def.X, def.Y, 16, 16)}
	s.setOrigin(0, 0)
	return s
}

// Activate marks the sensor as triggered. Returns false if it already was,
// so the caller only notifies the quest once per stay.
func (s *Sensor) Activate() bool {
	if s.activated {
		return false
	}
	s.activated = true
	return true
}

// Reset re-arms the sensor once the hero has left it.
func (s *Sensor) Reset() { s.activated = false }

// Switch is a walkable or solid switch.
type Switch struct {
	Entity
	walkable  bool
	activated bool
}

func newSwitch(def types.SwitchDef) *Switch {
	s := &Switch{
		Entity:   newEntity(def.Name, Layer(def.Layer), def.X, def.Y, 16, 16),
		walkable: def.Walkable,
	}
	s.setOrigin(0, 0)
	return s
}

// IsWalkable reports whether the switch is activated by standing on it.
func (s *Switch) IsWalkable() bool { return s.walkable }

// IsActivated reports whether the switch is currently on.
func (s *Switch) IsActivated() bool { return s.activated }

// TryActivate turns the switch on. Returns true if it was off before.
func (s *Switch) TryActivate() bool {
	if s.activated {
		return false
	}
	s.activated = true
	return true
}

// Teletransporter sends the hero to a destination, possibly on another map.
type Teletransporter struct {
	Entity
	destination string
	mapID       string
	side        int
}

func newTeletransporter(def types.TeletransporterDef) *Teletransporter {
	w, h := def.Width, def.Height
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = 16
	}
	t := &Teletransporter{
		Entity:      newEntity(def.Name, Layer(def.Layer), def.X, def.Y, w, h),
		destination: def.Destination,
		mapID:       def.Map,
		side:        def.Side,
	}
	t.setOrigin(0, 0)
	return t
}

// Destination returns the name of the target destination.
func (t *Teletransporter) Destination() string { return t.destination }

// MapID returns the target map id, empty for the current map.
func (t *Teletransporter) MapID() string { return t.mapID }

// IsOnMapSide reports whether this transporter covers a map border.
func (t *Teletransporter) IsOnMapSide() bool { return t.side >= 0 }

// Side returns the map side (0 right, 1 top, 2 left, 3 bottom) or -1.
func (t *Teletransporter) Side() int { return t.side }

// Jumper makes the hero jump over a gap when walked into.
type Jumper struct {
	Entity
	direction int
	jumpLen   int
}

func newJumper(def types.JumperDef) *Jumper {
	w, h := def.Width, def.Height
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 8
	}
	j := &Jumper{
		Entity:    newEntity(def.Name, Layer(def.Layer), def.X, def.Y, w, h),
		direction: def.Direction,
		jumpLen:   def.JumpLen,
	}
	j.setOrigin(0, 0)
	if j.jumpLen <= 0 {
		j.jumpLen = 40
	}
	return j
}

// Direction returns the 8-way jump direction.
func (j *Jumper) Direction() int { return j.direction }

// JumpLength returns the jump distance in pixels.
func (j *Jumper) JumpLength() int { return j.jumpLen }

// Enemy is a minimal hostile entity: a damage zone with life semantics
// owned elsewhere. It exists so the hurt protocol has a source.
type Enemy struct {
	Entity
	damage int
}

func newEnemy(def types.EnemyDef) *Enemy {
	e := &Enemy{
		Entity: newEntity(def.Name, Layer(def.Layer), def.X-8, def.Y-13, 16, 16),
		damage: def.Damage,
	}
	e.setOrigin(8, 13)
	if e.damage <= 0 {
		e.damage = 1
	}
	return e
}

// Damage returns the life points removed when the enemy touches the hero.
func (e *Enemy) Damage() int { return e.damage }

// Destructible is a liftable obstacle such as a bush or a pot.
type Destructible struct {
	Entity
	weight int
}

func newDestructible(def types.DestructibleDef) *Destructible {
	d := &Destructible{
		Entity: newEntity(def.Name, Layer(def.Layer), def.X-8, def.Y-13, 16, 16),
		weight: def.Weight,
	}
	d.setOrigin(8, 13)
	return d
}

// Weight returns the "lift" ability level required to lift this entity,
// or -1 if it cannot be lifted.
func (d *Destructible) Weight() int { return d.weight }

// Chest is an openable treasure container.
type Chest struct {
	Entity
	treasure string
	open     bool
}

func newChest(def types.ChestDef) *Chest {
	c := &Chest{
		Entity:   newEntity(def.Name, Layer(def.Layer), def.X, def.Y, 16, 16),
		treasure: def.Treasure,
		open:     def.Open,
	}
	c.setOrigin(0, 0)
	return c
}

// IsOpen reports whether the chest has already been opened.
func (c *Chest) IsOpen() bool { return c.open }

// Open opens the chest and returns its treasure name.
func (c *Chest) Open() string {
	c.open = true
	return c.treasure
}

// Block is a pushable block.
type Block struct {
	Entity
}

func newBlock(def types.BlockDef) *Block {
	b := &Block{Entity: newEntity(def.Name, Layer(def.Layer), def.X, def.Y, 16, 16)}
	b.setOrigin(0, 0)
	return b
}

// Separator splits the map into regions; crossing one is reported so the
// session layer can move the camera and reset the region.
type Separator struct {
	Entity
}

func newSeparator(def types.SeparatorDef) *Separator {
	w, h := def.Width, def.Height
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = 16
	}
	s := &Separator{Entity: newEntity(def.Name, Layer(def.Layer), def.X, def.Y, w, h)}
	s.setOrigin(0, 0)
	return s
}

// Crystal toggles crystal blocks when hit.
type Crystal struct {
	Entity
}

func newCrystal(def types.CrystalDef) *Crystal {
	c := &Crystal{Entity: newEntity(def.Name, Layer(def.Layer), def.X, def.Y, 16, 16)}
	c.setOrigin(0, 0)
	return c
}

// Bomb is a liftable bomb placed on the map.
type Bomb struct {
	Entity
}

func newBomb(def types.BombDef) *Bomb {
	b := &Bomb{Entity: newEntity(def.Name, Layer(def.Layer), def.X-8, def.Y-13, 16, 16)}
	b.setOrigin(8, 13)
	return b
}

// Explosion is a transient damage zone. It removes itself after its
// end date.
type Explosion struct {
	Entity
	endDate int64
}

// NewExplosion creates an explosion centered on (x, y) lasting the given
// number of virtual milliseconds from now.
func NewExplosion(layer Layer, x, y int, now, duration int64) *Explosion {
	e := &Explosion{
		Entity:  newEntity("", layer, x-16, y-16, 32, 32),
		endDate: now + duration,
	}
	e.setOrigin(16, 16)
	return e
}
