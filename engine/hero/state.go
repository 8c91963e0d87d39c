package hero

import "github.com/nathoo/actioncore/engine/world"

// Command is an abstract game command applied to the hero. The session
// layer maps real keys onto these.
type Command int

// The game commands.
const (
	CommandAction Command = iota
	CommandAttack
	CommandItem1
	CommandItem2
	CommandRight
	CommandUp
	CommandLeft
	CommandDown
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandAction:
		return "action"
	case CommandAttack:
		return "attack"
	case CommandItem1:
		return "item_1"
	case CommandItem2:
		return "item_2"
	case CommandRight:
		return "right"
	case CommandUp:
		return "up"
	case CommandLeft:
		return "left"
	case CommandDown:
		return "down"
	}
	return "unknown"
}

// State is one behavioral mode of the hero. Exactly one state is current
// at any instant. A state requests its own replacement by calling
// SetState on the hero; the hero detects and corrects transitions that
// race inside Start or Stop.
//
// The capability predicates tell the hero controller what the
// environment may currently do to him. The base state answers them
// conservatively; each concrete state overrides only what its behavior
// changes.
type State interface {
	Name() string

	// Start makes the state current. previous is nil for the first state.
	Start(previous State)
	// Stop retires the state. It must not leave the hero unable to
	// receive further calls before the state is discarded.
	Stop(next State)
	Update()
	SetSuspended(suspended bool)

	// Movement.
	CanControlMovement() bool
	WantedMovementDirection8() int
	NotifyMovementChanged()
	NotifyMovementFinished()
	NotifyObstacleReached()
	NotifyPositionChanged()
	NotifyLayerChanged()
	NotifyGroundChanged()
	NotifyWalkingSpeedChanged()

	// Commands.
	NotifyCommandPressed(c Command)
	NotifyCommandReleased(c Command)
	NotifyJumperActivated(j *world.Jumper)

	// Capabilities.
	IsFree() bool
	IsTouchingGround() bool
	AreCollisionsIgnored() bool
	CanComeFromBadGround() bool
	CanBeHurt() bool
	CanStartGameOver() bool
	CanTakeStairs() bool
	CanPickTreasure() bool
	CanStartItem() bool
	IsCarryingItem() bool
	IsDirectionLocked() bool

	CanAvoidDeepWater() bool
	CanAvoidHole() bool
	CanAvoidIce() bool
	CanAvoidLava() bool
	CanAvoidPrickle() bool
	CanAvoidTeletransporter() bool
	IsTeletransporterDelayed() bool
	CanAvoidConveyorBelt() bool
	CanAvoidStream(s *world.Stream) bool
	CanAvoidSensor() bool
	CanAvoidSwitch() bool
	CanAvoidExplosion() bool

	// Obstacle traits while this state is current.
	IsShallowWaterObstacle() bool
	IsDeepWaterObstacle() bool
	IsHoleObstacle() bool
	IsLavaObstacle() bool
	IsPrickleObstacle() bool
	IsLadderObstacle() bool
	IsTeletransporterObstacle(t *world.Teletransporter) bool
	IsConveyorBeltObstacle(c *world.ConveyorBelt) bool
	IsStairsObstacle(s *world.Stairs) bool
	IsSensorObstacle(s *world.Sensor) bool
	IsJumperObstacle(j *world.Jumper) bool
	IsSeparatorObstacle(s *world.Separator) bool
	IsStreamObstacle(s *world.Stream) bool
}

// baseState carries the conservative default answers. Concrete states
// embed it and override the few methods their behavior changes.
type baseState struct {
	hero      *Hero
	name      string
	suspended bool
}

func newBaseState(h *Hero, name string) baseState {
	return baseState{hero: h, name: name}
}

func (s *baseState) Name() string { return s.name }

func (s *baseState) Start(State) {}
func (s *baseState) Stop(State)  {}
func (s *baseState) Update()     {}

func (s *baseState) SetSuspended(suspended bool) { s.suspended = suspended }
func (s *baseState) IsSuspended() bool           { return s.suspended }

func (s *baseState) CanControlMovement() bool       { return false }
func (s *baseState) WantedMovementDirection8() int  { return -1 }
func (s *baseState) NotifyMovementChanged()         {}
func (s *baseState) NotifyMovementFinished()        {}
func (s *baseState) NotifyObstacleReached()         {}
func (s *baseState) NotifyPositionChanged()         {}
func (s *baseState) NotifyLayerChanged()            {}
func (s *baseState) NotifyGroundChanged()           {}
func (s *baseState) NotifyWalkingSpeedChanged()     {}
func (s *baseState) NotifyCommandPressed(Command)   {}
func (s *baseState) NotifyCommandReleased(Command)  {}
func (s *baseState) NotifyJumperActivated(*world.Jumper) {}

func (s *baseState) IsFree() bool               { return false }
func (s *baseState) IsTouchingGround() bool     { return true }
func (s *baseState) AreCollisionsIgnored() bool { return false }
func (s *baseState) CanComeFromBadGround() bool { return true }
func (s *baseState) CanBeHurt() bool            { return false }
func (s *baseState) CanStartGameOver() bool     { return true }
func (s *baseState) CanTakeStairs() bool        { return false }
func (s *baseState) CanPickTreasure() bool      { return false }
func (s *baseState) CanStartItem() bool         { return false }
func (s *baseState) IsCarryingItem() bool       { return false }
func (s *baseState) IsDirectionLocked() bool    { return false }

func (s *baseState) CanAvoidDeepWater() bool         { return false }
func (s *baseState) CanAvoidHole() bool              { return false }
func (s *baseState) CanAvoidIce() bool               { return false }
func (s *baseState) CanAvoidLava() bool              { return false }
func (s *baseState) CanAvoidPrickle() bool           { return false }
func (s *baseState) CanAvoidTeletransporter() bool   { return false }
func (s *baseState) IsTeletransporterDelayed() bool  { return false }
func (s *baseState) CanAvoidConveyorBelt() bool      { return false }
func (s *baseState) CanAvoidStream(*world.Stream) bool { return false }
func (s *baseState) CanAvoidSensor() bool            { return false }
func (s *baseState) CanAvoidSwitch() bool            { return false }
func (s *baseState) CanAvoidExplosion() bool         { return false }

func (s *baseState) IsShallowWaterObstacle() bool { return false }
func (s *baseState) IsDeepWaterObstacle() bool    { return false }
func (s *baseState) IsHoleObstacle() bool         { return false }
func (s *baseState) IsLavaObstacle() bool         { return false }
func (s *baseState) IsPrickleObstacle() bool      { return false }
func (s *baseState) IsLadderObstacle() bool       { return false }

func (s *baseState) IsTeletransporterObstacle(*world.Teletransporter) bool { return false }
func (s *baseState) IsConveyorBeltObstacle(*world.ConveyorBelt) bool       { return false }
func (s *baseState) IsStairsObstacle(*world.Stairs) bool                   { return false }
func (s *baseState) IsSensorObstacle(*world.Sensor) bool                   { return false }
func (s *baseState) IsJumperObstacle(*world.Jumper) bool                   { return false }
func (s *baseState) IsSeparatorObstacle(*world.Separator) bool             { return false }
func (s *baseState) IsStreamObstacle(*world.Stream) bool                   { return false }
