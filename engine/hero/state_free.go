package hero

import (
	"github.com/nathoo/actioncore/engine/ground"
	"github.com/nathoo/actioncore/engine/movement"
	"github.com/nathoo/actioncore/engine/world"
)

// playerMovementState is the common part of the states where the player
// steers the hero directly (free, carrying, swimming). It installs a
// player movement on start and removes it on stop; the hero re-reads the
// wanted direction from the commands every tick through it.
type playerMovementState struct {
	baseState
}

func (s *playerMovementState) Start(State) {
	h := s.hero
	m := movement.NewPlayer(envClock{h.env}, h, h)
	m.SetMovingSpeed(float64(h.WalkingSpeed()))
	h.SetMovement(m)
}

func (s *playerMovementState) Stop(State) {
	s.hero.ClearMovement()
}

func (s *playerMovementState) CanControlMovement() bool { return true }

func (s *playerMovementState) WantedMovementDirection8() int {
	if s.suspended {
		return -1
	}
	return s.hero.Env().Commands().WantedDirection8()
}

func (s *playerMovementState) NotifyWalkingSpeedChanged() {
	if m, ok := s.hero.Movement().(*movement.Player); ok {
		m.SetMovingSpeed(float64(s.hero.WalkingSpeed()))
	}
}

// Free is the default state: the hero walks around and interacts with
// what he faces.
type Free struct {
	playerMovementState
}

// NewFree creates the free state.
func NewFree(h *Hero) *Free {
	return &Free{playerMovementState{newBaseState(h, "free")}}
}

func (s *Free) IsFree() bool          { return true }
func (s *Free) CanBeHurt() bool       { return true }
func (s *Free) CanTakeStairs() bool   { return true }
func (s *Free) CanPickTreasure() bool { return true }
func (s *Free) CanStartItem() bool    { return true }

func (s *Free) NotifyJumperActivated(j *world.Jumper) {
	s.hero.StartJumping(j.Direction(), j.JumpLength(), true)
}

func (s *Free) NotifyCommandPressed(c Command) {
	h := s.hero
	switch c {
	case CommandAction:
		s.applyActionEffect()

	case CommandAttack:
		if h.Env().Equipment().HasAbility("run") {
			h.StartRunning(c)
		}

	case CommandItem1:
		if h.Env().Equipment().HasAbility("boomerang") {
			h.StartBoomerang()
		}

	case CommandItem2:
		if h.Env().Equipment().HasAbility("bow") {
			h.StartBow()
		}
	}
}

func (s *Free) applyActionEffect() {
	h := s.hero
	switch h.ActionEffect() {
	case ActionOpen:
		if chest, ok := h.FacingEntity().(*world.Chest); ok && !chest.IsOpen() {
			h.StartTreasure(chest.Open())
		}

	case ActionGrab:
		h.StartGrabbing()

	case ActionLift:
		switch e := h.FacingEntity().(type) {
		case *world.Destructible:
			if h.Env().Equipment().HasAbility("lift") || e.Weight() == 0 {
				h.Env().Map().RemoveEntity(e)
				h.StartLifting(e.Name())
			}
		case *world.Bomb:
			h.Env().Map().RemoveEntity(e)
			h.StartLifting(e.Name())
		}
	}
}

// Carrying is the free state with an item held over the head. Walking,
// stairs and terrain work as in Free; the action command throws the
// carried item.
type Carrying struct {
	playerMovementState
	carried string
}

// NewCarrying creates the carrying state; carried names the held item.
func NewCarrying(h *Hero, carried string) *Carrying {
	return &Carrying{
		playerMovementState: playerMovementState{newBaseState(h, "carrying")},
		carried:             carried,
	}
}

// CarriedItem returns the name of the held item.
func (s *Carrying) CarriedItem() string { return s.carried }

func (s *Carrying) IsCarryingItem() bool { return true }
func (s *Carrying) CanBeHurt() bool      { return true }
func (s *Carrying) CanTakeStairs() bool  { return true }

func (s *Carrying) NotifyJumperActivated(j *world.Jumper) {
	s.hero.StartJumping(j.Direction(), j.JumpLength(), true)
}

func (s *Carrying) NotifyCommandPressed(c Command) {
	if c == CommandAction {
		// Throw the carried item away.
		s.hero.StartFree()
	}
}

// Swimming is the player-controlled state in deep water, at a reduced
// speed. Leaving deep water returns control to the walking states.
type Swimming struct {
	playerMovementState
}

// NewSwimming creates the swimming state.
func NewSwimming(h *Hero) *Swimming {
	return &Swimming{playerMovementState{newBaseState(h, "swimming")}}
}

func (s *Swimming) Start(previous State) {
	s.hero.SetWalkingSpeed(s.hero.NormalWalkingSpeed() / 2)
	s.playerMovementState.Start(previous)
}

func (s *Swimming) Stop(next State) {
	s.playerMovementState.Stop(next)
	s.hero.SetWalkingSpeed(s.hero.NormalWalkingSpeed())
}

func (s *Swimming) CanBeHurt() bool         { return true }
func (s *Swimming) CanAvoidDeepWater() bool { return true }

func (s *Swimming) NotifyGroundChanged() {
	if s.hero.GroundBelow() != ground.DeepWater {
		s.hero.StartFreeOrCarrying()
	}
}
