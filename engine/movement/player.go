package movement

import "github.com/nathoo/actioncore/engine/clock"

// Intent supplies the direction the player currently wants to move in,
// typically derived from the pressed directional commands.
type Intent interface {
	// WantedDirection8 returns the wanted 8-way direction, or -1 when no
	// direction is wanted.
	WantedDirection8() int
}

// Player is a straight movement steered every tick by an Intent. The
// controlling state sets the moving speed; releasing all directional
// commands stops the body on the spot.
type Player struct {
	*Straight
	intent      Intent
	movingSpeed float64
}

// NewPlayer creates a player movement. It is stopped until the intent
// wants a direction and a moving speed is set.
func NewPlayer(c clock.Source, body Body, intent Intent) *Player {
	return &Player{Straight: NewStraight(c, body), intent: intent}
}

// MovingSpeed returns the speed applied while a direction is wanted.
func (p *Player) MovingSpeed() float64 { return p.movingSpeed }

// SetMovingSpeed changes the speed applied while moving. An ongoing move
// adopts it immediately.
func (p *Player) SetMovingSpeed(speed float64) {
	p.movingSpeed = speed
	if p.IsStarted() {
		p.SetSpeed(speed)
	}
}

// Update re-reads the intent, then applies the due steps.
func (p *Player) Update() {
	wanted := p.intent.WantedDirection8()
	if wanted != p.Direction8() {
		if wanted == -1 {
			p.Stop()
		} else {
			p.SetDirection8(wanted)
			p.SetSpeed(p.movingSpeed)
		}
		p.body.NotifyMovementChanged()
	}
	p.Straight.Update()
}
