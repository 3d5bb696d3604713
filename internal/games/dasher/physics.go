package dasher

// Physics holds the jump constants, in pixels and seconds.
type Physics struct {
	Gravity      float64 // Downward acceleration, px/s²
	JumpVelocity float64 // Upward speed given by a jump, px/s
}

// Player is the runner controlled by the jump key.
type Player struct {
	Sprite   AnimFrame
	Velocity float64 // Vertical velocity, px/s; negative is up
	Airborne bool
}

// OnGround reports whether the player's bottom edge is at or below groundY.
func (p Player) OnGround(groundY float64) bool {
	return p.Sprite.Pos.Y >= groundY-p.Sprite.Source.H
}

// StepPlayer integrates one tick of vertical motion.
//
// A grounded player has its velocity zeroed; an airborne one accelerates by
// gravity. A jump is accepted only when the ground test of this tick found
// the player grounded, and no gravity is applied on that tick.
func StepPlayer(p Player, dt float64, phys Physics, groundY float64, jump bool) Player {
	if p.OnGround(groundY) {
		p.Velocity = 0
		p.Airborne = false
	} else {
		p.Velocity += phys.Gravity * dt
		p.Airborne = true
	}

	if jump && !p.Airborne {
		p.Velocity -= phys.JumpVelocity
	}

	p.Sprite.Pos.Y += p.Velocity * dt
	return p
}
