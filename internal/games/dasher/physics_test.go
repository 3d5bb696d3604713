package dasher

import (
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

const (
	testGround = 380.0
	testDT     = 1.0 / 64.0
)

var testPhysics = Physics{Gravity: 1000, JumpVelocity: 600}

func groundedPlayer() Player {
	return Player{
		Sprite: AnimFrame{
			Source: core.NewRectF(0, 0, 128, 128),
			Pos:    core.Vec2{X: 192, Y: testGround - 128},
		},
	}
}

func TestStepPlayerJumpFromGround(t *testing.T) {
	p := StepPlayer(groundedPlayer(), testDT, testPhysics, testGround, true)

	if p.Velocity != -600 {
		t.Errorf("Velocity = %v, expected -600", p.Velocity)
	}
	if p.Airborne {
		t.Error("the jump tick itself is still grounded")
	}
	if want := testGround - 128 - 600*testDT; p.Sprite.Pos.Y != want {
		t.Errorf("Pos.Y = %v, expected %v", p.Sprite.Pos.Y, want)
	}

	p = StepPlayer(p, testDT, testPhysics, testGround, false)
	if !p.Airborne {
		t.Error("player should be airborne after leaving the ground")
	}
	if want := -600 + 1000*testDT; p.Velocity != want {
		t.Errorf("Velocity = %v, expected %v", p.Velocity, want)
	}
}

func TestStepPlayerStandingStill(t *testing.T) {
	p := StepPlayer(groundedPlayer(), testDT, testPhysics, testGround, false)
	if p.Velocity != 0 || p.Airborne {
		t.Errorf("grounded player without jump should rest, got %+v", p)
	}
	if p.Sprite.Pos.Y != testGround-128 {
		t.Errorf("Pos.Y = %v, expected to stay on the ground", p.Sprite.Pos.Y)
	}
}

func TestStepPlayerGravityAccumulates(t *testing.T) {
	p := groundedPlayer()
	p.Sprite.Pos.Y = 0 // Far above the ground

	prev := p.Velocity
	for i := 0; i < 20; i++ {
		p = StepPlayer(p, testDT, testPhysics, testGround, false)
		if !p.Airborne {
			t.Fatalf("step %d: player should still be airborne", i)
		}
		if d := p.Velocity - prev; d != testPhysics.Gravity*testDT {
			t.Fatalf("step %d: velocity grew by %v, expected %v", i, d, testPhysics.Gravity*testDT)
		}
		prev = p.Velocity
	}
}

func TestStepPlayerNoDoubleJump(t *testing.T) {
	p := groundedPlayer()
	p.Sprite.Pos.Y = 100
	p.Velocity = -200
	p.Airborne = true

	p = StepPlayer(p, testDT, testPhysics, testGround, true)
	if want := -200 + 1000*testDT; p.Velocity != want {
		t.Errorf("mid-air jump should be ignored, Velocity = %v, expected %v", p.Velocity, want)
	}
}

func TestStepPlayerLanding(t *testing.T) {
	p := groundedPlayer()
	p.Sprite.Pos.Y = testGround - 128 + 3 // Sunk slightly after a fall
	p.Velocity = 400
	p.Airborne = true

	p = StepPlayer(p, testDT, testPhysics, testGround, false)
	if p.Airborne || p.Velocity != 0 {
		t.Errorf("player below the ground line should land, got %+v", p)
	}
	if p.Sprite.Pos.Y != testGround-128+3 {
		t.Errorf("landing does not move the player, Pos.Y = %v", p.Sprite.Pos.Y)
	}
}

func TestOnGround(t *testing.T) {
	p := groundedPlayer()
	if !p.OnGround(testGround) {
		t.Error("bottom edge on the ground line counts as grounded")
	}
	p.Sprite.Pos.Y -= 0.001
	if p.OnGround(testGround) {
		t.Error("bottom edge above the ground line is airborne")
	}
}
