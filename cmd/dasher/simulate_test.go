package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

func TestSimulateWithoutJumpingLoses(t *testing.T) {
	res := simulate(config.DefaultDasherConfig(), simOptions{
		Duration: time.Minute,
		DT:       time.Second / 64,
	})

	if res.Outcome != core.OutcomeLost {
		t.Errorf("Outcome = %v, expected lost", res.Outcome)
	}
	if res.Ticks != 78 {
		t.Errorf("Ticks = %d, expected 78", res.Ticks)
	}
	if res.Jumps != 0 {
		t.Errorf("Jumps = %d, expected 0", res.Jumps)
	}
}

func TestSimulateStopsAtDuration(t *testing.T) {
	// The first nebula reaches the player after 78 ticks.
	res := simulate(config.DefaultDasherConfig(), simOptions{
		Duration: time.Second,
		DT:       time.Second / 64,
	})

	if res.Outcome != core.OutcomePlaying {
		t.Errorf("Outcome = %v, expected playing", res.Outcome)
	}
	if res.Ticks != 64 {
		t.Errorf("Ticks = %d, expected 64", res.Ticks)
	}
	if res.Elapsed != time.Second {
		t.Errorf("Elapsed = %v, expected 1s", res.Elapsed)
	}
}

func TestSimulateCountsJumps(t *testing.T) {
	res := simulate(config.DefaultDasherConfig(), simOptions{
		Duration:  time.Second / 2,
		DT:        time.Second / 64,
		JumpEvery: time.Second / 8,
	})

	if res.Jumps != 4 {
		t.Errorf("Jumps = %d, expected 4", res.Jumps)
	}
}
