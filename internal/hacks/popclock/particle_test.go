package popclock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixmas/internal/core"
)

func noObstacles(x, y int) bool { return false }

func TestStepPanicsOnInactiveParticle(t *testing.T) {
	var p Particle
	require.Panics(t, func() { p.Step(noObstacles) })
}

func TestGravityClampsToTerminalVelocity(t *testing.T) {
	p := Particle{Active: true, X: 10, Y: 10, TV: 0.3}
	for i := 0; i < 100; i++ {
		p.Step(noObstacles)
	}
	assert.InDelta(t, 0.3, p.DY, 1e-9, "DY accelerates up to terminal and no further")
}

func TestPopKeepsVelocityWithinTerminal(t *testing.T) {
	rng := core.NewRNG(42)
	for i := 0; i < 1000; i++ {
		var p Particle
		p.pop(rng, 5, 5, core.Pack(255, 255, 255))
		require.True(t, p.Active)
		require.LessOrEqual(t, math.Abs(p.DX), p.TV)
		require.LessOrEqual(t, math.Abs(p.DY), p.TV)
		require.GreaterOrEqual(t, p.TV, 0.3)
		require.Less(t, p.TV, 1.0)
	}
}

func TestHorizontalBounceReversesAndDampens(t *testing.T) {
	wall := func(x, y int) bool { return x >= 10 }
	p := Particle{Active: true, X: 9.5, Y: 5, DX: 0.8, TV: 1}

	active := p.Step(wall)
	assert.True(t, active)
	assert.InDelta(t, -0.8*elasticity, p.DX, 1e-9, "DX reverses scaled by restitution")
	assert.InDelta(t, 9.5, p.X, 1e-9, "blocked axis does not advance")
}

func TestVerticalBounceAppliesFloorFriction(t *testing.T) {
	floor := func(x, y int) bool { return y >= 10 }
	p := Particle{Active: true, X: 5, Y: 9.5, DX: 0.6, DY: 0.9, TV: 1}

	p.Step(floor)
	assert.InDelta(t, 0.6*friction, p.DX, 1e-9, "DX damped so it doesn't slide forever")
	assert.InDelta(t, 9.5, p.Y, 1e-9)
	// DY reversed by restitution, then gravity pulls back down a step.
	assert.InDelta(t, -0.9*elasticity+gravity, p.DY, 1e-9)
}

func TestSettleNeedsAllThreeConditions(t *testing.T) {
	floor := func(x, y int) bool { return y >= 10 }

	// Slow, resting on the floor, moving freely: settles.
	p := Particle{Active: true, X: 5, Y: 9.5, DX: 0.05, DY: 0.05, TV: 0.3}
	assert.False(t, p.Step(floor), "slow particle on the floor settles")

	// Slow but with open space below: stays alive so gravity can win.
	p = Particle{Active: true, X: 5, Y: 5, DX: 0.05, DY: 0.05, TV: 0.3}
	assert.True(t, p.Step(floor), "mid-air particle must not freeze")

	// Fast particle on the floor keeps bouncing.
	p = Particle{Active: true, X: 5, Y: 9.5, DX: 0.9, DY: 0.9, TV: 1}
	assert.True(t, p.Step(floor))
}

func TestPoolSpawnAlwaysSucceeds(t *testing.T) {
	var pool Pool
	for i := 0; i < 10000; i++ {
		idx := pool.Spawn()
		require.Equal(t, i, idx)
	}
	assert.Equal(t, 10000, pool.Len())
	assert.True(t, pool.HasLive())
}

func TestPoolCompactionPolicy(t *testing.T) {
	var pool Pool
	rng := core.NewRNG(7)
	for i := 0; i < 300; i++ {
		p := pool.At(pool.Spawn())
		p.pop(rng, 1, 1, core.Pack(1, 1, 1))
	}
	for i := 0; i < 300; i++ {
		if i%10 != 0 {
			pool.At(i).stop()
		}
	}

	// 30 live of 300: sparse enough to compact.
	pool.maybeCompact(30)
	assert.Equal(t, 30, pool.Len(), "dead entries removed")
	for i := 0; i < pool.Len(); i++ {
		assert.True(t, pool.At(i).Active)
	}

	// Below the threshold the arena is left alone however sparse.
	small := Pool{}
	for i := 0; i < 100; i++ {
		small.Spawn()
	}
	small.maybeCompact(0)
	assert.Equal(t, 100, small.Len())
}
