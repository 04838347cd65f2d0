package snowclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixmas/internal/core"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Width = 120
	c.Height = 56
	c.Seed = 1
	return c
}

func at(h, m, s int) time.Time {
	return time.Date(2024, 12, 24, h, m, s, 0, time.UTC)
}

func TestNewPropagatesLayoutError(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 10
	cfg.Height = 10
	_, err := New(cfg)
	require.Error(t, err)
}

func TestFlakesStayInTheUniverse(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)

	check := func(when string) {
		for i := range sc.flakes {
			f := &sc.flakes[i]
			if f.x < 0 || f.x >= sc.w || f.y < 0 || f.y >= sc.h {
				t.Fatalf("%s: flake %d at (%d,%d) outside %dx%d", when, i, f.x, f.y, sc.w, sc.h)
			}
			if f.mass == 0 {
				t.Fatalf("%s: flake %d has no mass", when, i)
			}
		}
	}
	check("after New")

	now := at(5, 30, 0)
	for tick := 0; tick < 300; tick++ {
		sc.Simulate(now.Add(time.Duration(tick) * 100 * time.Millisecond))
	}
	check("after simulation")
}

func TestSnowAccumulatesOverTime(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)

	now := at(5, 30, 0)
	for tick := 0; tick < 600; tick++ {
		sc.Simulate(now.Add(time.Duration(tick) * 100 * time.Millisecond))
	}
	assert.Greater(t, totalSnow(sc.snow, sc.w, sc.h), 0, "landed flakes leave mass behind")

	// Lit glyph interiors melt whatever reaches them every tick.
	r := sc.clock.Digit(0).SegRect[2] // every digit shows a lit top-right
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	require.True(t, sc.clock.SolidAt(cx, cy))
	assert.Equal(t, uint8(0), sc.snow.Get(cx, cy))
}

func TestDropoutDrainsTheBottomRow(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)
	for x := 0; x < sc.w; x++ {
		sc.snow.Set(x, sc.h-1, 200)
	}
	// Park the flakes so nothing deposits during the tick under test.
	sc.tick = 1
	for i := range sc.flakes {
		sc.flakes[i].y = 0
		sc.flakes[i].delayX = 1 << 20
		sc.flakes[i].delayY = 1 << 20
	}

	sc.Simulate(at(6, 0, 1))
	for x := 0; x < sc.w; x++ {
		assert.Equal(t, uint8(0), sc.snow.Get(x, sc.h-1), "column %d", x)
	}
}

func TestWantRenderAlwaysAfterSimulate(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)

	require.True(t, sc.WantRender())
	sc.Render(core.NewFrame(sc.w, sc.h))
	require.False(t, sc.WantRender())

	sc.Simulate(at(5, 30, 0))
	assert.True(t, sc.WantRender(), "flakes are always in motion")
}

func TestRenderGreyRamp(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)
	sc.Simulate(at(11, 11, 30))
	sc.snow.Set(2, sc.h-1, 128)

	f := core.NewFrame(sc.w, sc.h)
	sc.Render(f)

	r, g, b, _ := f.PixelAt(2, sc.h-1).RGBA8()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
	assert.GreaterOrEqual(t, r, uint8(128), "settled mass shades grey, flakes only brighten it")
}

func TestResetClearsSnowAndBreezes(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)
	now := at(5, 30, 0)
	for tick := 0; tick < 100; tick++ {
		sc.Simulate(now.Add(time.Duration(tick) * 100 * time.Millisecond))
	}

	sc.Reset(99)

	assert.Equal(t, 0, totalSnow(sc.snow, sc.w, sc.h))
	assert.Equal(t, uint(0), sc.tick)
	for y := 0; y < sc.h; y++ {
		assert.Equal(t, 0, sc.breezeSign[y], "row %d", y)
	}
	for i := range sc.flakes {
		f := &sc.flakes[i]
		require.GreaterOrEqual(t, f.y, 0)
		require.Less(t, f.y, sc.h)
	}
}

func TestResetAtTopRespawnsWithFreshState(t *testing.T) {
	sc, err := New(testConfig())
	require.NoError(t, err)

	var f Snowflake
	for i := 0; i < 100; i++ {
		f.resetAtTop(sc)
		require.Equal(t, 0, f.y)
		require.GreaterOrEqual(t, f.x, 0)
		require.Less(t, f.x, sc.w)
		require.NotZero(t, f.mass)
		require.NotZero(t, f.delayX)
		require.NotZero(t, f.delayY)
		require.GreaterOrEqual(t, f.delayT, uint(1))
		require.LessOrEqual(t, f.delayT, uint(11), "heavier flakes fall faster")
	}
}

func TestFromMapOverridesAndDefaults(t *testing.T) {
	c := FromMap(nil)
	assert.Equal(t, DefaultConfig(), c)

	c = FromMap(map[string]string{"w": "320", "h": "200", "seed": "42", "hue": "true"})
	assert.Equal(t, 320, c.Width)
	assert.Equal(t, 200, c.Height)
	assert.Equal(t, int64(42), c.Seed)
	assert.True(t, c.HueCycle)
}
