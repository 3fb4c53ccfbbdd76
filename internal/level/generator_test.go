package level

import (
	"testing"

	"github.com/vovakirdan/biketrail/internal/config"
)

func TestCountsPerLevel(t *testing.T) {
	g := NewGenerator(config.DefaultBikeConfig(), 1)

	for n := 1; n <= 10; n++ {
		spec := g.Generate(n)
		wantHoles := clamp(3+int(float64(n)*0.6), 3, 12)
		wantRocks := clamp(6+n, 6, 30)

		if spec.HoleCount != wantHoles || len(spec.Holes) != wantHoles {
			t.Errorf("level %d: holes = %d (%d placed), expected %d", n, spec.HoleCount, len(spec.Holes), wantHoles)
		}
		if spec.ObstacleCount != wantRocks || len(spec.Obstacles) != wantRocks {
			t.Errorf("level %d: obstacles = %d (%d placed), expected %d", n, spec.ObstacleCount, len(spec.Obstacles), wantRocks)
		}
	}
}

func TestFirstAndLastLevelScenarios(t *testing.T) {
	g := NewGenerator(config.DefaultBikeConfig(), 7)

	first := g.Generate(1)
	if first.HoleCount != 3 || first.ObstacleCount != 7 {
		t.Errorf("level 1: holes=%d obstacles=%d, expected 3 and 7", first.HoleCount, first.ObstacleCount)
	}

	last := g.Generate(10)
	if last.HoleCount != 9 || last.ObstacleCount != 16 {
		t.Errorf("level 10: holes=%d obstacles=%d, expected 9 and 16", last.HoleCount, last.ObstacleCount)
	}
	if last.EndMarker != 2120 {
		t.Errorf("EndMarker = %v, expected 2120", last.EndMarker)
	}
	if last.Width != 2200 {
		t.Errorf("Width = %v, expected 2200", last.Width)
	}
}

func TestGenerateClampsLevelNumber(t *testing.T) {
	g := NewGenerator(config.DefaultBikeConfig(), 1)

	if got := g.Generate(0).Number; got != 1 {
		t.Errorf("Generate(0).Number = %d, expected 1", got)
	}
	if got := g.Generate(42).Number; got != 10 {
		t.Errorf("Generate(42).Number = %d, expected 10", got)
	}
}

func TestRegenerateKeepsEnvelope(t *testing.T) {
	g := NewGenerator(config.DefaultBikeConfig(), 99)

	for n := 1; n <= 10; n++ {
		a := g.Generate(n)
		b := g.Generate(n)
		if a.HoleCount != b.HoleCount || a.ObstacleCount != b.ObstacleCount {
			t.Errorf("level %d: counts differ between generations", n)
		}
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	cfg := config.DefaultBikeConfig()
	a := NewGenerator(cfg, 12345).Generate(6)
	b := NewGenerator(cfg, 12345).Generate(6)

	for i := range a.Holes {
		if a.Holes[i] != b.Holes[i] {
			t.Fatalf("hole %d differs: %+v vs %+v", i, a.Holes[i], b.Holes[i])
		}
	}
}

func checkHoles(t *testing.T, cfg config.BikeConfig, spec Spec) {
	t.Helper()
	clearLine := cfg.World.EndMarker() - cfg.World.ClearMargin

	for i, h := range spec.Holes {
		if h.Width < cfg.Holes.MinWidth || h.Width > cfg.Holes.MaxWidth {
			t.Errorf("level %d hole %d: width %v outside [%v, %v]", spec.Number, i, h.Width, cfg.Holes.MinWidth, cfg.Holes.MaxWidth)
		}
		if h.Center <= 0 || h.Center >= spec.Width || h.Left() < 0 {
			t.Errorf("level %d hole %d: center %v outside (0, %v)", spec.Number, i, h.Center, spec.Width)
		}
		if h.Right() > clearLine {
			t.Errorf("level %d hole %d: ends at %v, past the clear line %v", spec.Number, i, h.Right(), clearLine)
		}
		if i == 0 {
			continue
		}
		prev := spec.Holes[i-1]
		if prev.Center >= h.Center {
			t.Errorf("level %d: hole %d center %v not after hole %d center %v", spec.Number, i, h.Center, i-1, prev.Center)
		}
		if h.Left()-prev.Right() < cfg.Holes.MinGround {
			t.Errorf("level %d: holes %d and %d leave %v units of ground, expected >= %v",
				spec.Number, i-1, i, h.Left()-prev.Right(), cfg.Holes.MinGround)
		}
	}
}

func TestHolesOrderedAndDisjoint(t *testing.T) {
	cfg := config.DefaultBikeConfig()

	for seed := int64(0); seed < 200; seed++ {
		g := NewGenerator(cfg, seed)
		for n := 1; n <= 10; n++ {
			checkHoles(t, cfg, g.Generate(n))
		}
	}
}

func TestHolesStayInsideTheirWindows(t *testing.T) {
	cfg := config.DefaultBikeConfig()
	hc := cfg.Holes

	for seed := int64(0); seed < 500; seed++ {
		g := NewGenerator(cfg, seed)
		for n := 1; n <= 10; n++ {
			spec := g.Generate(n)
			count := len(spec.Holes)
			for i, h := range spec.Holes {
				lo := hc.StartOffset + float64(i)*hc.IndexStep
				hi := cfg.World.Width - hc.EndOffset - float64(count-i)*hc.TailStep
				if h.Center < lo || h.Center > hi {
					t.Fatalf("seed %d level %d hole %d: center %v outside window [%v, %v]",
						seed, n, i, h.Center, lo, hi)
				}
			}
		}
	}
}

func TestInvertedWindowsAreClamped(t *testing.T) {
	// A short level with many narrow holes: the last windows invert
	// (200+11*140 > 1800-200-80) but everything still fits.
	cfg := config.DefaultBikeConfig()
	cfg.World.Width = 1800
	cfg.Holes.MinWidth = 80
	cfg.Holes.MaxWidth = 80
	cfg.Holes.MinGround = 20
	cfg.Holes.Count = config.CountScaling{Base: 12, Min: 12, Max: 12}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config should be valid: %v", err)
	}

	for seed := int64(0); seed < 50; seed++ {
		spec := NewGenerator(cfg, seed).Generate(10)
		if len(spec.Holes) != 12 {
			t.Fatalf("placed %d holes, expected 12", len(spec.Holes))
		}
		checkHoles(t, cfg, spec)
	}
}

func TestObstaclesWithinBounds(t *testing.T) {
	cfg := config.DefaultBikeConfig()
	spec := NewGenerator(cfg, 3).Generate(10)

	for i, r := range spec.Obstacles {
		if r.X < 120 || r.X > 2080 {
			t.Errorf("rock %d: x %v outside [120, 2080]", i, r.X)
		}
		if r.W < 16 || r.W > 40 || r.H < 8 || r.H > 20 {
			t.Errorf("rock %d: size %vx%v out of range", i, r.W, r.H)
		}
		if r.Y+r.H/2 > spec.GroundTop {
			t.Errorf("rock %d: sinks below the ground", i)
		}
	}
}

func TestGroundSegmentsSkipHoles(t *testing.T) {
	spec := Spec{
		Width: 1000,
		Holes: []Hole{{Center: 300, Width: 100}, {Center: 600, Width: 80}},
	}

	got := spec.GroundSegments()
	want := []Segment{{0, 250}, {350, 560}, {640, 1000}}
	if len(got) != len(want) {
		t.Fatalf("GroundSegments() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	if _, ok := spec.HoleAt(320); !ok {
		t.Error("HoleAt(320) should find the first hole")
	}
	if _, ok := spec.HoleAt(400); ok {
		t.Error("HoleAt(400) should be solid ground")
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
