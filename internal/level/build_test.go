package level

import (
	"testing"

	"github.com/vovakirdan/biketrail/internal/config"
	"github.com/vovakirdan/biketrail/internal/physics"
)

func TestBuildPlacesCollidersAndSensors(t *testing.T) {
	cfg := config.DefaultBikeConfig()
	spec := NewGenerator(cfg, 5).Generate(4)
	world := physics.NewWorld(physics.Bounds{}, cfg.Physics.Gravity)

	bike := Build(world, spec, cfg.Player)

	if got, want := len(world.Statics()), len(spec.GroundSegments()); got != want {
		t.Errorf("statics = %d, expected one per ground segment (%d)", got, want)
	}
	wantSensors := spec.HoleCount + spec.ObstacleCount + 1
	if got := len(world.Sensors()); got != wantSensors {
		t.Errorf("sensors = %d, expected %d", got, wantSensors)
	}

	flags := 0
	for _, s := range world.Sensors() {
		if s.Kind == physics.KindFlag {
			flags++
			if s.X != spec.EndMarker {
				t.Errorf("flag at x=%v, expected %v", s.X, spec.EndMarker)
			}
		}
	}
	if flags != 1 {
		t.Errorf("found %d flags, expected 1", flags)
	}

	if bike.X != 120 || bike.Y != 380 {
		t.Errorf("bike at (%v, %v), expected (120, 380)", bike.X, bike.Y)
	}
	if !bike.CollideWorldBounds {
		t.Error("bike should collide with world bounds")
	}
	if world.Bounds.W != 2200 || world.Bounds.H != 500 {
		t.Errorf("bounds = %+v, expected 2200x500", world.Bounds)
	}
}

func TestBikeLandsAtStart(t *testing.T) {
	cfg := config.DefaultBikeConfig()

	for seed := int64(0); seed < 50; seed++ {
		spec := NewGenerator(cfg, seed).Generate(10)
		world := physics.NewWorld(physics.Bounds{}, cfg.Physics.Gravity)
		bike := Build(world, spec, cfg.Player)

		for i := 0; i < 60; i++ {
			world.Step(1.0 / 60.0)
		}
		if !bike.Grounded() {
			t.Fatalf("seed %d: bike should land on the ground at the start point", seed)
		}
	}
}
