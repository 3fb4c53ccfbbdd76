package trail

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Level         int
	Phase         string
	Reason        string
	TimeRemaining float64
	Score         int
	Cleared       int
	BikeX         float64
	BikeY         float64
	CameraX       float64
	HoleCenters   []float64
}

// Snapshot returns the current game snapshot for determinism verification.
// A game that has not been reset yet returns the zero Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	if s == nil {
		return Snapshot{}
	}
	rs := s.Run()

	holes := make([]float64, 0, len(s.Level().Holes))
	for _, h := range s.Level().Holes {
		holes = append(holes, h.Center)
	}

	return Snapshot{
		Tick:          s.Ticks(),
		Level:         rs.Level,
		Phase:         rs.Phase.String(),
		Reason:        rs.Reason.String(),
		TimeRemaining: rs.TimeRemaining,
		Score:         rs.Score,
		Cleared:       rs.Cleared,
		BikeX:         s.Bike().X,
		BikeY:         s.Bike().Y,
		CameraX:       s.Camera().X,
		HoleCenters:   holes,
	}
}
