package trail

import "testing"

func TestRunStateStart(t *testing.T) {
	tests := []struct {
		name      string
		rs        RunState
		wantOK    bool
		wantLevel int
		wantScore int
	}{
		{"idle", NewRunState(1, 10, 60), true, 1, 0},
		{"retry keeps level and score", RunState{StartLevel: 1, LastLevel: 10, Level: 4, Phase: PhaseLevelFailed, Reason: ReasonFell, Score: 900}, true, 4, 900},
		{"restart begins a new run", RunState{StartLevel: 2, LastLevel: 10, Level: 10, Phase: PhaseGameComplete, Score: 5000, Cleared: 9}, true, 2, 0},
		{"already playing", RunState{Level: 3, Phase: PhasePlaying, TimeRemaining: 12}, false, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rs.Start(60)
			if ok != tt.wantOK {
				t.Fatalf("Start() ok = %v, expected %v", ok, tt.wantOK)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, expected %d", got.Level, tt.wantLevel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, expected %d", got.Score, tt.wantScore)
			}
			if !ok {
				return
			}
			if got.Phase != PhasePlaying || got.Reason != ReasonNone {
				t.Errorf("phase = %v/%v, expected playing/none", got.Phase, got.Reason)
			}
			if got.TimeRemaining != 60 || got.Elapsed != 0 {
				t.Errorf("timer = %v (elapsed %v), expected a fresh 60s", got.TimeRemaining, got.Elapsed)
			}
		})
	}
}

func TestRunStateClear(t *testing.T) {
	rs := RunState{StartLevel: 1, LastLevel: 10, Level: 3, Phase: PhasePlaying, TimeRemaining: 12.2, Elapsed: 47.8}

	next, bonus := rs.Clear(60)
	if bonus != 230 {
		t.Errorf("bonus = %d, expected 230", bonus)
	}
	if next.Level != 4 || next.Phase != PhasePlaying {
		t.Errorf("after clear: level %d phase %v, expected level 4 playing", next.Level, next.Phase)
	}
	if next.TimeRemaining != 60 || next.Elapsed != 0 {
		t.Errorf("timer not reset: %v / %v", next.TimeRemaining, next.Elapsed)
	}
	if next.Cleared != 1 || next.Score != 230 {
		t.Errorf("cleared=%d score=%d, expected 1 and 230", next.Cleared, next.Score)
	}

	last := RunState{StartLevel: 1, LastLevel: 10, Level: 10, Phase: PhasePlaying, TimeRemaining: 1}
	done, _ := last.Clear(60)
	if done.Phase != PhaseGameComplete {
		t.Errorf("clearing the last level: phase %v, expected game_complete", done.Phase)
	}
	if done.Level != 10 {
		t.Errorf("Level = %d, expected it to stay at 10", done.Level)
	}
}

func TestRunStateFailAndPause(t *testing.T) {
	rs, _ := NewRunState(1, 10, 60).Start(60)

	paused := rs.TogglePause()
	if !paused.Paused || paused.IsRunning() {
		t.Error("toggling pause while playing should pause the run")
	}
	if paused.TogglePause().Paused {
		t.Error("toggling again should resume")
	}

	failed := paused.Fail(ReasonTimeout)
	if failed.Phase != PhaseLevelFailed || failed.Reason != ReasonTimeout {
		t.Errorf("Fail: %v/%v, expected level_failed/timeout", failed.Phase, failed.Reason)
	}
	if failed.Paused {
		t.Error("a failed run should not stay paused")
	}
	if failed.TogglePause().Paused {
		t.Error("a failed run cannot be paused")
	}
	if again := failed.Fail(ReasonFell); again.Reason != ReasonTimeout {
		t.Error("a failed run cannot fail twice")
	}
}

func TestClearBonus(t *testing.T) {
	tests := []struct {
		timeLeft float64
		want     int
	}{
		{60, 700},
		{0.1, 110},
		{0, 100},
		{-3, 100},
	}
	for _, tt := range tests {
		if got := ClearBonus(tt.timeLeft); got != tt.want {
			t.Errorf("ClearBonus(%v) = %d, expected %d", tt.timeLeft, got, tt.want)
		}
	}
}

func TestStatusOf(t *testing.T) {
	if _, ok := StatusOf(NewRunState(1, 10, 60)).(StatusIdle); !ok {
		t.Error("new run should be idle")
	}

	playing := StatusOf(RunState{Phase: PhasePlaying, Level: 2, TimeRemaining: 41.3})
	if s, ok := playing.(StatusPlaying); !ok || s.Level != 2 || s.TimeLeft != 41.3 {
		t.Errorf("playing status = %#v", playing)
	}

	failed := StatusOf(RunState{Phase: PhaseLevelFailed, Level: 5, Reason: ReasonFell})
	if s, ok := failed.(StatusFailed); !ok || s.Level != 5 || s.Reason != ReasonFell {
		t.Errorf("failed status = %#v", failed)
	}

	if _, ok := StatusOf(RunState{Phase: PhaseGameComplete}).(StatusComplete); !ok {
		t.Error("complete run should report StatusComplete")
	}

	// The four states must read differently
	texts := map[string]bool{}
	for _, s := range []Status{StatusIdle{}, playing, failed, StatusComplete{Levels: 10}} {
		texts[s.String()] = true
	}
	if len(texts) != 4 {
		t.Errorf("status texts are not distinguishable: %v", texts)
	}
}
