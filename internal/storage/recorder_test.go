package storage

import (
	"testing"

	"github.com/vovakirdan/star-defender/internal/core"
)

func over(score, tick int) core.StepResult {
	return core.StepResult{
		State:  core.GameState{Phase: core.PhaseGameOver, Score: score, Tick: tick},
		Events: []core.Event{{Kind: core.EventGameOver}},
	}
}

func TestRecorderSavesOncePerRun(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "normal", "ace", nil)

	playing := core.StepResult{State: core.GameState{Phase: core.PhasePlaying, Score: 20}}
	if rec.Observe(playing) {
		t.Error("nothing should be saved mid-run")
	}
	if !rec.Observe(over(20, 90)) {
		t.Fatal("expected the finished run to be saved")
	}
	if rec.Observe(over(20, 90)) {
		t.Error("the same run was saved twice")
	}

	// A new run re-arms the recorder
	rec.Observe(core.StepResult{
		State:  core.GameState{Phase: core.PhasePlaying},
		Events: []core.Event{{Kind: core.EventStart}},
	})
	if !rec.Observe(over(40, 120)) {
		t.Error("expected the second run to be saved")
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 40 || scores[0].Player != "ace" || scores[0].Ticks != 120 {
		t.Errorf("unexpected stored scores: %+v", scores)
	}
	if rec.Best() != 40 {
		t.Errorf("Best() = %d, want 40", rec.Best())
	}
}

func TestRecorderSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "", "", nil)

	if rec.Observe(over(0, 50)) {
		t.Error("zero-score run should not be saved")
	}
	if rec.Mode() != "default" {
		t.Errorf("Mode() = %q, want default", rec.Mode())
	}
}

func TestRecorderLoadsBestAndWorksWithoutStore(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "hard", 70)

	if best := NewRecorder(store, "hard", "", nil).Best(); best != 70 {
		t.Errorf("Best() = %d, want 70 from the store", best)
	}

	rec := NewRecorder(nil, "hard", "", nil)
	if rec.Observe(over(30, 10)) {
		t.Error("nothing can be saved without a store")
	}
	if rec.Best() != 30 {
		t.Errorf("Best() = %d, want 30", rec.Best())
	}
}
