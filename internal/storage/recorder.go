package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/core"
)

// Saver is the part of Store a Recorder writes to.
type Saver interface {
	SaveScore(e ScoreEntry) (int64, error)
	HighScore(mode string) (int, error)
}

// Recorder watches step results and saves each finished run exactly once.
// Runs that end with zero points are not recorded.
type Recorder struct {
	store  Saver
	mode   string
	player string
	logger *log.Logger
	saved  bool
	best   int
}

// NewRecorder creates a recorder filing scores under mode. store may be nil,
// in which case only the in-memory best score is tracked.
func NewRecorder(store Saver, mode, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if mode == "" {
		mode = "default"
	}
	r := &Recorder{store: store, mode: mode, player: player, logger: logger}
	r.Refresh()
	return r
}

// Observe inspects one step. It returns true when this step's run was saved.
func (r *Recorder) Observe(res core.StepResult) bool {
	if res.Has(core.EventStart) {
		r.saved = false
	}
	if !res.State.GameOver() || r.saved {
		return false
	}
	r.saved = true

	score := res.State.Score
	if score > r.best {
		r.best = score
	}
	if r.store == nil || score == 0 {
		return false
	}

	_, err := r.store.SaveScore(ScoreEntry{
		Mode:   r.mode,
		Player: r.player,
		Score:  score,
		Ticks:  res.State.Tick,
	})
	if err != nil {
		r.logger.Error("could not save score", "score", score, "error", err)
		return false
	}
	r.logger.Info("score saved", "mode", r.mode, "player", r.player, "score", score)
	return true
}

// Refresh reloads the best score from the store.
func (r *Recorder) Refresh() {
	if r.store == nil {
		return
	}
	high, err := r.store.HighScore(r.mode)
	if err != nil {
		r.logger.Warn("could not load high score", "mode", r.mode, "error", err)
		return
	}
	r.best = max(r.best, high)
}

// Best returns the highest score seen for the mode.
func (r *Recorder) Best() int {
	return r.best
}

// Mode returns the mode scores are filed under.
func (r *Recorder) Mode() string {
	return r.mode
}
