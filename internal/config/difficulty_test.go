package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); !approx(got, tc.want) {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 200},
	})
	if got := d.Level(9999, 100); !approx(got, 0.5) {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(100, 100); got != 0.4 {
		t.Errorf("disabled Level = %v, expected initial 0.4", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("SetInitialLevel should clamp, got %v", got)
	}
}

func TestSpawnInterval(t *testing.T) {
	spawn := SpawnConfig{Interval: 30, MinInterval: 10, IntervalReduction: 20}
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if got := d.SpawnInterval(spawn, 0, 0); got != 30 {
		t.Errorf("interval at level 0 = %d, expected 30", got)
	}
	if got := d.SpawnInterval(spawn, 50, 0); got != 20 {
		t.Errorf("interval at level 0.5 = %d, expected 20", got)
	}
	if got := d.SpawnInterval(spawn, 100, 0); got != 10 {
		t.Errorf("interval at level 1 = %d, expected 10", got)
	}

	spawn.IntervalReduction = 100
	if got := d.SpawnInterval(spawn, 100, 0); got != 10 {
		t.Errorf("interval should never drop below min, got %d", got)
	}
}
