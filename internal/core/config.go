package core

// RuntimeConfig contains configuration passed to the game at (re)start.
// Frontends fill it from the terminal or window they run in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	GridW    int   // Playfield width in tiles (0 = derive from screen)
	GridH    int   // Playfield height in tiles (0 = derive from screen)
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the retro 12 FPS update rate.
const DefaultTickRate = 12

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level game state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Phase   Phase
	Score   int
	Tick    int
	Enemies int // Live enemies on the field
	Bullets int // Live bullets on the field
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// EventKind classifies things that happened during a tick.
type EventKind int

const (
	EventStart    EventKind = iota // A new run began
	EventFire                      // The player fired a bullet
	EventHit                       // A bullet destroyed an enemy at (X, Y)
	EventGameOver                  // An enemy reached the player's row
)

// Event is emitted by Step so frontends can play sounds or effects.
type Event struct {
	Kind EventKind
	X, Y int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
