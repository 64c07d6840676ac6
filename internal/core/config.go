package core

// RuntimeConfig contains host settings passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal frontend only)
	ScreenH  int   // Terminal height in characters (terminal frontend only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle placement and captions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the game reports to its host after each tick.
type GameState struct {
	Score     int  // Current session score
	HighScore int  // Best score since process start
	Playing   bool // Whether a session is running
	GameOver  bool // Whether the last session has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Passed bool // An obstacle was cleared this tick
	Ended  bool // The session ended this tick
}
