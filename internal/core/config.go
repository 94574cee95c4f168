package core

// RuntimeConfig contains process-level settings handed to the driver.
// Game rules come from config.Config; this only covers the terminal and RNG.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Render frames per second, independent of update ticks
	Seed    int64 // RNG seed for food placement (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the driver reads after each tick.
type GameState struct {
	Length   int  // Current snake length
	Eaten    int  // Food eaten this session
	GameOver bool // Whether the session has ended
}
