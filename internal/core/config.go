package core

// DefaultBoardSize is the side length of the square board (GAME_SIZE).
const DefaultBoardSize = 20

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Frames per second driving Update (default 60)
	Seed      int64 // RNG seed for apple placement
	BoardSize int   // Side of the square board in cells
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		BoardSize: DefaultBoardSize,
	}
}
