package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 50 * time.Millisecond

	// SubmitDebounce is the minimum elapsed time between two processed submissions
	SubmitDebounce = 100 * time.Millisecond
)

// Round Defaults
const (
	// DefaultAttempts is the number of guesses per round
	DefaultAttempts = 6

	// DefaultSpacing is the blank cell gap between board elements
	DefaultSpacing = 1

	// MaxAttempts caps the attempt flag to keep the board on one screen
	MaxAttempts = 20
)
