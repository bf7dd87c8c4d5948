package engine

import (
	"time"

	"github.com/lixenwraith/codebreaker/constants"
)

// Config is the construction-time round configuration
type Config struct {
	Width    int // Board width in cells
	Height   int // Board height in cells
	Attempts int // Number of guesses per round
	Spacing  int // Gap between board elements, in cells
	Debug    bool
	Debounce time.Duration // Minimum time between two processed submissions
}

// DefaultConfig returns a configuration sized exactly for the default attempt count
func DefaultConfig() Config {
	return Config{
		Width:    MinWidth(constants.DefaultSpacing),
		Height:   MinHeight(constants.DefaultAttempts, constants.DefaultSpacing),
		Attempts: constants.DefaultAttempts,
		Spacing:  constants.DefaultSpacing,
		Debounce: constants.SubmitDebounce,
	}
}

// MinWidth is the narrowest board that fits a guess row, pins and the submit button
func MinWidth(spacing int) int {
	return 12 + 4*spacing
}

// MinHeight is the shortest board that fits the secret row plus one row per attempt
func MinHeight(attempts, spacing int) int {
	return 6 + attempts*(2+spacing)
}

// Validate reports the first fatal configuration problem
func (c Config) Validate() error {
	if c.Attempts <= 0 {
		return &ConfigurationError{Field: "attempts", Have: c.Attempts, Err: ErrInvalidAttempts}
	}
	if c.Spacing < 0 {
		return &ConfigurationError{Field: "spacing", Have: c.Spacing, Err: ErrInvalidSpacing}
	}
	if need := MinWidth(c.Spacing); c.Width < need {
		return &ConfigurationError{Field: "width", Have: c.Width, Need: need, Err: ErrBoardTooSmall}
	}
	if need := MinHeight(c.Attempts, c.Spacing); c.Height < need {
		return &ConfigurationError{Field: "height", Have: c.Height, Need: need, Err: ErrBoardTooSmall}
	}
	return nil
}
