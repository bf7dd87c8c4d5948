package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardTooSmall means the terminal cannot host the requested number of rows
	ErrBoardTooSmall = errors.New("board too small")
	// ErrInvalidAttempts means the attempt count is not positive
	ErrInvalidAttempts = errors.New("invalid number of attempts")
	// ErrInvalidSpacing means the cell gap is negative
	ErrInvalidSpacing = errors.New("invalid spacing")
)

// ConfigurationError is fatal and only produced at construction time
type ConfigurationError struct {
	Field string
	Have  int
	Need  int
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Need > 0 {
		return fmt.Sprintf("configuration: %s is %d, need at least %d: %v", e.Field, e.Have, e.Need, e.Err)
	}
	return fmt.Sprintf("configuration: %s is %d: %v", e.Field, e.Have, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
