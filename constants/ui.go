package constants

import "time"

// UI Layout Constants
const (
	// StatusTextWidth is the consistent width for round status labels
	StatusTextWidth = 9

	// Status text (all padded to StatusTextWidth)
	StatusTextEditing = " PLAYING "
	StatusTextWon     = "   WON   "
	StatusTextLost    = "  LOST   "

	// SubmitLabel is drawn at the submit affordance right of the guess slots
	SubmitLabel = "[OK]"

	// PegGlyph is drawn for every colored slot, PinGlyph for feedback pins
	PegGlyph  = '●'
	SlotGlyph = '○'
	PinGlyph  = '•'

	// PageIndent is the left margin of menu page text
	PageIndent = 4
)

// UI Timing Constants
const (
	// ErrorFlashTimeout is how long the submit button flashes after a rejected submit
	ErrorFlashTimeout = 200 * time.Millisecond
)
