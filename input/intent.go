package input

import "github.com/lixenwraith/codebreaker/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Board intents (guess row and round)
	IntentMoveLeft  // Left arrow
	IntentMoveRight // Right arrow
	IntentCycleUp   // Up arrow
	IntentCycleDown // Down arrow
	IntentSubmit    // Enter, Space on the board
	IntentRestart   // r
	IntentGuess     // Line mode: whole code entered at once

	// Page intents
	IntentOpenHelp    // h, ?
	IntentOpenGeneral // g on the help page
	IntentStart       // s on start/won/lost pages
	IntentBack        // Enter on a page
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentToggleMute:  "mute",
	IntentResize:      "resize",
	IntentMoveLeft:    "left",
	IntentMoveRight:   "right",
	IntentCycleUp:     "up",
	IntentCycleDown:   "down",
	IntentSubmit:      "submit",
	IntentRestart:     "restart",
	IntentGuess:       "guess",
	IntentOpenHelp:    "help",
	IntentOpenGeneral: "general",
	IntentStart:       "start",
	IntentBack:        "back",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type  IntentType
	Code  core.Code // Only for IntentGuess
	Count int       // Repeat count for line-mode moves (minimum 1)
}
