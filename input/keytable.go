package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents per input mode
type KeyTable struct {
	// Keys valid in every mode
	SystemKeys map[tcell.Key]IntentType

	// Board bindings
	BoardKeys  map[tcell.Key]IntentType
	BoardRunes map[rune]IntentType

	// Page bindings
	PageKeys  map[tcell.Key]IntentType
	PageRunes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},

		BoardKeys: map[tcell.Key]IntentType{
			tcell.KeyLeft:  IntentMoveLeft,
			tcell.KeyRight: IntentMoveRight,
			tcell.KeyUp:    IntentCycleUp,
			tcell.KeyDown:  IntentCycleDown,
			tcell.KeyEnter: IntentSubmit,
		},

		BoardRunes: map[rune]IntentType{
			' ': IntentSubmit,
			'r': IntentRestart,
			'h': IntentOpenHelp,
			'?': IntentOpenHelp,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},

		PageKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter: IntentBack,
		},

		PageRunes: map[rune]IntentType{
			's': IntentStart,
			'r': IntentRestart,
			'h': IntentOpenHelp,
			'?': IntentOpenHelp,
			'g': IntentOpenGeneral,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event for mode; unbound keys return IntentNone
func (kt *KeyTable) Lookup(mode InputMode, key tcell.Key, r rune) IntentType {
	if it, ok := kt.SystemKeys[key]; ok {
		return it
	}

	keys, runes := kt.BoardKeys, kt.BoardRunes
	if mode == ModePage {
		keys, runes = kt.PageKeys, kt.PageRunes
	}

	if key == tcell.KeyRune {
		if it, ok := runes[r]; ok {
			return it
		}
		return IntentNone
	}
	if it, ok := keys[key]; ok {
		return it
	}
	return IntentNone
}
