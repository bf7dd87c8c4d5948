package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic Intents for the current mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a machine with the default bindings, starting on pages
func NewMachine() *Machine {
	return &Machine{
		mode:     ModePage,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context
// Called by mode.Router when the menu opens or closes
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current parser mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a tcell event; unrecognized input yields IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return Intent{Type: m.keyTable.Lookup(m.mode, ev.Key(), ev.Rune()), Count: 1}
	}
	return Intent{}
}
