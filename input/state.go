package input

// InputMode mirrors which surface owns the keyboard
// Kept in sync by mode.Router via SetMode()
type InputMode uint8

const (
	ModeBoard InputMode = iota // Guess row editing
	ModePage                   // Start, help, general, won and lost pages
)

func (m InputMode) String() string {
	if m == ModePage {
		return "page"
	}
	return "board"
}
