package input

// actionRegistry maps command words to intents for the line frontend
// Several aliases may resolve to one intent; the first listed is canonical
// Single letters mirror the page keys and only match exactly
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]IntentType {
	return map[string]IntentType{
		// System
		"quit": IntentQuit,
		"exit": IntentQuit,
		"q":    IntentQuit,
		"mute": IntentToggleMute,
		"m":    IntentToggleMute,

		// Guess row
		"left":  IntentMoveLeft,
		"right": IntentMoveRight,
		"up":    IntentCycleUp,
		"down":  IntentCycleDown,
		"next":  IntentCycleUp,
		"prev":  IntentCycleDown,

		// Round
		"submit":  IntentSubmit,
		"enter":   IntentSubmit,
		"ok":      IntentSubmit,
		"restart": IntentRestart,
		"new":     IntentRestart,
		"r":       IntentRestart,
		"guess":   IntentGuess,

		// Pages
		"help":    IntentOpenHelp,
		"h":       IntentOpenHelp,
		"?":       IntentOpenHelp,
		"general": IntentOpenGeneral,
		"rules":   IntentOpenGeneral,
		"g":       IntentOpenGeneral,
		"start":   IntentStart,
		"play":    IntentStart,
		"s":       IntentStart,
		"back":    IntentBack,
		"return":  IntentBack,
	}
}

// ActionNames returns every registered command word
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
