package engine

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/codebreaker/core"
)

// RoundStatus is the externally observable round phase
// Scoring happens inside one call and is never observable
type RoundStatus uint8

const (
	StatusEditing RoundStatus = iota
	StatusWon
	StatusLost
)

func (s RoundStatus) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "editing"
	}
}

// Terminal reports whether the round has ended
func (s RoundStatus) Terminal() bool {
	return s != StatusEditing
}

// HistoryEntry is one scored guess, immutable once appended
type HistoryEntry struct {
	Guess    core.Code
	Feedback core.Feedback
}

// SecretSlot is one hidden peg and whether it is shown
type SecretSlot struct {
	Peg      core.Peg
	Revealed bool
}

// Color returns the peg color once revealed, Hidden before
func (s SecretSlot) Color() core.Color {
	if !s.Revealed {
		return core.ColorHidden
	}
	return s.Peg.Color()
}

// round holds everything a restart replaces in one assignment
type round struct {
	secret  [core.CodeLength]SecretSlot
	history []HistoryEntry
	turn    int
	won     bool
	lost    bool
}

// Game owns the round state and the guess row
// All mutation goes through its methods on the loop goroutine; renderers use View
type Game struct {
	cfg       Config
	gen       core.SecretGenerator
	slots     *GuessSlotSet
	round     round
	number    int
	elapsed   time.Duration
	listeners []Listener
}

// NewGame validates cfg and starts the first round
// A configuration error is fatal: no round is created
func NewGame(cfg Config, gen core.SecretGenerator) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}

	g := &Game{
		cfg:   cfg,
		gen:   gen,
		slots: NewGuessSlotSet(),
	}
	g.round = g.newRound()
	g.number = 1
	return g, nil
}

// AddListener registers an observer of round events
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) newRound() round {
	secret := g.gen.Generate()
	var r round
	for i, p := range secret {
		if !p.Valid() {
			panic("invariant violation: secret generator produced a peg outside the palette")
		}
		r.secret[i] = SecretSlot{Peg: p, Revealed: g.cfg.Debug}
	}
	r.history = make([]HistoryEntry, 0, g.cfg.Attempts)
	return r
}

// MoveCursor forwards a directional move to the guess row
func (g *Game) MoveCursor(direction int) {
	if g.slots.Submitted() {
		return
	}
	g.slots.MoveCursor(direction)
}

// CycleColor forwards a color cycle to the guess row
func (g *Game) CycleColor(direction int) {
	if g.slots.Submitted() || g.slots.Disabled() || g.slots.Cursor() == SubmitPosition {
		return
	}
	g.slots.CycleColor(direction)
	for _, l := range g.listeners {
		l.OnCycle()
	}
}

// Submit requests submission; the guess is scored on the next debounce window
func (g *Game) Submit() {
	if g.slots.Disabled() || g.slots.Submitted() {
		return
	}
	if !g.slots.TrySubmit() {
		for _, l := range g.listeners {
			l.OnReject()
		}
	}
}

// EnterGuess fills all slots and submits in one step (line-mode frontends)
func (g *Game) EnterGuess(code core.Code) {
	if g.slots.Disabled() || g.slots.Submitted() {
		return
	}
	for i, p := range code {
		g.slots.SetSlot(i, p)
	}
	for g.slots.Cursor() < SubmitPosition {
		g.slots.MoveCursor(1)
	}
	g.Submit()
}

// Advance accumulates elapsed time and processes at most one pending submit per window
func (g *Game) Advance(delta time.Duration) {
	if delta < 0 {
		return
	}
	g.elapsed += delta
	if g.elapsed > g.cfg.Debounce {
		g.ProcessPendingSubmit()
		g.elapsed = 0
	}
}

// ProcessPendingSubmit scores a submitted guess and evaluates termination
// Returns true if a guess was consumed
func (g *Game) ProcessPendingSubmit() bool {
	if !g.slots.Submitted() || g.round.won || g.round.lost {
		return false
	}

	guess, ok := g.slots.Code()
	if !ok {
		panic("invariant violation: submitted guess has empty slots")
	}
	secret := g.secretCode()

	entry := HistoryEntry{Guess: guess, Feedback: core.Score(secret, guess)}
	g.round.history = append(g.round.history, entry)
	g.slots.Reset()
	g.round.turn++

	log.Debug("guess scored", "round", g.number, "turn", g.round.turn, "guess", guess, "exact", entry.Feedback.Exact, "partial", entry.Feedback.Partial)
	for _, l := range g.listeners {
		l.OnSubmit(entry, g.round.turn)
	}

	switch {
	case entry.Feedback.Solved():
		g.round.won = true
		g.endRound()
	case g.round.turn == g.cfg.Attempts:
		g.round.lost = true
		g.endRound()
	}
	return true
}

func (g *Game) endRound() {
	for i := range g.round.secret {
		g.round.secret[i].Revealed = true
	}
	g.slots.Disable()

	status := g.Status()
	log.Info("round ended", "round", g.number, "status", status, "turns", g.round.turn, "secret", g.secretCode())
	for _, l := range g.listeners {
		l.OnRoundEnd(status, g.secretCode(), g.round.turn)
	}
}

// Restart replaces the whole round at once and re-enables input
func (g *Game) Restart() {
	next := g.newRound()
	g.round = next
	g.slots.Reset()
	g.slots.Enable()
	g.elapsed = 0
	g.number++

	log.Debug("round restarted", "round", g.number)
	for _, l := range g.listeners {
		l.OnRestart(g.number)
	}
}

func (g *Game) secretCode() core.Code {
	var c core.Code
	for i, s := range g.round.secret {
		c[i] = s.Peg
	}
	return c
}

// Status returns the round phase
func (g *Game) Status() RoundStatus {
	switch {
	case g.round.won:
		return StatusWon
	case g.round.lost:
		return StatusLost
	default:
		return StatusEditing
	}
}

func (g *Game) Won() bool        { return g.round.won }
func (g *Game) Lost() bool       { return g.round.lost }
func (g *Game) Turn() int        { return g.round.turn }
func (g *Game) Attempts() int    { return g.cfg.Attempts }
func (g *Game) RoundNumber() int { return g.number }
func (g *Game) Config() Config   { return g.cfg }

// Secret returns the secret slots with their reveal flags
func (g *Game) Secret() [core.CodeLength]SecretSlot {
	return g.round.secret
}

// History returns a copy of the scored guesses
func (g *Game) History() []HistoryEntry {
	out := make([]HistoryEntry, len(g.round.history))
	copy(out, g.round.history)
	return out
}

// Guess returns a read-only view of the guess row
func (g *Game) Guess() GuessView {
	var colors [core.CodeLength]core.Color
	for i, s := range g.slots.Slots() {
		colors[i] = s.Color()
	}
	return GuessView{
		Colors:    colors,
		Cursor:    g.slots.Cursor(),
		Ready:     g.slots.Ready(),
		Submitted: g.slots.Submitted(),
		Disabled:  g.slots.Disabled(),
	}
}
