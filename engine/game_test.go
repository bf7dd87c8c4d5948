package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/codebreaker/core"
)

func mustCode(t *testing.T, s string) core.Code {
	t.Helper()
	c, err := core.ParseCode(s)
	if err != nil {
		t.Fatalf("ParseCode(%q): %v", s, err)
	}
	return c
}

func newTestGame(t *testing.T, secret string, attempts int) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Attempts = attempts
	cfg.Height = MinHeight(attempts, cfg.Spacing)
	g, err := NewGame(cfg, core.FixedGenerator{Code: mustCode(t, secret)})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// play enters a guess and lets one debounce window pass
func play(g *Game, code core.Code) {
	g.EnterGuess(code)
	g.Advance(g.Config().Debounce + time.Millisecond)
}

// recordingListener captures round events
type recordingListener struct {
	BaseListener
	cycles   int
	rejects  int
	submits  []HistoryEntry
	ends     []RoundStatus
	restarts []int
}

func (r *recordingListener) OnCycle()                       { r.cycles++ }
func (r *recordingListener) OnReject()                      { r.rejects++ }
func (r *recordingListener) OnSubmit(e HistoryEntry, _ int) { r.submits = append(r.submits, e) }
func (r *recordingListener) OnRoundEnd(s RoundStatus, _ core.Code, _ int) {
	r.ends = append(r.ends, s)
}
func (r *recordingListener) OnRestart(n int) { r.restarts = append(r.restarts, n) }

// TestNewGameInitialState verifies a fresh round
func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, "rbgr", 6)

	if g.Status() != StatusEditing {
		t.Errorf("Expected editing, got %v", g.Status())
	}
	if g.Turn() != 0 || len(g.History()) != 0 {
		t.Errorf("Expected empty history, got turn=%d len=%d", g.Turn(), len(g.History()))
	}
	for i, s := range g.Secret() {
		if s.Revealed || s.Color() != core.ColorHidden {
			t.Errorf("Expected secret slot %d hidden, got revealed=%v color=%v", i, s.Revealed, s.Color())
		}
	}
}

// TestNewGameDebugRevealsSecret verifies debug mode pre-reveals
func TestNewGameDebugRevealsSecret(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	g, err := NewGame(cfg, core.FixedGenerator{Code: mustCode(t, "rbgy")})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for i, s := range g.Secret() {
		if !s.Revealed {
			t.Errorf("Expected slot %d revealed in debug", i)
		}
	}
	if g.Secret()[3].Color() != core.ColorYellow {
		t.Errorf("Expected yellow in slot 3, got %v", g.Secret()[3].Color())
	}
}

// TestNewGameRejectsSmallBoard verifies configuration errors are fatal
func TestNewGameRejectsSmallBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Height = MinHeight(cfg.Attempts, cfg.Spacing) - 1

	g, err := NewGame(cfg, core.NewRandomGenerator(1))
	if g != nil {
		t.Error("Expected no game on configuration error")
	}
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) || !errors.Is(err, ErrBoardTooSmall) {
		t.Fatalf("Expected ConfigurationError wrapping ErrBoardTooSmall, got %v", err)
	}
	if cerr.Field != "height" {
		t.Errorf("Expected height field, got %s", cerr.Field)
	}
}

// TestSubmitScoresAfterDebounce verifies scoring waits for the time gate
func TestSubmitScoresAfterDebounce(t *testing.T) {
	g := newTestGame(t, "red blue green red", 6)
	debounce := g.Config().Debounce

	g.EnterGuess(mustCode(t, "red red yellow blue"))
	if !g.Guess().Submitted {
		t.Fatal("Expected guess pending")
	}

	g.Advance(debounce / 2)
	if g.Turn() != 0 {
		t.Fatal("Expected no scoring before threshold")
	}
	g.Advance(debounce)
	if g.Turn() != 1 {
		t.Fatalf("Expected turn 1 after threshold, got %d", g.Turn())
	}

	entry := g.History()[0]
	if entry.Feedback != (core.Feedback{Exact: 1, Partial: 2}) {
		t.Errorf("Expected (1,2), got %+v", entry.Feedback)
	}
	gv := g.Guess()
	if gv.Submitted || gv.Ready || gv.Cursor != 0 {
		t.Errorf("Expected cleared guess row, got %+v", gv)
	}
}

// TestAdvanceOneSubmitPerWindow verifies small deltas cannot process extra submits
func TestAdvanceOneSubmitPerWindow(t *testing.T) {
	g := newTestGame(t, "rrrr", 6)
	debounce := g.Config().Debounce

	g.EnterGuess(mustCode(t, "bbbb"))
	// Second submit while one is pending is dropped
	g.EnterGuess(mustCode(t, "gggg"))

	step := debounce / 10
	for i := 0; i < 30; i++ {
		g.Advance(step)
	}
	if g.Turn() != 1 {
		t.Fatalf("Expected exactly one processed submit, got %d", g.Turn())
	}
	if g.History()[0].Guess != mustCode(t, "bbbb") {
		t.Errorf("Expected first guess kept, got %s", g.History()[0].Guess)
	}
}

// TestWinEndsRound verifies an exact match wins immediately and freezes the round
func TestWinEndsRound(t *testing.T) {
	g := newTestGame(t, "kwyg", 6)
	rec := &recordingListener{}
	g.AddListener(rec)

	play(g, mustCode(t, "rrrr"))
	play(g, mustCode(t, "kwyg"))

	if !g.Won() || g.Lost() || g.Status() != StatusWon {
		t.Fatalf("Expected won, got status %v", g.Status())
	}
	if g.Turn() != 2 {
		t.Errorf("Expected turn 2, got %d", g.Turn())
	}
	for i, s := range g.Secret() {
		if !s.Revealed {
			t.Errorf("Expected slot %d revealed after win", i)
		}
	}
	if !g.Guess().Disabled {
		t.Error("Expected input disabled after win")
	}

	// No further entries
	play(g, mustCode(t, "kwyg"))
	if g.Turn() != 2 || len(g.History()) != 2 {
		t.Errorf("Expected frozen turn pointer, got %d", g.Turn())
	}

	if len(rec.ends) != 1 || rec.ends[0] != StatusWon {
		t.Errorf("Expected one won event, got %v", rec.ends)
	}
	if len(rec.submits) != 2 {
		t.Errorf("Expected 2 submit events, got %d", len(rec.submits))
	}
}

// TestLossAfterAllAttempts verifies six non-winning guesses lose the round
func TestLossAfterAllAttempts(t *testing.T) {
	g := newTestGame(t, "rbgy", 6)

	guesses := []string{"rrrr", "bbbb", "gggg", "yyyy", "kkkk", "wwww"}
	for i, s := range guesses {
		if g.Lost() {
			t.Fatalf("Lost early after %d guesses", i)
		}
		play(g, mustCode(t, s))
	}

	if !g.Lost() || g.Won() {
		t.Fatalf("Expected lost, got status %v", g.Status())
	}
	if g.Turn() != g.Attempts() {
		t.Errorf("Expected turn %d, got %d", g.Attempts(), g.Turn())
	}
	for i, s := range g.Secret() {
		if !s.Revealed {
			t.Errorf("Expected slot %d revealed after loss", i)
		}
	}

	play(g, mustCode(t, "rbgy"))
	if g.Won() || len(g.History()) != g.Attempts() {
		t.Error("Expected no submissions accepted after loss")
	}
}

// TestWinOnLastAttempt verifies a winning final guess is a win, not a loss
func TestWinOnLastAttempt(t *testing.T) {
	g := newTestGame(t, "rbgy", 2)
	play(g, mustCode(t, "yyyy"))
	play(g, mustCode(t, "rbgy"))

	if !g.Won() || g.Lost() {
		t.Errorf("Expected win on last attempt, got %v", g.Status())
	}
}

// TestRestartResetsEverything verifies restart replaces the whole round
func TestRestartResetsEverything(t *testing.T) {
	gen := &core.SequenceGenerator{Codes: []core.Code{mustCode(t, "rrrr"), mustCode(t, "bbbb")}}
	g, err := NewGame(DefaultConfig(), gen)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	rec := &recordingListener{}
	g.AddListener(rec)

	play(g, mustCode(t, "rrrr"))
	if !g.Won() {
		t.Fatal("Expected win before restart")
	}

	g.Restart()
	if g.Won() || g.Lost() || g.Turn() != 0 || len(g.History()) != 0 {
		t.Errorf("Expected fresh round, got won=%v lost=%v turn=%d", g.Won(), g.Lost(), g.Turn())
	}
	for i, s := range g.Secret() {
		if s.Revealed {
			t.Errorf("Expected slot %d hidden after restart", i)
		}
		if s.Peg != core.PegBlue {
			t.Errorf("Expected new secret, slot %d is %v", i, s.Peg)
		}
	}
	gv := g.Guess()
	if gv.Disabled || gv.Ready || gv.Cursor != 0 {
		t.Errorf("Expected editable empty row, got %+v", gv)
	}
	if g.RoundNumber() != 2 || len(rec.restarts) != 1 {
		t.Errorf("Expected round 2, got %d", g.RoundNumber())
	}

	g.CycleColor(1)
	if g.Guess().Colors[0] != core.ColorRed {
		t.Error("Expected editing re-enabled after restart")
	}
}

// TestRejectAndCycleEvents verifies listener notifications for non-scoring input
func TestRejectAndCycleEvents(t *testing.T) {
	g := newTestGame(t, "rbgy", 6)
	rec := &recordingListener{}
	g.AddListener(rec)

	g.CycleColor(1)
	g.Submit()
	if rec.cycles != 1 {
		t.Errorf("Expected 1 cycle event, got %d", rec.cycles)
	}
	if rec.rejects != 1 {
		t.Errorf("Expected 1 reject event, got %d", rec.rejects)
	}
}

// TestSnapshotIsDetached verifies snapshots do not follow later mutation
func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, "rbgy", 6)
	play(g, mustCode(t, "rrrr"))

	snap := TakeSnapshot(g)
	play(g, mustCode(t, "bbbb"))

	if len(snap.History()) != 1 || snap.Turn() != 1 {
		t.Errorf("Expected snapshot frozen at turn 1, got %d", snap.Turn())
	}
	if len(g.History()) != 2 {
		t.Errorf("Expected game at 2 entries, got %d", len(g.History()))
	}
}
