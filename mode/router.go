package mode

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/codebreaker/engine"
	"github.com/lixenwraith/codebreaker/input"
)

// Muter is the audio surface the router toggles
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Router interprets Intents and executes them against the menu and the game
// Authoritative owner of which surface receives input
type Router struct {
	game    *engine.Game
	menu    *Menu
	machine *input.Machine
	muter   Muter

	lastStatus engine.RoundStatus
}

// NewRouter wires the router; muter may be nil when audio is unavailable
func NewRouter(game *engine.Game, menu *Menu, machine *input.Machine, muter Muter) *Router {
	r := &Router{
		game:       game,
		menu:       menu,
		machine:    machine,
		muter:      muter,
		lastStatus: game.Status(),
	}
	r.syncMode()
	return r
}

func (r *Router) Menu() *Menu        { return r.menu }
func (r *Router) Game() *engine.Game { return r.game }

// Handle processes an Intent and returns false if the program should exit
func (r *Router) Handle(intent input.Intent) bool {
	switch intent.Type {
	case input.IntentNone, input.IntentResize:
		return true
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		r.handleToggleMute()
		return true
	}

	if r.menu.Active() {
		r.handleBoard(intent)
	} else {
		r.handlePage(intent)
	}
	r.lastStatus = r.game.Status()
	r.syncMode()
	return true
}

func (r *Router) handleBoard(intent input.Intent) {
	count := max(intent.Count, 1)

	switch intent.Type {
	case input.IntentMoveLeft:
		for i := 0; i < count; i++ {
			r.game.MoveCursor(-1)
		}
	case input.IntentMoveRight:
		for i := 0; i < count; i++ {
			r.game.MoveCursor(1)
		}
	case input.IntentCycleUp:
		for i := 0; i < count; i++ {
			r.game.CycleColor(1)
		}
	case input.IntentCycleDown:
		for i := 0; i < count; i++ {
			r.game.CycleColor(-1)
		}
	case input.IntentSubmit:
		r.game.Submit()
	case input.IntentGuess:
		r.game.EnterGuess(intent.Code)
	case input.IntentRestart:
		r.game.Restart()
	case input.IntentOpenHelp:
		r.menu.OpenHelp()
	}
}

func (r *Router) handlePage(intent input.Intent) {
	switch intent.Type {
	case input.IntentStart, input.IntentRestart:
		if r.menu.Start() {
			r.game.Restart()
		}
	case input.IntentOpenHelp:
		r.menu.OpenHelp()
	case input.IntentOpenGeneral:
		r.menu.OpenGeneral()
	case input.IntentBack:
		r.menu.Back()
	}
}

func (r *Router) handleToggleMute() {
	if r.muter == nil {
		return
	}
	muted := !r.muter.Muted()
	r.muter.SetMuted(muted)
	log.Debug("sound toggled", "muted", muted)
}

// Tick advances game time and opens the won/lost page when the round ends
func (r *Router) Tick(delta time.Duration) {
	r.game.Advance(delta)

	status := r.game.Status()
	if status == r.lastStatus {
		return
	}
	r.lastStatus = status
	switch status {
	case engine.StatusWon:
		r.menu.Open(PageWon)
	case engine.StatusLost:
		r.menu.Open(PageLost)
	}
	r.syncMode()
}

// Settle advances by one full debounce window so a pending submit is scored
// Line-mode frontends call it after every command
func (r *Router) Settle() {
	r.Tick(r.game.Config().Debounce + time.Millisecond)
}

func (r *Router) syncMode() {
	if r.menu.Active() {
		r.machine.SetMode(input.ModeBoard)
	} else {
		r.machine.SetMode(input.ModePage)
	}
}
