package mode

import "testing"

// TestMenuStartFlow verifies the start page closes to the board without restart
func TestMenuStartFlow(t *testing.T) {
	m := NewMenu()
	if !m.IsOpen() || m.Page() != PageStart || m.Active() {
		t.Fatalf("Expected open start page, got open=%v page=%v", m.IsOpen(), m.Page())
	}
	if m.Start() {
		t.Error("Expected no restart when leaving the start page")
	}
	if !m.Active() {
		t.Error("Expected board active after start")
	}
}

// TestMenuHelpFromBoard verifies Back from help returns to the board
func TestMenuHelpFromBoard(t *testing.T) {
	m := NewMenu()
	m.Start()

	m.OpenHelp()
	if !m.IsOpen() || m.Page() != PageHelp {
		t.Fatalf("Expected help page, got %v", m.Page())
	}
	m.OpenGeneral()
	if m.Page() != PageGeneral {
		t.Fatalf("Expected general page, got %v", m.Page())
	}

	// Help key is ignored on the general page
	m.OpenHelp()
	if m.Page() != PageGeneral {
		t.Errorf("Expected general page kept, got %v", m.Page())
	}

	m.Back()
	if m.Page() != PageHelp {
		t.Errorf("Expected back to help, got %v", m.Page())
	}
	m.Back()
	if m.IsOpen() {
		t.Error("Expected help to close back to the board")
	}
}

// TestMenuHelpFromStart verifies Back from help returns to the start page
func TestMenuHelpFromStart(t *testing.T) {
	m := NewMenu()
	m.OpenHelp()
	m.Back()
	if !m.IsOpen() || m.Page() != PageStart {
		t.Errorf("Expected start page after back, got open=%v page=%v", m.IsOpen(), m.Page())
	}
}

// TestMenuRoundEndPages verifies won/lost pages request a restart and keep the board visible
func TestMenuRoundEndPages(t *testing.T) {
	for _, page := range []Page{PageWon, PageLost} {
		m := NewMenu()
		m.Start()
		m.Open(page)

		if !m.BoardVisible() {
			t.Errorf("%v: expected board visible under banner", page)
		}
		if m.Active() {
			t.Errorf("%v: expected round inactive", page)
		}

		m.OpenHelp()
		m.Back()
		if m.Page() != page {
			t.Errorf("%v: expected back to return to %v, got %v", page, page, m.Page())
		}

		if !m.Start() {
			t.Errorf("%v: expected restart request", page)
		}
		if m.IsOpen() {
			t.Errorf("%v: expected menu closed", page)
		}
	}
}

// TestMenuIgnoresOutOfContextKeys verifies general and back are no-ops where they do not apply
func TestMenuIgnoresOutOfContextKeys(t *testing.T) {
	m := NewMenu()
	m.OpenGeneral()
	if m.Page() != PageStart {
		t.Errorf("Expected general ignored outside help, got %v", m.Page())
	}
	m.Back()
	if m.Page() != PageStart || !m.IsOpen() {
		t.Error("Expected back ignored on start page")
	}

	m.Start()
	m.Back()
	if m.IsOpen() {
		t.Error("Expected back ignored on the board")
	}
	if m.Start() {
		t.Error("Expected start ignored on the board")
	}
}

// TestPageText verifies every page has content
func TestPageText(t *testing.T) {
	for _, p := range []Page{PageStart, PageHelp, PageGeneral, PageWon, PageLost} {
		if p.Text() == "" {
			t.Errorf("Expected text for %v", p)
		}
	}
}
