package mode

// Page identifies which full-screen text page is shown
type Page uint8

const (
	PageStart Page = iota
	PageHelp
	PageGeneral
	PageWon
	PageLost
)

func (p Page) String() string {
	switch p {
	case PageHelp:
		return "help"
	case PageGeneral:
		return "general"
	case PageWon:
		return "won"
	case PageLost:
		return "lost"
	default:
		return "start"
	}
}

// Menu is the page state machine in front of the board
// lastSignificant remembers the page help was opened from, so Back can return to it
type Menu struct {
	open            bool
	page            Page
	lastSignificant Page
}

// NewMenu starts on the open start page
func NewMenu() *Menu {
	return &Menu{open: true, page: PageStart, lastSignificant: PageStart}
}

// Open shows page and makes it the page Back returns to
func (m *Menu) Open(page Page) {
	m.open = true
	m.page = page
	m.lastSignificant = page
}

// Close hides the menu and shows the board
func (m *Menu) Close() {
	m.open = false
}

func (m *Menu) IsOpen() bool { return m.open }
func (m *Menu) Page() Page   { return m.page }

// Active reports whether a round is on screen, i.e. no page covers the board
func (m *Menu) Active() bool {
	return !m.open
}

// BoardVisible reports whether the board should be drawn under the current page
// Won and lost pages are banners over the revealed board
func (m *Menu) BoardVisible() bool {
	return !m.open || m.page == PageWon || m.page == PageLost
}

// Start closes the start, won or lost page
// Returns true when leaving a finished round, meaning the caller must restart
func (m *Menu) Start() (restart bool) {
	if !m.open {
		return false
	}
	switch m.page {
	case PageStart:
		m.open = false
		return false
	case PageWon, PageLost:
		m.open = false
		return true
	}
	return false
}

// OpenHelp shows the help page; from the board, Back returns to the board
func (m *Menu) OpenHelp() {
	if !m.open {
		m.Open(PageHelp)
		return
	}
	if m.page != PageGeneral {
		m.page = PageHelp
	}
}

// OpenGeneral moves from help to the general explanation
func (m *Menu) OpenGeneral() {
	if m.open && m.page == PageHelp {
		m.page = PageGeneral
	}
}

// Back returns one level: general to help, help to the page it was opened from
func (m *Menu) Back() {
	if !m.open {
		return
	}
	switch m.page {
	case PageGeneral:
		m.page = PageHelp
	case PageHelp:
		if m.lastSignificant == PageHelp {
			m.open = false
			return
		}
		m.page = m.lastSignificant
	}
}
