package tui

// TitleEntry is one selectable row on the title screen.
type TitleEntry int

const (
	TitleStart TitleEntry = iota
	TitleSettings
	TitleInfos
	TitleExit

	titleEntryCount
)

// Label returns the display text for the entry.
func (e TitleEntry) Label() string {
	switch e {
	case TitleStart:
		return "Start"
	case TitleSettings:
		return "Settings"
	case TitleInfos:
		return "Infos"
	case TitleExit:
		return "Exit"
	default:
		return ""
	}
}

// TitleCursor tracks the highlighted entry on the title screen.
// Movement saturates at both ends instead of wrapping.
type TitleCursor struct {
	current TitleEntry
}

// NewTitleCursor starts on the first entry.
func NewTitleCursor() TitleCursor {
	return TitleCursor{current: TitleStart}
}

// Current returns the highlighted entry.
func (c TitleCursor) Current() TitleEntry {
	return c.current
}

// Prev moves the cursor up one entry.
func (c *TitleCursor) Prev() {
	if c.current > TitleStart {
		c.current--
	}
}

// Next moves the cursor down one entry.
func (c *TitleCursor) Next() {
	if c.current < titleEntryCount-1 {
		c.current++
	}
}

// Entries lists all title entries in display order.
func Entries() []TitleEntry {
	return []TitleEntry{TitleStart, TitleSettings, TitleInfos, TitleExit}
}
