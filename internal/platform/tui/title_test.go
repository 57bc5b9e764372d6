package tui

import "testing"

func TestTitleCursorStartsOnStart(t *testing.T) {
	c := NewTitleCursor()
	if c.Current() != TitleStart {
		t.Errorf("Current() = %v, expected Start", c.Current())
	}
}

func TestTitleCursorWalksAllEntries(t *testing.T) {
	c := NewTitleCursor()

	expected := []TitleEntry{TitleSettings, TitleInfos, TitleExit}
	for _, e := range expected {
		c.Next()
		if c.Current() != e {
			t.Fatalf("Current() = %v, expected %v", c.Current(), e)
		}
	}
}

func TestTitleCursorSaturatesAtBottom(t *testing.T) {
	c := NewTitleCursor()

	for i := 0; i < 10; i++ {
		c.Next()
	}
	if c.Current() != TitleExit {
		t.Errorf("Current() = %v, expected Exit after saturating", c.Current())
	}
}

func TestTitleCursorSaturatesAtTop(t *testing.T) {
	c := NewTitleCursor()

	c.Prev()
	if c.Current() != TitleStart {
		t.Errorf("Current() = %v, expected Start after Prev at top", c.Current())
	}

	c.Next()
	c.Prev()
	c.Prev()
	if c.Current() != TitleStart {
		t.Errorf("Current() = %v, expected Start", c.Current())
	}
}

func TestTitleEntryLabels(t *testing.T) {
	tests := []struct {
		entry TitleEntry
		label string
	}{
		{TitleStart, "Start"},
		{TitleSettings, "Settings"},
		{TitleInfos, "Infos"},
		{TitleExit, "Exit"},
	}

	for _, tc := range tests {
		if got := tc.entry.Label(); got != tc.label {
			t.Errorf("Label() = %q, expected %q", got, tc.label)
		}
	}

	if len(Entries()) != int(titleEntryCount) {
		t.Errorf("Entries() has %d items, expected %d", len(Entries()), titleEntryCount)
	}
}
