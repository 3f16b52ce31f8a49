package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{Category: "user", Action: "status"},
		{Category: "cache", Action: "clear"},
		{Category: "user", Action: "create"},
	}
}

func TestBuildSidebar(t *testing.T) {
	items := buildSidebar(testEntries())
	require.Len(t, items, 5)

	// Sorted by category then action, one header per category.
	require.True(t, items[0].isCategory)
	require.Equal(t, "cache", items[0].display)
	require.Equal(t, "clear", items[1].display)
	require.True(t, items[2].isCategory)
	require.Equal(t, "user", items[2].display)
	require.Equal(t, "create", items[3].display)
	require.Equal(t, "status", items[4].display)

	require.NotNil(t, items[1].entry)
	require.Nil(t, items[0].entry)
}

func TestNewModelStartsOnFirstEntry(t *testing.T) {
	m := newModel(testEntries())
	require.Equal(t, 1, m.cursor)
	require.False(t, m.items[m.cursor].isCategory)
}

func TestMoveCursorSkipsHeaders(t *testing.T) {
	m := newModel(testEntries())

	// clear -> create jumps over the "user" header.
	m.moveCursor(1)
	require.Equal(t, 3, m.cursor)

	m.moveCursor(1)
	require.Equal(t, 4, m.cursor)

	// Wraps past the end back to the first entry, skipping the
	// "cache" header.
	m.moveCursor(1)
	require.Equal(t, 1, m.cursor)

	// And backwards over both headers.
	m.moveCursor(-1)
	require.Equal(t, 4, m.cursor)
}

func TestJumpFirstLast(t *testing.T) {
	m := newModel(testEntries())

	m.jumpToLast()
	require.Equal(t, 4, m.cursor)

	m.jumpToFirst()
	require.Equal(t, 1, m.cursor)
}

func TestUpdateQuit(t *testing.T) {
	m := newModel(testEntries())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}

func TestUpdateWindowSize(t *testing.T) {
	m := newModel(testEntries())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := next.(model)
	require.Equal(t, 120, got.width)
	require.Equal(t, 40, got.height)
}
