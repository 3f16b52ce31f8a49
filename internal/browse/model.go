package browse

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sidebarItem is one row of the left pane. Category headers are not
// selectable; the cursor skips over them.
type sidebarItem struct {
	display    string
	isCategory bool
	entry      *Entry
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	PageUp key.Binding
	PageDn key.Binding
	First  key.Binding
	Last   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		PageUp: key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "scroll up")),
		PageDn: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "scroll down")),
		First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	items         []sidebarItem
	cursor        int
	sidebarScroll int
	contentScroll int
	width         int
	height        int
	keys          keyMap
}

func newModel(entries []Entry) model {
	items := buildSidebar(entries)

	cursor := 0
	for i, item := range items {
		if !item.isCategory {
			cursor = i
			break
		}
	}

	return model{items: items, cursor: cursor, keys: defaultKeyMap()}
}

func buildSidebar(entries []Entry) []sidebarItem {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].Action < sorted[j].Action
	})

	var items []sidebarItem
	current := ""
	for i := range sorted {
		e := &sorted[i]
		if e.Category != current {
			current = e.Category
			items = append(items, sidebarItem{display: e.Category, isCategory: true})
		}
		items = append(items, sidebarItem{display: e.Action, entry: e})
	}
	return items
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			m.contentScroll = 0

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			m.contentScroll = 0

		case key.Matches(msg, m.keys.PageUp):
			m.contentScroll -= 10
			if m.contentScroll < 0 {
				m.contentScroll = 0
			}

		case key.Matches(msg, m.keys.PageDn):
			m.contentScroll += 10

		case key.Matches(msg, m.keys.First):
			m.jumpToFirst()
			m.contentScroll = 0

		case key.Matches(msg, m.keys.Last):
			m.jumpToLast()
			m.contentScroll = 0
		}
	}

	return m, nil
}

func (m *model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 {
		next = len(m.items) - 1
	} else if next >= len(m.items) {
		next = 0
	}

	for m.items[next].isCategory {
		next += delta
		if next < 0 {
			next = len(m.items) - 1
		} else if next >= len(m.items) {
			next = 0
		}
	}

	m.cursor = next
}

func (m *model) jumpToFirst() {
	for i, item := range m.items {
		if !item.isCategory {
			m.cursor = i
			return
		}
	}
}

func (m *model) jumpToLast() {
	for i := len(m.items) - 1; i >= 0; i-- {
		if !m.items[i].isCategory {
			m.cursor = i
			return
		}
	}
}
