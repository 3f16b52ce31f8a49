package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/declgen-tools/cli/registry"
)

var (
	borderColor = lipgloss.Color("238")
	accentColor = lipgloss.Color("6")
	mutedColor  = lipgloss.Color("8")
	okColor     = lipgloss.Color("2")
)

func (m model) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	footerHeight := 2
	mainHeight := height - footerHeight

	sidebarWidth := width / 4
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	if sidebarWidth > 30 {
		sidebarWidth = 30
	}
	contentWidth := width - sidebarWidth - 1

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(sidebarWidth, mainHeight),
		m.renderContent(contentWidth, mainHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter(width))
}

func (m model) renderSidebar(width, height int) string {
	visible := height - 2

	offset := m.sidebarScroll
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visible {
		offset = m.cursor - visible + 1
	}

	categoryStyle := lipgloss.NewStyle().Bold(true).Foreground(mutedColor)
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(accentColor)

	var lines []string
	for i, item := range m.items {
		if i < offset {
			continue
		}
		if len(lines) >= visible {
			break
		}

		switch {
		case item.isCategory:
			lines = append(lines, categoryStyle.Render(strings.ToUpper(item.display)))
		case i == m.cursor:
			lines = append(lines, "▸ "+selectedStyle.Render(item.display))
		default:
			lines = append(lines, "  "+item.display)
		}
	}
	for len(lines) < visible {
		lines = append(lines, "")
	}

	sidebarStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m model) renderContent(width, height int) string {
	entry := m.items[m.cursor].entry
	content := ""
	if entry != nil {
		content = renderEntry(entry, width-4)
	}

	lines := strings.Split(content, "\n")
	if m.contentScroll > 0 && m.contentScroll < len(lines) {
		lines = lines[m.contentScroll:]
	}

	visible := height - 2
	if len(lines) > visible {
		lines = lines[:visible]
	}

	contentStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 2)

	return contentStyle.Render(strings.Join(lines, "\n"))
}

func renderEntry(e *Entry, width int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(okColor)
	dimStyle := lipgloss.NewStyle().Foreground(mutedColor)
	nameStyle := lipgloss.NewStyle().Foreground(accentColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Category + " " + e.Action))
	b.WriteString("\n")
	if e.Summary != "" {
		b.WriteString(dimStyle.Render(e.Summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("DECLARED AT"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "   %s\n", nameStyle.Render(e.FuncName))
	fmt.Fprintf(&b, "   %s\n\n", dimStyle.Render(e.File))

	if len(e.Args) > 0 {
		b.WriteString(headerStyle.Render("ARGUMENTS"))
		b.WriteString("\n")
		for _, arg := range e.Args {
			fmt.Fprintf(&b, "   %s  %s\n",
				nameStyle.Render(fmt.Sprintf("%-18s", argLabel(arg))),
				dimStyle.Render(argDetail(arg, width-24)))
		}
	}

	return b.String()
}

func argLabel(arg registry.ArgumentMetadata) string {
	label := "--" + arg.Name
	if arg.Short != "" {
		label += ", -" + arg.Short
	}
	return label
}

func argDetail(arg registry.ArgumentMetadata, width int) string {
	var parts []string
	parts = append(parts, kindLabel(arg))
	if arg.Required {
		parts = append(parts, "required")
	}
	if arg.Default != "" {
		parts = append(parts, "default="+arg.Default)
	}
	if arg.EnvVar != "" {
		parts = append(parts, "env="+arg.EnvVar)
	}
	if arg.Bounds != nil {
		parts = append(parts, fmt.Sprintf("range [%d, %d]", arg.Bounds.Min, arg.Bounds.Max))
	}
	if len(arg.Relationships.Requires) > 0 {
		parts = append(parts, "requires "+strings.Join(arg.Relationships.Requires, ","))
	}
	if len(arg.Relationships.Conflicts) > 0 {
		parts = append(parts, "conflicts "+strings.Join(arg.Relationships.Conflicts, ","))
	}
	detail := strings.Join(parts, " · ")
	if arg.Help != "" {
		detail = arg.Help + "  (" + detail + ")"
	}
	if width > 0 && len(detail) > width {
		detail = detail[:width-1] + "…"
	}
	return detail
}

func kindLabel(arg registry.ArgumentMetadata) string {
	switch arg.Kind {
	case registry.KindSwitch:
		return "switch"
	case registry.KindCounter:
		return "counter"
	case registry.KindList:
		return "list of " + parserLabel(arg.Parser)
	default:
		return parserLabel(arg.Parser)
	}
}

func parserLabel(parser string) string {
	if parser == "" {
		return "text"
	}
	return parser
}

func (m model) renderFooter(width int) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(accentColor).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(mutedColor)
	sep := lipgloss.NewStyle().Foreground(borderColor).Render(" │ ")

	footer := keyStyle.Render("↑↓") + labelStyle.Render(" nav") + sep +
		keyStyle.Render("u/d") + labelStyle.Render(" scroll") + sep +
		keyStyle.Render("g/G") + labelStyle.Render(" jump") + sep +
		keyStyle.Render("q") + labelStyle.Render(" quit")

	footerStyle := lipgloss.NewStyle().
		Width(width).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return footerStyle.Render(footer)
}
