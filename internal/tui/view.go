package tui

import (
	"fmt"
	"strings"

	"gxplorer/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m *Model) View() string {
	width := m.width
	if width < 40 {
		width = 80
	}
	height := m.height
	if height < 10 {
		height = 24
	}

	paneWidth := width/2 - 2
	listHeight := height - 7

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("GXplorer"))
	b.WriteString("\n")

	left := m.renderPane(types.Left, paneWidth, listHeight)
	right := m.renderPane(types.Right, paneWidth, listHeight)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	b.WriteString(m.renderOverlay(width))
	b.WriteString(m.renderStatus(width))
	return b.String()
}

func (m *Model) renderPane(side types.Side, width, height int) string {
	p := m.panels[side]
	entries := p.Entries()

	var rows []string
	rows = append(rows, m.styles.PathBar.Render(truncate(p.CurrentDir(), width)))

	cursor := m.cursor[side]
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		rows = append(rows, m.renderEntry(side, entries[i], i == cursor, width))
	}
	for len(rows) < height+1 {
		rows = append(rows, "")
	}

	if count := p.SelectionCount(); count > 0 {
		rows = append(rows, m.styles.Selected.Render(fmt.Sprintf("%d selected", count)))
	} else {
		rows = append(rows, m.styles.Help.Render(fmt.Sprintf("%d items", len(entries))))
	}

	frame := m.styles.InactivePane
	if side == m.active {
		frame = m.styles.ActivePane
	}
	return frame.Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderEntry(side types.Side, e types.Entry, underCursor bool, width int) string {
	p := m.panels[side]

	marker := "  "
	if p.IsSelected(e.Path) {
		marker = "* "
	}

	name := e.Name
	switch {
	case e.IsDir:
		name += "/"
	case e.IsSymlink():
		name += "@"
	}
	size := ""
	if !e.IsDir {
		size = humanSize(e.Size)
	}

	// Name column on the left, size right-aligned.
	pad := width - lipgloss.Width(marker) - lipgloss.Width(name) - lipgloss.Width(size) - 3
	if pad < 1 {
		name = truncate(name, width-len(marker)-len(size)-4)
		pad = 1
	}
	row := marker + name + strings.Repeat(" ", pad) + size

	active := side == m.active
	switch {
	case underCursor && active && p.IsSelected(e.Path):
		return m.styles.SelectedCursor.Render(row)
	case underCursor && active:
		return m.styles.Cursor.Render(row)
	case p.IsSelected(e.Path):
		return m.styles.Selected.Render(row)
	case e.IsDir:
		return m.styles.Directory.Render(row)
	default:
		return m.styles.Entry.Render(row)
	}
}

func (m *Model) renderOverlay(width int) string {
	switch m.mode {
	case modeRename, modeMkdir, modeFilter:
		return m.styles.Prompt.Render(m.input.View()) + "\n"

	case modeConfirmDelete:
		q := fmt.Sprintf("Permanently delete %d items? (y/n)", len(m.pendingDelete))
		return m.styles.Error.Render(q) + "\n"

	case modePlugins:
		var b strings.Builder
		b.WriteString(m.styles.Prompt.Render("plugins (enter to run, esc to close)"))
		b.WriteString("\n")
		for i, desc := range m.plugins.Plugins() {
			line := fmt.Sprintf("  %s  %s", desc.Name, desc.Description)
			if i == m.pluginCursor {
				line = m.styles.Cursor.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		return b.String()

	case modeAssistant:
		var b strings.Builder
		b.WriteString(m.styles.Prompt.Render("assistant (esc to close)"))
		b.WriteString("\n")
		log := m.chatLog
		if len(log) > 6 {
			log = log[len(log)-6:]
		}
		for _, line := range log {
			b.WriteString(truncate(line, width-2))
			b.WriteString("\n")
		}
		if m.chatBusy {
			b.WriteString(m.styles.Help.Render("thinking..."))
			b.WriteString("\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n")
		return b.String()
	}
	return ""
}

func (m *Model) renderStatus(width int) string {
	var b strings.Builder
	if m.statusMsg != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(truncate(m.statusMsg, width)))
		b.WriteString("\n")
	}

	help := "tab switch | enter open | space select | F5 copy | F6 move | F7 mkdir | F8 delete | ? more"
	if m.showHelp {
		help = "F2 rename | F3 view | F4 edit | i info | / filter | . hidden | t theme | p plugins | a assistant | esc clear | q quit"
	}
	b.WriteString(m.styles.Help.Render(truncate(help, width)))
	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
