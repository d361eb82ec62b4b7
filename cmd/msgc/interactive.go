package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/orb/msg"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	paddingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	filter   textinput.Model
	layouts  []*msg.Layout
	selected int
}

func newInspectorModel(layouts []*msg.Layout) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "field name or type"
	ti.Prompt = "filter: "
	ti.Width = 30
	return &inspectorModel{filter: ti, layouts: layouts}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := message.(tea.KeyMsg); ok {
		if m.filter.Focused() {
			switch key.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "enter":
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(message)
			return m, cmd
		}

		switch key.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.layouts)-1 {
				m.selected++
			}
		case "/":
			return m, m.filter.Focus()
		case "esc":
			m.filter.SetValue("")
		}
	}
	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("msgc inspector"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, l := range m.layouts {
		line := fmt.Sprintf("%s (%d)", l.Name, l.Size)
		if i == m.selected {
			list.WriteString(selectedStyle.Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteString("\n")
	}

	detail := ""
	if len(m.layouts) > 0 {
		detail = m.renderLayout(m.layouts[m.selected])
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(strings.TrimRight(list.String(), "\n")),
		" ",
		panelStyle.Render(detail)))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")
	if m.filter.Focused() {
		b.WriteString(helpStyle.Render("enter/esc done"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • / filter • esc clear • q quit"))
	}
	return b.String()
}

func (m *inspectorModel) renderLayout(l *msg.Layout) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", nameStyle.Render(l.Name), l.File)
	fmt.Fprintf(&b, "size %d, size_no_padding %d, padding %d\n\n", l.Size, l.SizeNoPadding, l.Padding())

	b.WriteString(headerStyle.Render(fmt.Sprintf("%6s %5s  %-16s %s", "OFFSET", "SIZE", "TYPE", "NAME")))
	b.WriteString("\n")

	query := strings.ToLower(m.filter.Value())
	for _, f := range l.Fields {
		if query != "" && !strings.Contains(strings.ToLower(f.Name), query) &&
			!strings.Contains(strings.ToLower(f.CType()), query) {
			continue
		}
		row := fmt.Sprintf("%6d %5d  %s %s",
			f.Offset, f.Size(),
			typeStyle.Render(fmt.Sprintf("%-16s", f.CType())),
			f.Name)
		if f.Padding {
			row = paddingStyle.Render(fmt.Sprintf("%6d %5d  %-16s %s", f.Offset, f.Size(), f.CType(), f.Name))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(byteMap(l))
	return b.String()
}

// maxMapBytes bounds the byte map of large messages.
const maxMapBytes = 256

// byteMap draws one cell per byte, 8 per row, labelled by field index.
func byteMap(l *msg.Layout) string {
	var b strings.Builder
	for i, f := range l.Fields {
		if f.Offset >= maxMapBytes {
			fmt.Fprintf(&b, "\n... %d more bytes", l.Size-maxMapBytes)
			break
		}
		cell := fmt.Sprintf("%x", i%16)
		style := typeStyle
		if f.Padding {
			cell = "."
			style = paddingStyle
		}
		for j := uint32(0); j < f.Size() && f.Offset+j < maxMapBytes; j++ {
			off := f.Offset + j
			if off > 0 && off%msg.MessageAlign == 0 {
				b.WriteString("\n")
			}
			b.WriteString(style.Render(cell))
		}
	}
	return b.String()
}

func runInteractive(layouts []*msg.Layout) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInspectorModel(layouts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
