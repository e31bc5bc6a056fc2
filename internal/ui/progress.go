package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bluecheck/internal/batch"
)

// maxRows caps the per-citation list; larger batches only show the bar.
const maxRows = 20

type progressModel struct {
	title   string
	events  <-chan batch.Event
	spinner spinner.Model
	prog    progress.Model
	items   []rowItem
	settled int
	width   int
	done    bool
}

type rowItem struct {
	label  string
	status string
}

type eventMsg batch.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders batch progress.
// labels are indexed like the batch inputs; the model quits when events is
// closed.
func NewProgressModel(title string, labels []string, events <-chan batch.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]rowItem, 0, len(labels))
	for _, l := range labels {
		items = append(items, rowItem{label: l, status: "queued"})
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(batch.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.settled, len(m.items))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.items) <= maxRows {
		const statusWidth = 10
		nameWidth := max(m.width-statusWidth-4, 20)
		for _, item := range m.items {
			status := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
			fmt.Fprintf(&b, "  %s %s\n", status, truncate(item.label, nameWidth))
		}
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev batch.Event) tea.Cmd {
	if ev.Index < 0 || ev.Index >= len(m.items) {
		return nil
	}
	item := &m.items[ev.Index]
	if item.status == string(batch.StatusValid) || item.status == string(batch.StatusInvalid) {
		return nil
	}
	item.status = string(ev.Status)
	if ev.Status != batch.StatusChecking {
		m.settled++
	}
	return m.prog.SetPercent(float64(m.settled) / float64(len(m.items)))
}

func styleStatus(status string) lipgloss.Style {
	switch batch.Status(status) {
	case batch.StatusValid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case batch.StatusInvalid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case batch.StatusChecking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
