package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bluecheck/internal/citation"
	"bluecheck/internal/diag"
	"bluecheck/internal/diagfmt"
)

// FormOptions configures the interactive checker.
type FormOptions struct {
	// Initial prefills the input line.
	Initial string
	// Examples are loaded one after another with Tab.
	Examples []string
	// ShowCodes appends diagnostic codes to messages.
	ShowCodes bool
	// HideWarnings and HideInfo drop those severities from the result.
	HideWarnings bool
	HideInfo     bool
}

type formStyles struct {
	title     lipgloss.Style
	hint      lipgloss.Style
	valid     lipgloss.Style
	invalid   lipgloss.Style
	err       lipgloss.Style
	warn      lipgloss.Style
	info      lipgloss.Style
	component lipgloss.Style
	guide     lipgloss.Style
}

func defaultFormStyles() formStyles {
	bold := lipgloss.NewStyle().Bold(true)
	return formStyles{
		title:     bold.Foreground(lipgloss.Color("7")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		valid:     bold.Foreground(lipgloss.Color("#2d5016")),
		invalid:   bold.Foreground(lipgloss.Color("#b91c1c")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
		warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309")),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#1e40af")),
		component: lipgloss.NewStyle().Foreground(lipgloss.Color("#0e7490")),
		guide:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

type formModel struct {
	validator *citation.Validator
	input     textinput.Model
	examples  []string
	next      int
	result    *citation.Result
	showCodes bool
	hidden    []diag.Severity
	styles    formStyles
	width     int
	quitting  bool
}

// NewFormModel returns a Bubble Tea model with a citation input line. Enter
// checks the line, Tab loads the next example and checks it, Esc or Ctrl+C
// quits.
func NewFormModel(v *citation.Validator, opts FormOptions) tea.Model {
	in := textinput.New()
	in.Placeholder = "Case Name, Volume Reporter Page (Court Year)."
	in.Prompt = "> "
	in.CharLimit = 512
	in.Width = 76
	in.SetValue(opts.Initial)
	in.Focus()

	m := &formModel{
		validator: v,
		input:     in,
		examples:  opts.Examples,
		showCodes: opts.ShowCodes,
		styles:    defaultFormStyles(),
		width:     80,
	}
	if opts.HideWarnings {
		m.hidden = append(m.hidden, diag.SevWarning)
	}
	if opts.HideInfo {
		m.hidden = append(m.hidden, diag.SevInfo)
	}
	for i, ex := range m.examples {
		if ex == opts.Initial {
			m.next = (i + 1) % len(m.examples)
			break
		}
	}
	return m
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.check()
			return m, nil
		case tea.KeyTab:
			if len(m.examples) > 0 {
				m.input.SetValue(m.examples[m.next])
				m.input.CursorEnd()
				m.next = (m.next + 1) % len(m.examples)
				m.check()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = max(msg.Width-4, 20)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *formModel) check() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	res := m.validator.Validate(text)
	for _, sev := range m.hidden {
		res = res.Without(sev)
	}
	m.result = &res
}

func (m *formModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Bluebook Citation Checker"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render("enter check • tab example • esc quit"))
	b.WriteString("\n\n")
	if m.result != nil {
		b.WriteString(m.renderResult(*m.result))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.guide.Render(citation.Guide))
	b.WriteString("\n")
	return b.String()
}

func (m *formModel) renderResult(res citation.Result) string {
	st := m.styles
	separator := strings.Repeat("=", min(max(m.width-2, 20), 70))

	var b strings.Builder
	b.WriteString(separator + "\n")
	if res.IsValid() {
		b.WriteString(st.valid.Render("✓ VALID FORMAT"))
	} else {
		b.WriteString(st.invalid.Render("✗ FORMAT ISSUES FOUND"))
	}
	b.WriteString("\n" + separator + "\n\n")

	m.section(&b, res, diag.SevError, st.err, "ERRORS:", "*")
	m.section(&b, res, diag.SevWarning, st.warn, "⚠ WARNINGS:", "•")
	m.section(&b, res, diag.SevInfo, st.info, "ℹ INFORMATION:", "•")

	if fields := res.Fields(); len(fields) > 0 {
		b.WriteString(st.component.Bold(true).Render("CITATION COMPONENTS:") + "\n")
		for _, f := range fields {
			if f.Value == "" {
				continue
			}
			b.WriteString(st.component.Render(fmt.Sprintf("  %s: %s", diagfmt.FieldLabel(f.Key), f.Value)) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(separator)
	return b.String()
}

func (m *formModel) section(b *strings.Builder, res citation.Result, sev diag.Severity, st lipgloss.Style, title, bullet string) {
	var lines []string
	for _, d := range res.Diagnostics.Items() {
		if d.Severity != sev {
			continue
		}
		msg := d.Message
		if m.showCodes {
			msg = fmt.Sprintf("%s [%s]", msg, d.Code.ID())
		}
		lines = append(lines, fmt.Sprintf("  %s %s", bullet, msg))
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString(st.Bold(true).Render(title) + "\n")
	for _, l := range lines {
		b.WriteString(st.Render(l) + "\n")
	}
	b.WriteString("\n")
}
