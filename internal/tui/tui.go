package tui

import (
	"fmt"
	"strings"

	"devsync/internal/scan"
	"devsync/internal/search"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents which screen is active.
type ViewState int

const (
	ViewScanning ViewState = iota
	ViewSearch
)

// Config holds configuration passed from the CLI layer.
type Config struct {
	// Root is the directory being scanned, shown on the scanning screen.
	Root string
	// Scan runs the extraction phase. It executes in a background tea.Cmd
	// so the spinner stays live while summaries are generated.
	Scan func() ([]scan.FileRecord, error)
}

// Model is the top-level Bubble Tea model: a scanning screen with a spinner,
// then an interactive exact-match symbol search over the records.
type Model struct {
	state  ViewState
	config Config
	width  int
	height int

	spinner spinner.Model
	input   textinput.Model

	records []scan.FileRecord
	results []scan.FileRecord
	cursor  int
	err     error
}

// scanDoneMsg is sent when the background scan completes.
type scanDoneMsg struct {
	records []scan.FileRecord
	err     error
}

// New creates a new TUI model with the given config.
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	ti := textinput.New()
	ti.Placeholder = "Exact class or function name..."
	ti.CharLimit = 200

	return Model{
		state:   ViewScanning,
		config:  cfg,
		spinner: sp,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runScan(m.config))
}

func runScan(cfg Config) tea.Cmd {
	return func() tea.Msg {
		records, err := cfg.Scan()
		return scanDoneMsg{records: records, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case scanDoneMsg:
		m.err = msg.err
		m.records = msg.records
		if msg.err == nil {
			m.state = ViewSearch
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == ViewScanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}

		if m.state == ViewSearch {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.results = search.Matching(m.records, strings.TrimSpace(m.input.Value()))
			if m.cursor >= len(m.results) {
				m.cursor = 0
			}
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	s := "\n"
	s += titleStyle.Render("  ◆ DevSync") + "\n"
	s += subtitleStyle.Render("  AI-powered codebase summaries and symbol search") + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
		s += helpStyle.Render("  Press esc to quit") + "\n"
		return s
	}

	switch m.state {
	case ViewScanning:
		s += fmt.Sprintf("  %s Scanning %s...\n\n", m.spinner.View(), m.config.Root)
		s += dimStyle.Render("  Generating summaries may take a while...") + "\n"

	case ViewSearch:
		s += "  " + m.input.View() + "\n\n"
		s += m.viewResults()
		s += "\n" + helpStyle.Render("  ↑/↓ select · esc quit") + "\n"
	}

	return s
}

func (m Model) viewResults() string {
	term := strings.TrimSpace(m.input.Value())
	if term == "" {
		return dimStyle.Render(fmt.Sprintf("  %d files scanned. Type a symbol name to search.", len(m.records))) + "\n"
	}
	if len(m.results) == 0 {
		return dimStyle.Render(fmt.Sprintf("  `%s` not found in the codebase.", term)) + "\n"
	}

	var b strings.Builder
	for i, rec := range m.results {
		line := fmt.Sprintf("%s  (%d classes, %d functions)", rec.Path, len(rec.Classes), len(rec.Functions))
		if i == m.cursor {
			b.WriteString("  " + selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + listItemStyle.Render("  "+line) + "\n")
		}
	}

	// Detail pane for the selected record.
	if m.cursor < len(m.results) {
		rec := m.results[m.cursor]
		b.WriteString("\n")
		if len(rec.Classes) > 0 {
			b.WriteString(dimStyle.Render("  Classes:   "+strings.Join(rec.Classes, ", ")) + "\n")
		}
		if len(rec.Functions) > 0 {
			b.WriteString(dimStyle.Render("  Functions: "+strings.Join(rec.Functions, ", ")) + "\n")
		}
		b.WriteString(dimStyle.Render("  Summary:   "+rec.Summary) + "\n")
	}

	return b.String()
}

// Run starts the TUI program.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
