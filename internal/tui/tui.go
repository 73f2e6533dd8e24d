package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptfind/internal/locator"
	"promptfind/internal/report"
	"promptfind/internal/uri"
)

// Options configures a TUI session.
type Options struct {
	Workspace string
	State     string
	Locations []string
	Exclude   []uri.URI
	// Filter post-processes the located files (glob and gitignore
	// exclusions); nil means no filtering.
	Filter  func([]uri.URI) []uri.URI
	JSONOut string
	MDOut   string
}

type fileFoundMsg struct{ file uri.URI }
type scanDoneMsg struct{ err error }

type model struct {
	loc  *locator.Locator
	opts Options

	events chan tea.Msg
	done   bool

	spin spinner.Model
	vp   viewport.Model

	lines []string
	found []uri.URI

	started    time.Time
	finishedAt time.Time

	byDir bool

	jsonPath string
	mdPath   string
	scanErr  error

	scanCtx    context.Context
	scanCancel context.CancelFunc
}

// Run locates prompt files and presents them interactively.
func Run(loc *locator.Locator, opts Options) error {
	m := &model{loc: loc, opts: opts}
	p := tea.NewProgram(m, tea.WithAltScreen())
	return p.Start()
}

func (m *model) Init() tea.Cmd {
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	m.started = time.Now()
	m.events = make(chan tea.Msg, 64)

	m.startScan()
	return tea.Batch(m.spin.Tick, m.waitForEvent())
}

func (m *model) startScan() {
	if m.scanCancel != nil {
		m.scanCancel()
	}
	m.scanCtx, m.scanCancel = context.WithCancel(context.Background())

	m.lines = append(m.lines, "🔍 Locating prompt files...")
	m.refreshViewport()

	go func(ctx context.Context, out chan<- tea.Msg) {
		files, err := m.loc.ListPromptFiles(ctx, m.opts.Exclude)
		if err == nil && m.opts.Filter != nil {
			files = m.opts.Filter(files)
		}
		for _, f := range files {
			select {
			case <-ctx.Done():
				return
			case out <- fileFoundMsg{file: f}:
			}
		}
		select {
		case <-ctx.Done():
		case out <- scanDoneMsg{err: err}:
		}
	}(m.scanCtx, m.events)
}

func (m *model) waitForEvent() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.scanCancel != nil {
				m.scanCancel()
			}
			return m, tea.Quit
		case "d":
			m.byDir = !m.byDir
			m.refreshViewport()
			return m, nil
		case "r":
			if !m.done {
				return m, nil
			}
			m.done = false
			m.found = nil
			m.lines = []string{"🔄 Rescan triggered"}
			m.started = time.Now()
			m.finishedAt = time.Time{}
			m.scanErr = nil
			m.vp.SetContent("")
			m.vp.GotoTop()
			m.startScan()
			return m, m.waitForEvent()
		}
	case tea.WindowSizeMsg:
		// Reserve space for header (1), stats (1), spacer (1), footer (1)
		reserved := 4
		if m.vp.Width == 0 {
			m.vp = viewport.Model{Width: msg.Width, Height: max(msg.Height-reserved, 3)}
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = max(msg.Height-reserved, 3)
		}
		m.refreshViewport()
		return m, nil
	case fileFoundMsg:
		m.found = append(m.found, msg.file)
		m.lines = append(m.lines, fmt.Sprintf("📄 %s", msg.file.Path()))
		m.refreshViewport()
		return m, m.waitForEvent()
	case scanDoneMsg:
		m.done = true
		m.finishedAt = time.Now()
		m.scanErr = msg.err
		if msg.err != nil {
			m.lines = append(m.lines, fmt.Sprintf("❌ %v", msg.err))
		} else {
			m.lines = append(m.lines, fmt.Sprintf("✅ Found %d prompt files", len(m.found)))
			m.writeJSON()
			m.writeMarkdown()
		}
		m.refreshViewport()
		return m, m.waitForEvent()
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m *model) refreshViewport() {
	if m.byDir {
		var grouped []string
		var dirs []string
		byDir := make(map[string]int)
		for _, f := range m.found {
			dir := f.Dirname().Path()
			if _, ok := byDir[dir]; !ok {
				dirs = append(dirs, dir)
			}
			byDir[dir]++
		}
		for _, d := range dirs {
			grouped = append(grouped, fmt.Sprintf("📁 %s (%d)", d, byDir[d]))
		}
		m.vp.SetContent(strings.Join(grouped, "\n"))
		m.vp.GotoTop()
		return
	}
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

func (m *model) writeJSON() {
	path := m.opts.JSONOut
	if strings.TrimSpace(path) == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	type entry struct {
		Name string `json:"name"`
		Path string `json:"path"`
		Dir  string `json:"dir"`
	}
	entries := make([]entry, 0, len(m.found))
	for _, u := range m.found {
		entries = append(entries, entry{Name: u.Basename(), Path: u.Path(), Dir: u.Dirname().Path()})
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	_ = enc.Encode(entries)
	m.jsonPath = path
}

func (m *model) writeMarkdown() {
	if strings.TrimSpace(m.opts.MDOut) == "" {
		return
	}
	s := report.Summary{
		Workspace:  m.opts.Workspace,
		State:      m.opts.State,
		Locations:  m.opts.Locations,
		StartedAt:  m.started,
		FinishedAt: m.finishedAt,
		Found:      len(m.found),
		JSONPath:   m.jsonPath,
	}
	if p, err := report.WriteMarkdown(m.opts.MDOut, m.found, s); err == nil {
		m.mdPath = p
	}
}

func (m *model) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(" Prompt files in %s ", m.opts.Workspace))
	if m.done {
		dur := time.Since(m.started)
		if !m.finishedAt.IsZero() {
			dur = m.finishedAt.Sub(m.started)
		}
		summary := []string{
			fmt.Sprintf("Duration: %s", dur.Truncate(time.Millisecond)),
			fmt.Sprintf("Found: %d", len(m.found)),
		}
		if m.scanErr != nil {
			summary = append(summary, fmt.Sprintf("Error: %v", m.scanErr))
		}
		if m.jsonPath != "" {
			summary = append(summary, fmt.Sprintf("JSON: %s", m.jsonPath))
		}
		if m.mdPath != "" {
			summary = append(summary, fmt.Sprintf("Markdown: %s", m.mdPath))
		}
		footer := lipgloss.NewStyle().Faint(true).Render("Controls: [q] quit  [d] group by folder  [r] rescan")
		container := lipgloss.NewStyle().Padding(1)
		parts := append([]string{header}, summary...)
		parts = append(parts, m.vp.View(), footer)
		return container.Render(strings.Join(parts, "\n"))
	}
	stats := fmt.Sprintf("%s found:%d", m.spin.View(), len(m.found))
	footer := lipgloss.NewStyle().Faint(true).Render("Controls: [q] quit  [d] group by folder")
	container := lipgloss.NewStyle().Padding(1)
	return container.Render(strings.Join([]string{header, stats, "", m.vp.View(), footer}, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
