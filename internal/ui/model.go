package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/wrenfell/filesource/internal/filesystem"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// cursorStyle defines the style for the selected listing row.
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// dirStyle defines the style for directory rows.
	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A78BFA"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// Entry is a single row of the browser listing.
type Entry struct {
	Path  string
	Name  string
	Size  int64
	IsDir bool
}

// dirLoadedMsg is a [tea.Msg] carrying a freshly enumerated directory.
type dirLoadedMsg struct {
	path    string
	entries []Entry
	usage   filesystem.DiskStats
}

// dirErrorMsg is a [tea.Msg] carrying a failed directory enumeration.
type dirErrorMsg struct {
	path string
	err  error
}

// TeaModel is the principal [tea.Model] for the asset browser.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *Handler
	assets    assetProvider
	stats     statProvider

	cwd     string
	entries []Entry
	cursor  int
	usage   filesystem.DiskStats
	status  string

	logsViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel], rooted at the given path.
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, assets assetProvider, stats statProvider, root string, cancel context.CancelFunc) TeaModel {
	logsViewport := viewport.New(80, 10)

	return TeaModel{
		uiHandler:    uiHandler,
		assets:       assets,
		stats:        stats,
		cwd:          root,
		logsViewport: logsViewport,
		logs:         make([]string, 0, 100),
		cancel:       cancel,
		ready:        false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		loadDirectory(m.assets, m.stats, m.cwd),
	)
}

// loadDirectory produces a [tea.Cmd] for later scheduling in a
// [tea.Program]. When executed, the directory at the given path is
// enumerated through the capability interface and returned as either a
// [dirLoadedMsg] or a [dirErrorMsg].
func loadDirectory(assets assetProvider, stats statProvider, path string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		listing, err := assets.ReadDirectory(ctx, path)
		if err != nil {
			return dirErrorMsg{path: path, err: err}
		}

		entries := make([]Entry, 0, listing.Remaining())
		for {
			childPath, ok := listing.Next()
			if !ok {
				break
			}

			entry := Entry{
				Path: childPath,
				Name: filepath.Base(childPath),
			}

			// Entries vanishing mid-enumeration keep their zero metadata.
			if metadata, err := stats.GetMetadata(childPath); err == nil {
				entry.Size = metadata.Size
				entry.IsDir = metadata.IsDir
			}

			entries = append(entries, entry)
		}

		sort.Slice(entries, func(i, j int) bool {
			if entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir
			}

			return entries[i].Name < entries[j].Name
		})

		usage, _ := stats.GetDiskUsage(path)

		return dirLoadedMsg{path: path, entries: entries, usage: usage}
	}
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter", "right", "l":
			if m.cursor < len(m.entries) && m.entries[m.cursor].IsDir {
				return m, loadDirectory(m.assets, m.stats, m.entries[m.cursor].Path)
			}
		case "backspace", "left", "h":
			parent := filepath.Dir(m.cwd)
			if parent != m.cwd {
				return m, loadDirectory(m.assets, m.stats, parent)
			}
		case "r":
			return m, loadDirectory(m.assets, m.stats, m.cwd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.logsViewport.Width = m.width - 2
		m.logsViewport.Height = max(m.height/4, 3)

		if len(m.logs) > 0 {
			m.refreshLogsViewport()
		}

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case dirLoadedMsg:
		m.cwd = msg.path
		m.entries = msg.entries
		m.usage = msg.usage
		m.cursor = 0
		m.status = ""

	case dirErrorMsg:
		m.status = fmt.Sprintf("cannot enumerate %s: %v", msg.path, msg.err)

	case LogMsg:
		if len(m.logs) >= 100 {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, string(msg))

		m.refreshLogsViewport()
	}

	// Handle viewport updates.
	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshLogsViewport re-renders the collected logs into the viewport.
func (m *TeaModel) refreshLogsViewport() {
	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the browser..."
	}

	var s strings.Builder

	fullWidth := m.width - 2

	title := fmt.Sprintf("%s (%s free of %s)",
		m.cwd,
		humanize.Bytes(uint64(max(m.usage.FreeSpace, 0))),
		humanize.Bytes(uint64(max(m.usage.TotalSize, 0))),
	)

	listingSection := borderStyle.
		Width(fullWidth).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(fullWidth).Render(title),
				lipgloss.NewStyle().Width(fullWidth).Render(m.formatListingView()),
			),
		)

	logsSection := borderStyle.
		Width(fullWidth).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(fullWidth).Render("Process Information"),
				lipgloss.NewStyle().Width(fullWidth).Render(m.logsViewport.View()),
			),
		)

	helpLine := "enter: open • backspace: up • r: reload • q: quit browser • ctrl+c: quit program"
	if m.status != "" {
		helpLine = m.status
	}

	helpSection := helpStyle.
		Width(fullWidth).
		Render(helpLine)

	s.WriteString(lipgloss.JoinVertical(
		lipgloss.Left,
		listingSection,
		logsSection,
		helpSection,
	))

	return s.String()
}

// formatListingView is a helper function for rendering the listing rows
// visible around the cursor.
//
//nolint:mnd
func (m TeaModel) formatListingView() string {
	if len(m.entries) == 0 {
		return "(empty directory)"
	}

	visible := max(m.height/2, 5)

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	end := min(start+visible, len(m.entries))

	var rows []string
	for i := start; i < end; i++ {
		entry := m.entries[i]

		label := entry.Name
		if entry.IsDir {
			label += "/"
		} else {
			label = fmt.Sprintf("%s (%s)", label, humanize.Bytes(uint64(max(entry.Size, 0))))
		}

		switch {
		case i == m.cursor:
			rows = append(rows, cursorStyle.Render("> "+label))
		case entry.IsDir:
			rows = append(rows, dirStyle.Render("  "+label))
		default:
			rows = append(rows, "  "+label)
		}
	}

	return strings.Join(rows, "\n")
}
