package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aocsync/internal/adapters/tui/styles"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// CalendarKeyMap defines key bindings for the calendar view
type CalendarKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Open        key.Binding
	Download    key.Binding
	DownloadAll key.Binding
	Regenerate  key.Binding
	CopyPath    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var CalendarKeys = CalendarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous year"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next year"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous day"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next day"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit solution"),
	),
	Download: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "download day"),
	),
	DownloadAll: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "download year"),
	),
	Regenerate: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "regenerate"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy input path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CalendarModel shows one row of 25 days per year
type CalendarModel struct {
	ViewState

	store  ports.WorkspaceStore
	syncer Syncer
	now    func() time.Time

	years   []domain.YearStatus
	yearIdx int
	day     domain.Day
	busy    bool
}

// NewCalendarModel creates a new calendar model
func NewCalendarModel(store ports.WorkspaceStore, syncer Syncer) *CalendarModel {
	return &CalendarModel{
		store:  store,
		syncer: syncer,
		now:    time.Now,
		day:    domain.FirstDay,
	}
}

type statusLoadedMsg struct {
	years []domain.YearStatus
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Init initializes the calendar
func (m *CalendarModel) Init() tea.Cmd {
	return m.loadStatus
}

// Reload reloads the calendar from disk
func (m *CalendarModel) Reload() tea.Cmd {
	return m.loadStatus
}

func (m *CalendarModel) loadStatus() tea.Msg {
	ctx := context.Background()

	years, err := commands.NewStatusCommand(m.store, 0).Execute(ctx)
	if err != nil {
		return errMsg{err}
	}
	if len(years) == 0 {
		// An empty workspace still shows the current event.
		years, err = commands.NewStatusCommand(m.store, domain.CurrentYear(m.now())).Execute(ctx)
		if err != nil {
			return errMsg{err}
		}
	}
	return statusLoadedMsg{years}
}

// Update handles messages for the calendar
func (m *CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case statusLoadedMsg:
		selected := m.selectedYear()
		m.years = msg.years
		m.yearIdx = 0
		for i, y := range m.years {
			if y.Year == selected {
				m.yearIdx = i
			}
		}
		return m, nil

	case errMsg:
		m.busy = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.busy = false
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		if m.busy {
			if key.Matches(msg, CalendarKeys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, CalendarKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, CalendarKeys.Up):
			if m.yearIdx > 0 {
				m.yearIdx--
			}
			return m, nil

		case key.Matches(msg, CalendarKeys.Down):
			if m.yearIdx < len(m.years)-1 {
				m.yearIdx++
			}
			return m, nil

		case key.Matches(msg, CalendarKeys.Left):
			if m.day > domain.FirstDay {
				m.day--
			}
			return m, nil

		case key.Matches(msg, CalendarKeys.Right):
			if m.day < domain.LastDay {
				m.day++
			}
			return m, nil

		case key.Matches(msg, CalendarKeys.Open):
			status, ok := m.selectedDay()
			if !ok || !status.Scaffold {
				m.SetMessage(fmt.Sprintf("No solution for %s yet: press d to download it", m.selectionLabel()), true)
				return m, nil
			}
			path := filepath.Join(m.store.Root(), domain.ScaffoldFile(m.selectedYear(), m.day))
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }

		case key.Matches(msg, CalendarKeys.Download):
			return m, m.download(domain.SingleDay(m.day))

		case key.Matches(msg, CalendarKeys.DownloadAll):
			return m, m.download(domain.AllDays())

		case key.Matches(msg, CalendarKeys.Regenerate):
			m.busy = true
			m.SetMessage("Regenerating...", false)
			return m, func() tea.Msg {
				message, err := m.syncer.Regenerate(context.Background())
				if err != nil {
					return errMsg{err}
				}
				return successMsg{message}
			}

		case key.Matches(msg, CalendarKeys.CopyPath):
			path := filepath.Join(m.store.Root(), domain.InputFile(m.selectedYear(), m.day))
			if err := clipboard.WriteAll(path); err != nil {
				m.SetMessage(fmt.Sprintf("Cannot copy: %v", err), true)
				return m, nil
			}
			m.SetMessage("Copied "+path, false)
			return m, nil

		case key.Matches(msg, CalendarKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *CalendarModel) download(days domain.DayRange) tea.Cmd {
	year := m.selectedYear()
	if year == 0 {
		return nil
	}

	m.busy = true
	m.SetMessage(fmt.Sprintf("Downloading %d %s...", year, days), false)
	return func() tea.Msg {
		message, err := m.syncer.Download(context.Background(), year, days)
		if err != nil {
			return errMsg{err}
		}
		return successMsg{message}
	}
}

func (m *CalendarModel) selectedYear() domain.Year {
	if m.yearIdx < len(m.years) {
		return m.years[m.yearIdx].Year
	}
	return 0
}

func (m *CalendarModel) selectedDay() (domain.DayStatus, bool) {
	if m.yearIdx >= len(m.years) {
		return domain.DayStatus{}, false
	}
	for _, d := range m.years[m.yearIdx].Days {
		if d.Day == m.day {
			return d, true
		}
	}
	return domain.DayStatus{}, false
}

func (m *CalendarModel) selectionLabel() string {
	return fmt.Sprintf("%d day %d", m.selectedYear(), m.day)
}

// View renders the calendar
func (m *CalendarModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Advent of Code"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.store.Root()))
	b.WriteString("\n\n")

	b.WriteString(RenderDayHeader())
	b.WriteString("\n")
	for i, status := range m.years {
		selected := domain.Day(0)
		if i == m.yearIdx {
			selected = m.day
		}
		b.WriteString(RenderYearRow(status, selected))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderLegend())
	b.WriteString("\n\n")

	if m.Message != "" {
		switch {
		case m.busy:
			b.WriteString(styles.StatusBar.Render(m.Message))
		case m.MessageErr:
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		default:
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderHelp())

	return styles.App.Render(b.String())
}

func (m *CalendarModel) renderHelp() string {
	bindings := []key.Binding{
		CalendarKeys.Left,
		CalendarKeys.Up,
		CalendarKeys.Open,
		CalendarKeys.Download,
		CalendarKeys.Regenerate,
		CalendarKeys.Help,
		CalendarKeys.Quit,
	}

	var parts []string
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(h.Key),
			styles.HelpDesc.Render(h.Desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderDayHeader renders the day numbers above the calendar rows, one
// column of two cells per day
func RenderDayHeader() string {
	var b strings.Builder
	b.WriteString(styles.Year.Render(""))
	for d := domain.FirstDay; d <= domain.LastDay; d++ {
		label := " "
		if d%5 == 0 || d == domain.FirstDay {
			label = fmt.Sprint(d % 10)
		}
		b.WriteString(styles.MutedText.Render(label + " "))
	}
	return b.String()
}

// RenderYearRow renders the 25 days of a year. selected is highlighted; 0 selects nothing.
func RenderYearRow(status domain.YearStatus, selected domain.Day) string {
	var b strings.Builder

	yearStyle := styles.Year
	if selected != 0 {
		yearStyle = styles.YearSelected
	}
	b.WriteString(yearStyle.Render(fmt.Sprint(status.Year)))

	for _, d := range status.Days {
		symbol, style := daySymbol(d)
		if d.Day == selected {
			style = styles.DaySelected
		}
		b.WriteString(style.Render(symbol))
		b.WriteString(" ")
	}

	b.WriteString(styles.StatusText.Render(fmt.Sprintf(" %2d/%d", status.Complete(), domain.LastDay)))
	return b.String()
}

// RenderLegend explains the calendar symbols
func RenderLegend() string {
	entries := []struct {
		symbol string
		desc   string
		style  func(...string) string
	}{
		{styles.SymbolReady, "ready", styles.DayReady.Render},
		{styles.SymbolInputOnly, "input only", styles.DayInputOnly.Render},
		{styles.SymbolSourceOnly, "solution without input", styles.DaySourceOnly.Render},
		{styles.SymbolMissing, "missing", styles.DayMissing.Render},
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts, e.style(e.symbol)+" "+styles.HelpDesc.Render(e.desc))
	}
	return strings.Join(parts, "   ")
}

func daySymbol(d domain.DayStatus) (string, lipgloss.Style) {
	switch {
	case d.Input && d.Scaffold:
		return styles.SymbolReady, styles.DayReady
	case d.Input:
		return styles.SymbolInputOnly, styles.DayInputOnly
	case d.Scaffold:
		return styles.SymbolSourceOnly, styles.DaySourceOnly
	default:
		return styles.SymbolMissing, styles.DayMissing
	}
}
