package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"aocsync/internal/adapters/tui/views"
	"aocsync/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCalendar ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state    ViewState
	calendar *views.CalendarModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil, in which case
// solutions cannot be opened from the calendar.
func NewApp(store ports.WorkspaceStore, syncer views.Syncer, ed ports.EditorOpener) *App {
	return &App{
		editor:   ed,
		state:    ViewCalendar,
		calendar: views.NewCalendarModel(store, syncer),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.calendar.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.calendar.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToCalendarMsg:
		a.state = ViewCalendar
		return a, a.calendar.Reload()

	case views.OpenEditorMsg:
		a.state = ViewCalendar
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.calendar.SetMessage(msg.err.Error(), true)
		}
		return a, a.calendar.Reload()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewCalendar:
		_, cmd = a.calendar.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.calendar.View()
	}
}

// Run starts the TUI on the alternate screen and blocks until it exits
func Run(ctx context.Context, app *App) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
