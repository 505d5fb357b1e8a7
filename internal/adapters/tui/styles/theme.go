package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Gold      = lipgloss.Color("#FACC15")
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Calendar cells
	Year = lipgloss.NewStyle().
		Bold(true).
		Width(6)

	YearSelected = Year.
			Foreground(Primary)

	// DayReady has both an input and a solution package
	DayReady = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	// DayInputOnly has an input that was never scaffolded
	DayInputOnly = lipgloss.NewStyle().
			Foreground(Warning)

	// DaySourceOnly has a solution package but no input; the year will not build
	DaySourceOnly = lipgloss.NewStyle().
			Foreground(Error)

	DayMissing = lipgloss.NewStyle().
			Foreground(Muted)

	DaySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Calendar symbols
	SymbolReady      = "★"
	SymbolInputOnly  = "◆"
	SymbolSourceOnly = "◇"
	SymbolMissing    = "·"

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	SectionLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
