package views

import (
	"context"

	"aocsync/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Syncer runs the operations that change the workspace.
// Both return a one-line summary for the status bar.
type Syncer interface {
	Download(ctx context.Context, year domain.Year, days domain.DayRange) (string, error)
	Regenerate(ctx context.Context) (string, error)
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToCalendarMsg struct{}

// OpenEditorMsg asks the app to open a file in the user's editor
type OpenEditorMsg struct {
	Path string
}
