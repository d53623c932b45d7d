package widget

import (
	"context"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/presentation/display"
)

// TimelineSource produces the entries shown by the widget
type TimelineSource interface {
	Placeholder() model.Entry
	TimelineAsync(ctx context.Context, intent model.Intent) <-chan model.Timeline
}

// IntentStore keeps the host configuration
type IntentStore interface {
	Path() string
	Load() model.Intent
	SetShowText(show bool) (model.Intent, error)
}

// DisplayController draws frames on the terminal
type DisplayController interface {
	EnterAlternateScreen()
	ExitAlternateScreen()
	Render(frame display.Frame)
}
