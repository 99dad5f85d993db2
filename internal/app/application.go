package app

import (
	"log/slog"
	"time"

	"github.com/brightpane/roundfinder/internal/appconf"
	"github.com/brightpane/roundfinder/internal/frequency"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Directory *frequency.Directory
	// Location decides which calendar day "today" is. Nil means UTC.
	Location *time.Location
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Now returns the current time in the application's location.
func (app *Application) Now() time.Time {
	now := time.Now
	if app.Clock != nil {
		now = app.Clock
	}

	loc := app.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Today returns the current calendar date as YYYY-MM-DD.
func (app *Application) Today() string {
	return app.Now().Format("2006-01-02")
}
