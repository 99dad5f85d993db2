package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/brightpane/roundfinder/internal/app"
	"github.com/brightpane/roundfinder/internal/appconf"
	"github.com/brightpane/roundfinder/internal/frequency"
	"github.com/brightpane/roundfinder/internal/logging"
	"github.com/brightpane/roundfinder/internal/restapi"
	"github.com/brightpane/roundfinder/internal/webui"
)

// buildApplication loads the calendar, builds the postcode directory and
// resolves the service timezone. Failures are logged before returning.
func buildApplication(cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	calendar, err := frequency.LoadCalendar(cfg.CalendarPath)
	if err != nil {
		return nil, logging.StartupError(logger, "failed to load calendar", err,
			slog.String("path", cfg.CalendarPath))
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, logging.StartupError(logger, "failed to load timezone", err,
			slog.String("timezone", cfg.Timezone))
	}

	directory := frequency.NewDirectory(calendar)
	stats := directory.Statistics()
	logging.LogOperation(logger, "directory_built",
		slog.Int("frequencies", stats.Frequencies),
		slog.Int("days", stats.Days),
		slog.Int("postcodes", stats.Postcodes),
		slog.String("env", cfg.Env.String()),
		slog.String("component", "startup"))

	return &app.Application{
		Config:    cfg,
		Logger:    logger,
		Directory: directory,
		Location:  location,
	}, nil
}

// newHandler wires the API and, outside production, the debug pages onto one
// router behind the API middleware chain.
func newHandler(coreApp *app.Application) (*restapi.RestAPI, http.Handler) {
	api := restapi.NewRestAPI(coreApp)

	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(coreApp).SetWebUIRoutes(router)

	return api, api.Middleware(router)
}
