package webui

import "github.com/brightpane/roundfinder/internal/app"

// WebUI serves the operator-facing debug pages.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
