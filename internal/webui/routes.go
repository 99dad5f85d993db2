package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/brightpane/roundfinder/internal/appconf"
)

// SetWebUIRoutes registers the debug pages. They are never exposed in production.
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	if webUI.Config.Env == appconf.Production {
		return
	}
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
