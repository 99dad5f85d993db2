package webui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/brightpane/roundfinder/internal/logging"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var debugDataTypes = []string{"calendar", "index", "nextDates", "postcodes", "statistics"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: debugDataTypes,
	})
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render debug page", err,
			slog.String("component", "webui"))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	directory := webUI.Directory

	switch dataType {
	case "calendar":
		data = directory.Calendar()
		title = "Frequency Calendar"
	case "index":
		data = directory.Index()
		title = "Postcode Index"
	case "nextDates":
		data = directory.NextDates()
		title = "Next Dates by Frequency"
	case "postcodes":
		data = directory.Postcodes()
		title = "Indexed Postcodes"
	case "statistics":
		data = directory.Statistics()
		title = "Directory Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: calendar, index, nextDates, postcodes, statistics.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}
