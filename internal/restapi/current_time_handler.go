package restapi

import (
	"net/http"

	"github.com/brightpane/roundfinder/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	entry := models.NewCurrentTimeModel(api.Now())
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}
