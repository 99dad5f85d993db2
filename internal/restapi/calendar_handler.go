package restapi

import (
	"net/http"

	"github.com/brightpane/roundfinder/internal/frequency"
	"github.com/brightpane/roundfinder/internal/models"
	"github.com/brightpane/roundfinder/internal/utils"
)

func (api *RestAPI) calendarHandler(w http.ResponseWriter, r *http.Request) {
	calendar := api.Directory.Calendar()

	list := make([]models.Frequency, 0, len(calendar))
	for _, entry := range calendar {
		list = append(list, models.NewFrequency(entry))
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}

func (api *RestAPI) frequencyHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	entry, ok := api.Directory.Frequency(frequency.FrequencyID(id))
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewFrequency(entry), models.NewEmptyReferences()))
}

// nextDatesHandler lists each region's dates from ?today= (default: the
// service calendar day) onwards.
func (api *RestAPI) nextDatesHandler(w http.ResponseWriter, r *http.Request) {
	today := r.URL.Query().Get("today")
	if err := utils.ValidateDate(today); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"today": {err.Error()},
		})
		return
	}
	if today == "" {
		today = api.Today()
	}

	calendar := api.Directory.Calendar()
	nextDates := api.Directory.NextDates()

	list := make([]models.FrequencyNextDates, 0, len(calendar))
	references := models.NewEmptyReferences()
	for _, entry := range calendar {
		list = append(list, models.NewFrequencyNextDates(entry.ID, nextDates[entry.ID], today))
		references.Frequencies = append(references.Frequencies, models.NewFrequencyReference(entry))
	}

	api.sendResponse(w, r, models.NewListResponse(list, references))
}
