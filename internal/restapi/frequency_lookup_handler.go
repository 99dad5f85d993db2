package restapi

import (
	"log/slog"
	"net/http"

	"github.com/brightpane/roundfinder/internal/frequency"
	"github.com/brightpane/roundfinder/internal/logging"
	"github.com/brightpane/roundfinder/internal/models"
	"github.com/brightpane/roundfinder/internal/utils"
)

// frequencyLookupHandler resolves ?postcode= to its round and next visit.
// ?today=YYYY-MM-DD overrides the service calendar day.
func (api *RestAPI) frequencyLookupHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	postcode, fieldErrors := utils.ValidateLookupParams(query.Get("postcode"), query.Get("today"))
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	today := query.Get("today")
	if today == "" {
		today = api.Today()
	}

	result := api.Directory.FindFrequencyForPostcode(postcode)

	logger := logging.FromContext(r.Context())
	if result == nil {
		logging.LogOperation(logger, "frequency_lookup",
			slog.Bool("matched", false),
			slog.String("component", "frequency"))
		api.sendNotFound(w, r)
		return
	}

	logging.LogOperation(logger, "frequency_lookup",
		slog.Bool("matched", true),
		slog.String("code", result.Code),
		slog.String("frequency_id", string(result.FrequencyID)),
		slog.String("component", "frequency"))

	references := models.NewEmptyReferences()
	if entry, ok := api.Directory.Frequency(result.FrequencyID); ok {
		references.Frequencies = append(references.Frequencies, models.NewFrequencyReference(entry))
	}

	lookup := models.NewFrequencyLookup(postcode, today, result)
	api.sendResponse(w, r, models.NewEntryResponse(lookup, references))
}

func (api *RestAPI) postcodeCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	postcode, err := utils.ValidateAndSanitizePostcode(r.URL.Query().Get("postcode"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"postcode": {err.Error()},
		})
		return
	}

	entry := models.PostcodeCandidates{
		Postcode:   postcode,
		Candidates: frequency.PostcodeCandidates(postcode),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}
