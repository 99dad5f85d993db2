package frequency

import "sort"

// LookupResult is the route detail returned for a matched postcode.
type LookupResult struct {
	Code           string           `json:"code"`
	FrequencyID    FrequencyID      `json:"frequencyId"`
	FrequencyTitle string           `json:"frequencyTitle"`
	Strapline      string           `json:"strapline"`
	Summary        string           `json:"summary"`
	Matches        []FrequencyMatch `json:"matches"`
}

// Directory owns a calendar and the index built from it. It is read-only
// after NewDirectory returns and safe for concurrent use.
type Directory struct {
	calendar  Calendar
	index     Index
	nextDates map[FrequencyID][]FrequencyDate
}

// Statistics summarises the directory for startup logging.
type Statistics struct {
	Frequencies int
	Days        int
	Postcodes   int
}

// NewDirectory builds the postcode index for calendar.
func NewDirectory(calendar Calendar) *Directory {
	return &Directory{
		calendar:  calendar,
		index:     BuildIndex(calendar),
		nextDates: calendar.NextDates(),
	}
}

// FindFrequencyForPostcode resolves free-text postcode input to its route.
// The first candidate with an index entry wins. It returns nil when the
// postcode is not covered.
func (d *Directory) FindFrequencyForPostcode(postcode string) *LookupResult {
	if postcode == "" {
		return nil
	}

	for _, candidate := range PostcodeCandidates(postcode) {
		entry, ok := d.index[candidate]
		if !ok {
			continue
		}

		return &LookupResult{
			Code:           entry.Code,
			FrequencyID:    entry.FrequencyID,
			FrequencyTitle: entry.FrequencyTitle,
			Strapline:      entry.Strapline,
			Summary:        entry.Summary,
			Matches:        dedupeMatches(entry.Matches),
		}
	}

	return nil
}

func dedupeMatches(matches []FrequencyMatch) []FrequencyMatch {
	unique := make([]FrequencyMatch, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, match := range matches {
		key := match.Day + "\x00" + match.Areas
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, match)
	}
	return unique
}

func (d *Directory) Calendar() Calendar {
	return d.calendar
}

func (d *Directory) Index() Index {
	return d.index
}

// Frequency returns the region with the given id.
func (d *Directory) Frequency(id FrequencyID) (FrequencyCalendarEntry, bool) {
	return d.calendar.Find(id)
}

// NextDates returns each region's visit dates in ascending order.
func (d *Directory) NextDates() map[FrequencyID][]FrequencyDate {
	return d.nextDates
}

func (d *Directory) Statistics() Statistics {
	stats := Statistics{
		Frequencies: len(d.calendar),
		Postcodes:   len(d.index),
	}
	for _, entry := range d.calendar {
		stats.Days += len(entry.Days)
	}
	return stats
}

// Postcodes returns the indexed districts sorted alphabetically.
func (d *Directory) Postcodes() []string {
	codes := d.index.Codes()
	sort.Strings(codes)
	return codes
}
