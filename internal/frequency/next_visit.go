package frequency

import "sort"

// Visit is a dated occurrence of a particular weekday slot.
type Visit struct {
	Date FrequencyDate `json:"date"`
	Day  string        `json:"day"`
}

// Visits flattens the match's dates into visits.
func (m FrequencyMatch) Visits() []Visit {
	visits := make([]Visit, 0, len(m.Dates))
	for _, date := range m.Dates {
		visits = append(visits, Visit{Date: date, Day: m.Day})
	}
	return visits
}

// Visits flattens every match into a single list of visits.
func (r *LookupResult) Visits() []Visit {
	if r == nil {
		return nil
	}
	var visits []Visit
	for _, match := range r.Matches {
		visits = append(visits, match.Visits()...)
	}
	return visits
}

// NextVisit picks the next visit on or after today (YYYY-MM-DD) across all of
// the result's matches.
func NextVisit(result *LookupResult, today string) *Visit {
	return NextVisitIn(result.Visits(), today)
}

// NextVisitIn returns the earliest visit on or after today. When every visit
// is in the past it returns the earliest visit instead, and nil when there are
// none.
// TODO: flag stale fallbacks to callers once the site can show "schedule
// being updated" instead of a past date.
func NextVisitIn(visits []Visit, today string) *Visit {
	if len(visits) == 0 {
		return nil
	}

	sorted := make([]Visit, len(visits))
	copy(sorted, visits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.ISO < sorted[j].Date.ISO
	})

	for i := range sorted {
		if sorted[i].Date.ISO >= today {
			return &sorted[i]
		}
	}
	return &sorted[0]
}
