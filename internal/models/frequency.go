package models

import "github.com/brightpane/roundfinder/internal/frequency"

// FrequencyLookup is the entry returned for a postcode lookup.
type FrequencyLookup struct {
	Postcode       string                     `json:"postcode"`
	Today          string                     `json:"today"`
	Code           string                     `json:"code"`
	FrequencyID    string                     `json:"frequencyId"`
	FrequencyTitle string                     `json:"frequencyTitle"`
	Matches        []frequency.FrequencyMatch `json:"matches"`
	NextVisit      *frequency.Visit           `json:"nextVisit"`
}

func NewFrequencyLookup(postcode, today string, result *frequency.LookupResult) FrequencyLookup {
	return FrequencyLookup{
		Postcode:       postcode,
		Today:          today,
		Code:           result.Code,
		FrequencyID:    string(result.FrequencyID),
		FrequencyTitle: result.FrequencyTitle,
		Matches:        result.Matches,
		NextVisit:      frequency.NextVisit(result, today),
	}
}

// PostcodeCandidates lists the lookup keys derived from raw input.
type PostcodeCandidates struct {
	Postcode   string   `json:"postcode"`
	Candidates []string `json:"candidates"`
}

// Frequency is a region with its full visit rotation.
type Frequency struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Strapline string                   `json:"strapline"`
	Summary   string                   `json:"summary"`
	Days      []frequency.FrequencyDay `json:"days"`
}

func NewFrequency(entry frequency.FrequencyCalendarEntry) Frequency {
	return Frequency{
		ID:        string(entry.ID),
		Title:     entry.Title,
		Strapline: entry.Strapline,
		Summary:   entry.Summary,
		Days:      entry.Days,
	}
}

// FrequencyNextDates lists a region's dates on or after a given day.
type FrequencyNextDates struct {
	FrequencyID string                    `json:"frequencyId"`
	Dates       []frequency.FrequencyDate `json:"dates"`
}

// NewFrequencyNextDates keeps the dates on or after today. The full list is
// returned when every date is in the past, matching next-visit selection.
func NewFrequencyNextDates(id frequency.FrequencyID, dates []frequency.FrequencyDate, today string) FrequencyNextDates {
	upcoming := make([]frequency.FrequencyDate, 0, len(dates))
	for _, date := range dates {
		if date.ISO >= today {
			upcoming = append(upcoming, date)
		}
	}
	if len(upcoming) == 0 {
		upcoming = append(upcoming, dates...)
	}

	return FrequencyNextDates{
		FrequencyID: string(id),
		Dates:       upcoming,
	}
}
