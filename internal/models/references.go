package models

import "github.com/brightpane/roundfinder/internal/frequency"

// FrequencyReference identifies a region without its visit days.
type FrequencyReference struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Strapline string `json:"strapline"`
	Summary   string `json:"summary"`
}

func NewFrequencyReference(entry frequency.FrequencyCalendarEntry) FrequencyReference {
	return FrequencyReference{
		ID:        string(entry.ID),
		Title:     entry.Title,
		Strapline: entry.Strapline,
		Summary:   entry.Summary,
	}
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	Frequencies []FrequencyReference `json:"frequencies"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Frequencies: []FrequencyReference{},
	}
}
