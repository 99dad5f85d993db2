package frequency

import "strings"

// FrequencyMatch is one visit entry serving a postcode district.
type FrequencyMatch struct {
	Day       string          `json:"day"`
	Areas     string          `json:"areas"`
	Postcodes []string        `json:"postcodes"`
	Dates     []FrequencyDate `json:"dates"`
}

// IndexEntry is everything known about one postcode district.
// A district served by several days carries one match per day.
type IndexEntry struct {
	Code           string           `json:"code"`
	FrequencyID    FrequencyID      `json:"frequencyId"`
	FrequencyTitle string           `json:"frequencyTitle"`
	Strapline      string           `json:"strapline"`
	Summary        string           `json:"summary"`
	Matches        []FrequencyMatch `json:"matches"`
}

// Index maps normalized postcode districts to their entries.
type Index map[string]*IndexEntry

// BuildIndex flattens the calendar into a postcode index. Compound tokens
// such as "BS26/BS27" are split, and matches for a district seen on more than
// one day are accumulated.
func BuildIndex(calendar Calendar) Index {
	index := make(Index)

	for _, entry := range calendar {
		for _, day := range entry.Days {
			codes := expandPostcodeTokens(day.Postcodes)
			for _, code := range codes {
				match := FrequencyMatch{
					Day:       day.Day,
					Areas:     day.Areas,
					Postcodes: codes,
					Dates:     day.Dates,
				}

				existing, ok := index[code]
				if !ok {
					index[code] = &IndexEntry{
						Code:           code,
						FrequencyID:    entry.ID,
						FrequencyTitle: entry.Title,
						Strapline:      entry.Strapline,
						Summary:        entry.Summary,
						Matches:        []FrequencyMatch{match},
					}
					continue
				}
				existing.Matches = append(existing.Matches, match)
			}
		}
	}

	return index
}

func expandPostcodeTokens(tokens []string) []string {
	codes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		for _, part := range strings.Split(token, "/") {
			if code := normalizeToken(part); code != "" {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

// Codes returns every district in the index.
func (idx Index) Codes() []string {
	codes := make([]string, 0, len(idx))
	for code := range idx {
		codes = append(codes, code)
	}
	return codes
}
