package frequency

import (
	"regexp"
	"strings"
	"unicode"
)

// 1-2 letters then 1-2 digits. Matches "BA5" in "BA51AA" as "BA51"; the
// trailing-digit fallback recovers "BA5".
var outwardCodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{1,2}`)

// PostcodeCandidates derives the ordered lookup keys for free-text postcode
// input. Earlier candidates are more specific and win ties.
func PostcodeCandidates(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	upper := strings.ToUpper(trimmed)
	var ordered []string

	ordered = append(ordered, upper)
	ordered = append(ordered, stripWhitespace(upper))

	if segments := strings.Fields(upper); len(segments) > 0 {
		ordered = append(ordered, stripNonAlphanumeric(segments[0]))
	}

	if outward := outwardCodePattern.FindString(stripNonAlphanumeric(upper)); outward != "" {
		ordered = append(ordered, outward)
		if last := outward[len(outward)-1]; last >= '0' && last <= '9' {
			ordered = append(ordered, outward[:len(outward)-1])
		}
	}

	candidates := make([]string, 0, len(ordered))
	seen := make(map[string]bool, len(ordered))
	for _, candidate := range ordered {
		candidate = normalizeToken(candidate)
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
	}
	return candidates
}

// normalizeToken strips all whitespace and uppercases.
func normalizeToken(token string) string {
	return strings.ToUpper(stripWhitespace(token))
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func stripNonAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}
