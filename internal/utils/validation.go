package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Compiled regular expressions for validation
var (
	// Frequency ids are short lowercase slugs.
	validIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const maxPostcodeLength = 16

// ValidatePostcode checks free-text postcode input before it is looked up.
// Punctuation is left alone: candidate derivation strips it, and input that
// still matches nothing is a 404, not a 400. Spaces do not count towards the
// length limit.
func ValidatePostcode(postcode string) error {
	compact := strings.Join(strings.Fields(postcode), "")
	if compact == "" {
		return errors.New("postcode is required")
	}

	if utf8.RuneCountInString(compact) > maxPostcodeLength {
		return errors.New("postcode too long (max 16 characters)")
	}

	return nil
}

// ValidateID validates that a frequency id is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 32 {
		return errors.New("id too long (max 32 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format
func ValidateDate(date string) error {
	// Empty dates are allowed (will default to current date)
	if date == "" {
		return nil
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizePostcode sanitizes then validates a postcode query.
func ValidateAndSanitizePostcode(postcode string) (string, error) {
	sanitized := SanitizeInput(postcode)
	if err := ValidatePostcode(sanitized); err != nil {
		return "", err
	}
	return sanitized, nil
}

// ValidateLookupParams validates the query parameters of a postcode lookup.
func ValidateLookupParams(postcode, today string) (string, map[string][]string) {
	fieldErrors := make(map[string][]string)

	sanitized, err := ValidateAndSanitizePostcode(postcode)
	if err != nil {
		fieldErrors["postcode"] = append(fieldErrors["postcode"], err.Error())
	}

	if err := ValidateDate(today); err != nil {
		fieldErrors["today"] = append(fieldErrors["today"], err.Error())
	}

	return sanitized, fieldErrors
}
