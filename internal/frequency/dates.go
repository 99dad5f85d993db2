package frequency

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	isoDateLayout   = "2006-01-02"
	labelDateLayout = "Monday 2 January 2006"
)

// UnknownMonthLabel is returned when a date label uses a month abbreviation
// outside the twelve recognised three-letter forms.
type UnknownMonthLabel string

func (e UnknownMonthLabel) Error() string {
	return fmt.Sprintf("unknown month label: %q", string(e))
}

// ErrInvalidDateLabel is returned for labels that are not "<day> <Mon>".
type ErrInvalidDateLabel string

func (e ErrInvalidDateLabel) Error() string {
	return fmt.Sprintf("invalid date label: %q", string(e))
}

var monthAbbreviations = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// FrequencyDate is one concrete calendar occurrence of a recurring visit.
type FrequencyDate struct {
	ISO   string `json:"iso"`
	Label string `json:"label"`
}

// NewFrequencyDate formats t as a FrequencyDate using its UTC calendar day.
func NewFrequencyDate(t time.Time) FrequencyDate {
	t = t.UTC()
	return FrequencyDate{
		ISO:   t.Format(isoDateLayout),
		Label: t.Format(labelDateLayout),
	}
}

// BuildDateSeries expands "<day> <Mon>" labels into dates starting in startYear.
// The year rolls forward each time the month sequence wraps, so a list running
// from December into January needs no explicit year annotations.
func BuildDateSeries(startYear int, labels []string) ([]FrequencyDate, error) {
	dates := make([]FrequencyDate, 0, len(labels))
	year := startYear
	previousMonth := time.Month(0)

	for _, label := range labels {
		day, month, err := parseDateLabel(label)
		if err != nil {
			return nil, err
		}

		if month < previousMonth {
			year++
		}
		previousMonth = month

		t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day {
			return nil, ErrInvalidDateLabel(label)
		}
		dates = append(dates, NewFrequencyDate(t))
	}

	return dates, nil
}

func parseDateLabel(label string) (int, time.Month, error) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return 0, 0, ErrInvalidDateLabel(label)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, ErrInvalidDateLabel(label)
	}

	month, ok := monthAbbreviations[fields[1]]
	if !ok {
		return 0, 0, UnknownMonthLabel(fields[1])
	}

	return day, month, nil
}
