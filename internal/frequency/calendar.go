package frequency

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed calendar.yaml
var defaultCalendarYAML []byte

// FrequencyID identifies one of the fixed service regions.
type FrequencyID string

const (
	FrequencyEast  FrequencyID = "east"
	FrequencyWest  FrequencyID = "west"
	FrequencyNorth FrequencyID = "north"
	FrequencySouth FrequencyID = "south"
)

// ErrDatesOutOfOrder is returned when a day's expanded dates go backwards.
var ErrDatesOutOfOrder = errors.New("dates are not in chronological order")

// FrequencyDay is one weekday's recurring slot within a region.
type FrequencyDay struct {
	Day       string          `json:"day"`
	Postcodes []string        `json:"postcodes"`
	Areas     string          `json:"areas"`
	Dates     []FrequencyDate `json:"dates"`
}

// FrequencyCalendarEntry is a geographic service region and its weekly rotation.
type FrequencyCalendarEntry struct {
	ID        FrequencyID    `json:"id"`
	Title     string         `json:"title"`
	Strapline string         `json:"strapline"`
	Summary   string         `json:"summary"`
	Days      []FrequencyDay `json:"days"`
}

// Calendar is the full route calendar, in authoring order.
type Calendar []FrequencyCalendarEntry

type calendarSource struct {
	Frequencies []frequencySource `yaml:"frequencies" validate:"required,min=1,dive"`
}

type frequencySource struct {
	ID        string      `yaml:"id" validate:"required,oneof=east west north south"`
	Title     string      `yaml:"title" validate:"required"`
	Strapline string      `yaml:"strapline"`
	Summary   string      `yaml:"summary"`
	StartYear int         `yaml:"startYear" validate:"required,gte=2000,lte=2100"`
	Days      []daySource `yaml:"days" validate:"required,min=1,dive"`
}

type daySource struct {
	Day       string   `yaml:"day" validate:"required"`
	Postcodes []string `yaml:"postcodes" validate:"required,min=1,dive,required"`
	Areas     string   `yaml:"areas" validate:"required"`
	Dates     []string `yaml:"dates" validate:"required,min=1,dive,required"`
}

var weekdayNames = map[string]bool{}

func init() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdayNames[d.String()] = true
	}
}

// DefaultCalendar decodes the calendar compiled into the binary.
func DefaultCalendar() (Calendar, error) {
	return ParseCalendar(defaultCalendarYAML)
}

// LoadCalendar reads a calendar from path, or the embedded calendar when path is empty.
func LoadCalendar(path string) (Calendar, error) {
	if path == "" {
		return DefaultCalendar()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calendar file: %w", err)
	}
	return ParseCalendar(data)
}

// ParseCalendar decodes, validates and expands a YAML calendar document.
// Any error here is a data authoring bug and should stop startup.
func ParseCalendar(data []byte) (Calendar, error) {
	var source calendarSource
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&source); err != nil {
		return nil, fmt.Errorf("decoding calendar: %w", err)
	}

	if err := validator.New().Struct(source); err != nil {
		return nil, fmt.Errorf("validating calendar: %w", err)
	}

	seen := make(map[FrequencyID]bool, len(source.Frequencies))
	calendar := make(Calendar, 0, len(source.Frequencies))
	for _, fs := range source.Frequencies {
		id := FrequencyID(fs.ID)
		if seen[id] {
			return nil, fmt.Errorf("duplicate frequency %q", id)
		}
		seen[id] = true

		entry := FrequencyCalendarEntry{
			ID:        id,
			Title:     fs.Title,
			Strapline: fs.Strapline,
			Summary:   strings.TrimSpace(fs.Summary),
			Days:      make([]FrequencyDay, 0, len(fs.Days)),
		}
		for _, ds := range fs.Days {
			day, err := newFrequencyDay(fs.StartYear, ds)
			if err != nil {
				return nil, fmt.Errorf("frequency %q: %w", id, err)
			}
			entry.Days = append(entry.Days, day)
		}
		calendar = append(calendar, entry)
	}

	return calendar, nil
}

func newFrequencyDay(startYear int, source daySource) (FrequencyDay, error) {
	day := cases.Title(language.BritishEnglish).String(strings.TrimSpace(source.Day))
	if !weekdayNames[day] {
		return FrequencyDay{}, fmt.Errorf("unknown weekday %q", source.Day)
	}

	dates, err := BuildDateSeries(startYear, source.Dates)
	if err != nil {
		return FrequencyDay{}, fmt.Errorf("%s dates: %w", day, err)
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].ISO < dates[i-1].ISO {
			return FrequencyDay{}, fmt.Errorf("%s %s: %w", day, dates[i].ISO, ErrDatesOutOfOrder)
		}
	}

	return FrequencyDay{
		Day:       day,
		Postcodes: source.Postcodes,
		Areas:     source.Areas,
		Dates:     dates,
	}, nil
}

// Find returns the calendar entry for id.
func (c Calendar) Find(id FrequencyID) (FrequencyCalendarEntry, bool) {
	for _, entry := range c {
		if entry.ID == id {
			return entry, true
		}
	}
	return FrequencyCalendarEntry{}, false
}

// NextDates maps each region to all of its visit dates in ascending order.
func (c Calendar) NextDates() map[FrequencyID][]FrequencyDate {
	next := make(map[FrequencyID][]FrequencyDate, len(c))
	for _, entry := range c {
		var dates []FrequencyDate
		for _, day := range entry.Days {
			dates = append(dates, day.Dates...)
		}
		sort.SliceStable(dates, func(i, j int) bool {
			return dates[i].ISO < dates[j].ISO
		})
		next[entry.ID] = dates
	}
	return next
}
