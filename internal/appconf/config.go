package appconf

import (
	"os"
	"strconv"
	"strings"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values are treated as production so a typo never exposes the
// debug pages.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev":
		return Development
	case "test":
		return Test
	default:
		return Production
	}
}

// Config holds all the configuration settings for the Application.
// Values come from command-line flags whose defaults are read from the
// environment (optionally populated from a .env file).
type Config struct {
	Port         int
	Env          Environment
	RateLimit    int
	CalendarPath string
	Timezone     string
	LogLevel     string

	// TrustedProxies are addresses or CIDR ranges allowed to set X-Forwarded-For.
	TrustedProxies []string
}

// Defaults returns the configuration used when neither flags nor
// environment variables override it. Development has to be asked for.
func Defaults() Config {
	return Config{
		Port:      4000,
		Env:       Production,
		RateLimit: 10,
		Timezone:  "Europe/London",
		LogLevel:  "info",
	}
}

// FromEnvironment overlays PORT, ENV, RATE_LIMIT, CALENDAR_PATH, TIMEZONE,
// LOG_LEVEL and TRUSTED_PROXIES (comma separated) onto the defaults.
// Malformed numbers and empty values keep the default.
func FromEnvironment() Config {
	cfg := Defaults()

	if v, ok := os.LookupEnv("PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v, ok := os.LookupEnv("ENV"); ok && v != "" {
		cfg.Env = EnvFlagToEnvironment(v)
	}
	if v, ok := os.LookupEnv("RATE_LIMIT"); ok {
		if limit, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit = limit
		}
	}
	if v, ok := os.LookupEnv("CALENDAR_PATH"); ok {
		cfg.CalendarPath = v
	}
	if v, ok := os.LookupEnv("TIMEZONE"); ok && v != "" {
		cfg.Timezone = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TRUSTED_PROXIES"); ok && v != "" {
		cfg.TrustedProxies = SplitList(v)
	}

	return cfg
}

// SplitList splits a comma separated setting, dropping blank items.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
