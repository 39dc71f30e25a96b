package validate

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrUnsupportedCountry is returned when IsPhone is asked about a country
// that has no pattern in the table.
var ErrUnsupportedCountry = errors.New("unsupported country code")

var phoneFormattingRegex = regexp.MustCompile(`[\s\-().]`)

// Per-country digit-count and prefix patterns, applied after formatting
// characters are stripped. ISO 3166-1 alpha-2 keys.
var phonePatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^(\+1)?[2-9]\d{9}$`),
	"UK": regexp.MustCompile(`^(\+44)?[1-9]\d{9,10}$`),
	"DE": regexp.MustCompile(`^(\+49)?[1-9]\d{9,13}$`),
}

// IsPhone reports whether s is a valid phone number for the given country.
// Formatting characters (spaces, dashes, parentheses, dots) are stripped
// before matching. An unknown country code returns ErrUnsupportedCountry.
func IsPhone(s, country string) (bool, error) {
	pattern, ok := phonePatterns[country]
	if !ok {
		supported := make([]string, 0, len(phonePatterns))
		for code := range phonePatterns {
			supported = append(supported, code)
		}
		sort.Strings(supported)
		return false, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedCountry, country, strings.Join(supported, ", "))
	}

	if s == "" {
		return false, nil
	}

	cleaned := phoneFormattingRegex.ReplaceAllString(s, "")
	return pattern.MatchString(cleaned), nil
}
