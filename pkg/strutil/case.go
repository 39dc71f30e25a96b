package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	separatorRegex = regexp.MustCompile(`[-_\s]+`)

	// camelCase boundary: underscore between a lower/digit and an upper.
	snakeBoundaryRegex = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	// acronym-then-word boundary: "APIResponse" -> "API_Response".
	acronymBoundaryRegex = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

	dashSpaceRunRegex  = regexp.MustCompile(`[-\s]+`)
	underscoreRunRegex = regexp.MustCompile(`_+`)
)

// Interior words kept lowercase in Title Case, unless first or last.
var titleSmallWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "or": {}, "for": {},
	"nor": {}, "on": {}, "at": {}, "to": {}, "by": {}, "of": {}, "in": {},
	"as": {}, "is": {},
}

// ToCamelCase converts snake_case, kebab-case, space-separated, or PascalCase
// input to camelCase. Words are detected at separators and at lower-to-upper
// transitions; the first word is lowercased, subsequent words capitalized.
func ToCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToSnakeCase converts camelCase, PascalCase, kebab-case, or space-separated
// input to snake_case. Runs of uppercase letters are kept together as a
// single word: "APIResponseHandler" becomes "api_response_handler".
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	s = snakeBoundaryRegex.ReplaceAllString(s, "${1}_${2}")
	s = acronymBoundaryRegex.ReplaceAllString(s, "${1}_${2}")
	s = dashSpaceRunRegex.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	s = underscoreRunRegex.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// ToTitleCase converts input to Title Case. The first and last words are
// always capitalized; interior articles, conjunctions, and short
// prepositions stay lowercase.
func ToTitleCase(s string) string {
	words := splitSeparators(s)
	if len(words) == 0 {
		return ""
	}

	result := make([]string, len(words))
	for i, word := range words {
		lower := strings.ToLower(word)
		if i == 0 || i == len(words)-1 {
			result[i] = capitalize(word)
		} else if _, small := titleSmallWords[lower]; small {
			result[i] = lower
		} else {
			result[i] = capitalize(word)
		}
	}

	return strings.Join(result, " ")
}

// splitSeparators splits on dash, underscore, and whitespace runs,
// dropping empty tokens.
func splitSeparators(s string) []string {
	parts := separatorRegex.Split(s, -1)
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// splitWords splits on separators and additionally at each lower-to-upper
// transition, so "helloWorld" yields ["hello", "World"].
func splitWords(s string) []string {
	var words []string
	for _, part := range splitSeparators(s) {
		runes := []rune(part)
		start := 0
		for i := 1; i < len(runes); i++ {
			if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	return words
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
