package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

// config holds the configuration for slug generation.
type config struct {
	separator string
	lowercase bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the separator string for the slug.
// Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		if s != "" {
			c.separator = s
		}
	}
}

// Lowercase controls whether the slug is converted to lowercase.
// Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// transliterator decomposes characters (NFKD) and strips the combining
// marks, turning "é" into "e" and "ü" into "u".
var transliterator = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Make creates a URL-safe slug from the input string. Accented characters
// are transliterated to ASCII, any other non-alphanumeric run becomes a
// single separator, and leading/trailing separators are removed.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if s == "" {
		return ""
	}

	normalized, _, err := transform.String(transliterator, s)
	if err != nil {
		normalized = s
	}

	var b strings.Builder
	b.Grow(len(normalized))

	lastWasSep := true // true from the start to avoid a leading separator
	for _, r := range normalized {
		if r > unicode.MaxASCII {
			continue
		}

		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			continue
		}

		if !lastWasSep {
			b.WriteString(cfg.separator)
			lastWasSep = true
		}
	}

	return strings.TrimSuffix(b.String(), cfg.separator)
}
