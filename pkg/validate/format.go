package validate

import (
	"regexp"
	"strings"
)

var (
	// Simplified RFC 5322 pattern: local part, @, domain labels, TLD of 2+ letters.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Pre-compiled matcher for the default scheme set.
	defaultURLRegex = regexp.MustCompile(urlPattern([]string{"http", "https", "ftp"}))
)

// IsEmail reports whether s looks like a valid email address.
// Format check only; it does not verify that the mailbox or domain exists.
func IsEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailRegex.MatchString(s)
}

// URLOption configures URL validation behavior.
type URLOption func(*urlConfig)

type urlConfig struct {
	schemes []string
}

// Schemes restricts validation to the given URL schemes.
// Default is http, https, and ftp.
func Schemes(schemes ...string) URLOption {
	return func(c *urlConfig) {
		if len(schemes) > 0 {
			c.schemes = schemes
		}
	}
}

// IsURL reports whether s is a well-formed URL with an allowed scheme.
// The host must consist of valid labels (no leading/trailing hyphens), may
// carry a port, and may be followed by a path. Accessibility of the URL is
// not checked.
func IsURL(s string, opts ...URLOption) bool {
	if s == "" {
		return false
	}

	cfg := &urlConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.schemes == nil {
		return defaultURLRegex.MatchString(s)
	}

	re, err := regexp.Compile(urlPattern(cfg.schemes))
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// urlPattern builds the host/port/path matcher for the given scheme set.
func urlPattern(schemes []string) string {
	escaped := make([]string, len(schemes))
	for i, scheme := range schemes {
		escaped[i] = regexp.QuoteMeta(scheme)
	}

	return `^(` + strings.Join(escaped, "|") + `)://` +
		`[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?` +
		`(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*` +
		`(:\d+)?` +
		`(/[^\s]*)?$`
}
