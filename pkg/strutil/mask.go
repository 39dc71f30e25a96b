package strutil

import "strings"

// MaskOption configures masking behavior.
type MaskOption func(*maskConfig)

type maskConfig struct {
	visibleChars int
	maskChar     string
}

// VisibleChars sets how many trailing characters stay visible. Default is 4.
func VisibleChars(n int) MaskOption {
	return func(c *maskConfig) {
		if n >= 0 {
			c.visibleChars = n
		}
	}
}

// MaskChar sets the masking character. Default is "*".
func MaskChar(ch string) MaskOption {
	return func(c *maskConfig) {
		if ch != "" {
			c.maskChar = ch
		}
	}
}

// MaskSensitive replaces all but the trailing visible characters of s with
// the mask character. Strings of three characters or fewer, or shorter than
// the visible window, are returned unchanged.
func MaskSensitive(s string, opts ...MaskOption) string {
	cfg := &maskConfig{visibleChars: 4, maskChar: "*"}
	for _, opt := range opts {
		opt(cfg)
	}

	runes := []rune(s)
	if len(runes) <= 3 || cfg.visibleChars >= len(runes) {
		return s
	}

	masked := len(runes) - cfg.visibleChars
	return strings.Repeat(cfg.maskChar, masked) + string(runes[masked:])
}
