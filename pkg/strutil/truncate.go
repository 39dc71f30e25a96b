package strutil

import (
	"errors"
	"fmt"
)

// ErrMaxLengthTooSmall is returned when the truncation budget cannot fit
// anything beyond the suffix.
var ErrMaxLengthTooSmall = errors.New("max length must exceed suffix length")

// TruncateOption configures truncation behavior.
type TruncateOption func(*truncateConfig)

type truncateConfig struct {
	suffix string
}

// Suffix sets the string appended when truncation occurs. Default is "...".
func Suffix(s string) TruncateOption {
	return func(c *truncateConfig) {
		c.suffix = s
	}
}

// Truncate shortens s so that the result, including the suffix, is at most
// maxLength characters. Input already within the budget is returned
// unchanged. The cut is a hard character cut, not word-boundary aware.
func Truncate(s string, maxLength int, opts ...TruncateOption) (string, error) {
	cfg := &truncateConfig{suffix: "..."}
	for _, opt := range opts {
		opt(cfg)
	}

	suffixLen := len([]rune(cfg.suffix))
	if maxLength <= suffixLen {
		return "", fmt.Errorf("%w: max length %d, suffix length %d",
			ErrMaxLengthTooSmall, maxLength, suffixLen)
	}

	if s == "" {
		return "", nil
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s, nil
	}

	return string(runes[:maxLength-suffixLen]) + cfg.suffix, nil
}
