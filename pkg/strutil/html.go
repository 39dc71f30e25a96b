package strutil

import (
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// htmlEntityReplacer decodes the handful of named entities most common in
// scraped text. Numeric entities beyond &#39; are left untouched.
var htmlEntityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)

// StripHTML removes all tag spans from s and decodes a small fixed set of
// named entities. It is a display helper, not a sanitizer; do not rely on
// it to neutralize hostile markup.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}

	text := htmlTagRegex.ReplaceAllString(s, "")
	return htmlEntityReplacer.Replace(text)
}
