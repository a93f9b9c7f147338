package qemucli

import (
	"regexp"
	"strings"

	"github.com/mattn/go-shellwords"
)

// quotedFieldRegexp matches either a run containing double-quoted spans or a
// plain whitespace-delimited field.
var quotedFieldRegexp = regexp.MustCompile(`((?:[^"\s]*"[^"]*"[^"\s]*)+|[^"\s]+)`)

// Split tokenizes free-form user arguments. Double-quoted spans become a
// single argument with the quotes removed. Backslashes are kept literally.
func Split(raw string) []string {
	p := shellwords.NewParser()

	args, err := p.Parse(strings.ReplaceAll(raw, `\`, `\\`))
	if err == nil && p.Position == -1 {
		return args
	}

	// The parser stops at shell operators (;, |, &, <, >) and rejects
	// unbalanced quotes. QEMU has no use for either, so fall back to plain
	// field splitting.
	return splitQuotedFields(raw)
}

func splitQuotedFields(raw string) []string {
	var out []string
	for _, m := range quotedFieldRegexp.FindAllString(raw, -1) {
		m = strings.ReplaceAll(m, `"`, "")
		if m != "" {
			out = append(out, m)
		}
	}

	return out
}

// SplitAll tokenizes each entry and concatenates the results.
func SplitAll(raw []string) []string {
	var out []string
	for _, r := range raw {
		out = append(out, Split(r)...)
	}

	return out
}
