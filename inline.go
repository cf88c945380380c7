package md2slack

import (
	"regexp"
	"strings"
)

// Precompiled patterns for inline substitution.
var (
	// Bold span: **text** with no newline inside, matched non-greedily so
	// independent spans on one line each convert. An unmatched ** never
	// pairs and stays untouched.
	boldPattern = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)

	// Markdown link with an http(s) URL. The URL run stops at whitespace
	// or a closing paren, so a link missing its closing paren or using a
	// disallowed scheme never matches and stays untouched.
	linkPattern = regexp.MustCompile(`\[([^\]\n]*)\]\((https?://[^\s)]+)\)`)
)

// ConvertInline rewrites markdown into the platform's mrkdwn dialect:
// **bold** becomes *bold* and [label](url) becomes <url|label>.
//
// Code is sacred: inline code spans and fenced code blocks pass through
// byte-identical, markdown syntax inside them included. The function is
// pure and total; identical input always yields identical output.
func ConvertInline(markdown string) string {
	segments := segmentText(markdown)

	var b strings.Builder
	b.Grow(len(markdown))
	for _, seg := range segments {
		if seg.preserve {
			b.WriteString(seg.value)
			continue
		}
		b.WriteString(convertSpans(seg.value))
	}
	return b.String()
}

// convertSpans applies the mrkdwn substitutions to plain (non-code) text.
// Order matters: bold first, so a bold span inside a link label is rewritten
// before the label is embedded in the link form.
func convertSpans(text string) string {
	text = boldPattern.ReplaceAllString(text, "*$1*")
	text = linkPattern.ReplaceAllString(text, "<$2|$1>")
	return text
}
