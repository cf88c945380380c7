package md2slack

import "strings"

// fenceDelimiter marks a multi-line code fence; spanDelimiter marks an
// inline code span.
const (
	fenceDelimiter = "```"
	spanDelimiter  = "`"
)

// segment is a run of input text tagged with how the inline converter must
// treat it. preserve segments (code fences and spans) pass through
// byte-identical; transform segments get markdown substitutions.
type segment struct {
	value    string
	preserve bool
}

// segmentText splits input into an ordered list of segments with a single
// left-to-right scan. Concatenating the segment values in order reproduces
// the input exactly.
//
// Unterminated fences and spans are not errors: they consume through end of
// input and are preserved verbatim. Over-preserving beats corrupting code.
func segmentText(input string) []segment {
	var segments []segment

	for len(input) > 0 {
		switch {
		case strings.HasPrefix(input, fenceDelimiter):
			end := strings.Index(input[len(fenceDelimiter):], fenceDelimiter)
			if end < 0 {
				segments = append(segments, segment{value: input, preserve: true})
				return segments
			}
			cut := len(fenceDelimiter) + end + len(fenceDelimiter)
			segments = append(segments, segment{value: input[:cut], preserve: true})
			input = input[cut:]

		case strings.HasPrefix(input, spanDelimiter):
			end := strings.Index(input[len(spanDelimiter):], spanDelimiter)
			if end < 0 {
				segments = append(segments, segment{value: input, preserve: true})
				return segments
			}
			cut := len(spanDelimiter) + end + len(spanDelimiter)
			segments = append(segments, segment{value: input[:cut], preserve: true})
			input = input[cut:]

		default:
			next := strings.IndexByte(input, '`')
			if next < 0 {
				segments = append(segments, segment{value: input})
				return segments
			}
			segments = append(segments, segment{value: input[:next]})
			input = input[next:]
		}
	}

	return segments
}
