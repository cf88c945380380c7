package md2slack

import (
	"regexp"
	"strings"
)

// Precompiled classification patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ATX heading: 1-6 hashes, whitespace, then the header text
	headingPattern = regexp.MustCompile(`^#{1,6}[ \t]+(.*)$`)

	// Thematic break: a line of dashes, asterisks, or underscores
	thematicBreakPattern = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)

	// One cell of a table's structural divider row, e.g. ---, :--, --:
	dividerCellPattern = regexp.MustCompile(`^:?-+:?$`)
)

// unitKind classifies one logical unit of markdown.
type unitKind int

const (
	unitSection unitKind = iota // paragraph, the fallthrough case
	unitHeader                  // single ATX heading line
	unitTable                   // pipe table, divider row already consumed
	unitDivider                 // thematic break
)

// unit is one logical unit produced by the classification pass.
type unit struct {
	kind unitKind
	text string   // header and section units: raw markdown text
	rows []string // table units: raw pipe rows, header first
}

// Compile turns markdown into a BlocksPayload under the default platform
// ceilings. See Service.Compile for the rules applied.
func Compile(markdown string) BlocksPayload {
	return compileWithLimits(markdown, DefaultLimits())
}

// compileWithLimits runs the two-pass compilation: classify markdown into
// logical units, then render each unit into capped blocks in source order.
//
// The block-count ceiling is enforced last, after all truncation and
// splitting, so leading content is never sacrificed for tail content.
// Tables land in a single shared attachment; the platform's top-level
// block list cannot hold tabular layout.
func compileWithLimits(markdown string, limits Limits) BlocksPayload {
	blocks := []Block{}
	var tables []Block

	for _, u := range classifyUnits(markdown) {
		switch u.kind {
		case unitHeader:
			blocks = append(blocks, renderHeader(u.text, limits)...)
		case unitSection:
			blocks = append(blocks, renderSection(u.text, limits)...)
		case unitDivider:
			blocks = append(blocks, DividerBlock{})
		case unitTable:
			header := splitTableRow(u.rows[0])
			body := make([][]string, 0, len(u.rows)-1)
			for _, row := range u.rows[1:] {
				body = append(body, splitTableRow(row))
			}
			tables = append(tables, renderTable(header, body, limits))
		}
	}

	if len(blocks) > limits.MaxBlocks {
		blocks = blocks[:limits.MaxBlocks]
	}

	payload := BlocksPayload{Blocks: blocks}
	if len(tables) > 0 {
		if len(tables) > limits.MaxBlocks {
			tables = tables[:limits.MaxBlocks]
		}
		payload.Attachments = []Attachment{{Blocks: tables}}
	}
	return payload
}

// classifyUnits splits markdown into logical units on blank-line boundaries
// and structural markers. A fenced code block is kept inside one section
// unit even when it spans blank lines, so the fence reaches the inline
// converter intact. Anything the classifier cannot place falls through to
// the section path; there is no error case.
func classifyUnits(markdown string) []unit {
	lines := strings.Split(crlfOrCR.ReplaceAllString(markdown, "\n"), "\n")

	var units []unit
	var para []string
	flush := func() {
		if len(para) > 0 {
			units = append(units, unit{kind: unitSection, text: strings.Join(para, "\n")})
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flush()

		case strings.HasPrefix(trimmed, fenceDelimiter):
			para = append(para, line)
			for i++; i < len(lines); i++ {
				para = append(para, lines[i])
				if strings.HasPrefix(strings.TrimSpace(lines[i]), fenceDelimiter) {
					break
				}
			}

		case headingPattern.MatchString(trimmed):
			flush()
			m := headingPattern.FindStringSubmatch(trimmed)
			units = append(units, unit{kind: unitHeader, text: m[1]})

		case thematicBreakPattern.MatchString(trimmed):
			flush()
			units = append(units, unit{kind: unitDivider})

		case isPipeRow(line) && i+1 < len(lines) && isTableDividerRow(lines[i+1]):
			flush()
			rows := []string{line}
			i++ // structural divider row, consumed and never rendered
			for i+1 < len(lines) && isPipeRow(lines[i+1]) {
				i++
				rows = append(rows, lines[i])
			}
			units = append(units, unit{kind: unitTable, rows: rows})

		default:
			para = append(para, line)
		}
	}
	flush()

	return units
}

// renderHeader emits a header block, truncating at the header ceiling.
// Overflow is never dropped: the post-ceiling remainder is relocated into a
// section block inserted immediately after, run through the inline
// converter like any other section text.
func renderHeader(text string, limits Limits) []Block {
	runes := []rune(text)
	if len(runes) <= limits.HeaderLimit {
		return []Block{HeaderBlock{Text: text}}
	}

	blocks := []Block{HeaderBlock{Text: string(runes[:limits.HeaderLimit])}}
	overflow := ConvertInline(string(runes[limits.HeaderLimit:]))
	for _, chunk := range chunkText(overflow, limits.SectionLimit) {
		blocks = append(blocks, SectionBlock{Text: chunk})
	}
	return blocks
}

// renderSection inline-converts paragraph text and splits the result into
// consecutive chunks at or under the section ceiling, one block per chunk.
func renderSection(text string, limits Limits) []Block {
	converted := ConvertInline(text)
	chunks := chunkText(converted, limits.SectionLimit)

	blocks := make([]Block, 0, len(chunks))
	for _, chunk := range chunks {
		blocks = append(blocks, SectionBlock{Text: chunk})
	}
	return blocks
}

// chunkText greedily splits s into chunks of at most limit characters,
// preserving order and content. Splits land on rune boundaries, so a
// multibyte character is never cut in half.
func chunkText(s string, limit int) []string {
	if s == "" {
		return nil
	}

	var chunks []string
	for len(s) > 0 {
		end := len(s)
		count := 0
		for idx := range s {
			if count == limit {
				end = idx
				break
			}
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}

// isPipeRow reports whether a line looks like a table row: non-blank and
// containing at least one pipe.
func isPipeRow(line string) bool {
	return strings.TrimSpace(line) != "" && strings.Contains(line, "|")
}

// isTableDividerRow reports whether a line is the structural divider row
// separating a table's header from its body.
func isTableDividerRow(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	cells := splitTableRow(line)
	for _, cell := range cells {
		if !dividerCellPattern.MatchString(cell) {
			return false
		}
	}
	return len(cells) > 0
}

// splitTableRow tokenizes one pipe row: boundary pipes are stripped, cells
// split on the remaining pipes, and cell whitespace trimmed.
func splitTableRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")

	cells := strings.Split(s, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
