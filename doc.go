// Package md2slack compiles lightweight Markdown into Slack-ready output:
// an inline mrkdwn string and a capped sequence of layout blocks.
//
// # Quick Start
//
// Use the package-level functions for one-off conversions with default limits:
//
//	text := md2slack.ConvertInline("deploy **done** today")
//	// "deploy *done* today"
//
//	payload := md2slack.Compile("# Release\n\nShipped [v2](https://example.com/v2) today.")
//	body, _ := json.Marshal(payload)
//	// body is the blocks envelope the message API consumes
//
// Or create a Service to customize limits and enable HTML preview:
//
//	svc := md2slack.New(
//	    md2slack.WithLimits(md2slack.Limits{
//	        HeaderLimit:  150,
//	        SectionLimit: 3000,
//	        MaxBlocks:    50,
//	        MaxTableRows: 100,
//	        MaxTableCols: 20,
//	    }),
//	)
//	payload := svc.Compile(markdown)
//
// # Compilation Pipeline
//
// The compilation process follows these stages:
//
//  1. Classification: markdown is split into logical units (header lines,
//     paragraphs, pipe tables, thematic breaks) on blank-line boundaries,
//     with fenced code kept intact.
//  2. Inline conversion: bold (**x** to *x*) and links ([label](url) to
//     <url|label>) are rewritten in plain text only; inline and fenced code
//     pass through byte-identical.
//  3. Capping: headers truncate at 150 characters with the overflow relocated
//     to a trailing section, sections split into 3000-character chunks,
//     tables cap at 100x20, and the block list caps at 50 entries.
//
// Tables cannot appear in the top-level block list on Slack, so all table
// blocks are routed into a single shared attachment.
//
// # Guarantees
//
// Compile and ConvertInline are total and pure: they accept any string,
// never return an error, and produce identical output for identical input.
// Code spans and fences are never inspected or rewritten, including
// unterminated ones, which are preserved through end of input.
//
// # Preview
//
// Service.Preview renders the same markdown to a standalone HTML5 document
// (GFM tables, syntax-highlighted fences) for local inspection before a
// message is posted. Preview is the only Service method that can fail.
package md2slack
