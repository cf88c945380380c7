package md2slack

import "fmt"

// Platform ceilings. These are Slack's documented structural limits; every
// one of them is enforced by truncation or dropping, never by erroring.
const (
	// DefaultHeaderLimit caps header block text. Slack rejects header text
	// over 150 characters.
	DefaultHeaderLimit = 150

	// DefaultSectionLimit caps section block text.
	DefaultSectionLimit = 3000

	// DefaultMaxBlocks caps the number of blocks per container (the
	// top-level block list and an attachment's block list alike).
	DefaultMaxBlocks = 50

	// DefaultMaxTableRows caps data rows per table block.
	DefaultMaxTableRows = 100

	// DefaultMaxTableCols caps cells per table row, header included.
	DefaultMaxTableCols = 20
)

// Limits bundles the platform ceilings applied during compilation.
// All counts are in characters (runes) for text limits and in entries for
// structural limits.
type Limits struct {
	HeaderLimit  int // max header text length
	SectionLimit int // max section text length
	MaxBlocks    int // max blocks per container
	MaxTableRows int // max data rows per table
	MaxTableCols int // max cells per row
}

// DefaultLimits returns the platform's documented ceilings.
func DefaultLimits() Limits {
	return Limits{
		HeaderLimit:  DefaultHeaderLimit,
		SectionLimit: DefaultSectionLimit,
		MaxBlocks:    DefaultMaxBlocks,
		MaxTableRows: DefaultMaxTableRows,
		MaxTableCols: DefaultMaxTableCols,
	}
}

// Validate checks that every ceiling is positive.
func (l Limits) Validate() error {
	if l.HeaderLimit <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidHeaderLimit, l.HeaderLimit)
	}
	if l.SectionLimit <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidSectionLimit, l.SectionLimit)
	}
	if l.MaxBlocks <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidMaxBlocks, l.MaxBlocks)
	}
	if l.MaxTableRows <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidMaxTableRows, l.MaxTableRows)
	}
	if l.MaxTableCols <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidMaxTableCols, l.MaxTableCols)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	limits         Limits
	highlightStyle string
}

// defaultHighlightStyle is the chroma style used by the preview renderer
// when none is specified.
const defaultHighlightStyle = "github"

// WithLimits overrides the default platform ceilings.
// Panics if limits are invalid (programmer error, similar to time.NewTicker).
func WithLimits(limits Limits) Option {
	if err := limits.Validate(); err != nil {
		panic("md2slack: WithLimits: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.limits = limits
	}
}

// WithHighlightStyle sets the chroma style name used for fenced code in
// HTML previews (e.g. "github", "monokai"). Unknown names fall back to
// chroma's default style at render time.
func WithHighlightStyle(name string) Option {
	return func(s *Service) {
		s.cfg.highlightStyle = name
	}
}
