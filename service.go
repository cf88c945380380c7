package md2slack

import "context"

// Service compiles markdown into message payloads under a fixed set of
// platform ceilings, and renders HTML previews of the same source.
//
// A Service holds no mutable state: every method is safe to call from any
// number of goroutines without coordination.
type Service struct {
	cfg     serviceConfig
	preview previewRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLimits).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			limits:         DefaultLimits(),
			highlightStyle: defaultHighlightStyle,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create preview renderer if not injected (e.g., by tests)
	if s.preview == nil {
		s.preview = newGoldmarkPreview(s.cfg.highlightStyle)
	}

	return s
}

// Limits returns the ceilings this Service compiles under.
func (s *Service) Limits() Limits {
	return s.cfg.limits
}

// ConvertInline rewrites markdown into the platform's mrkdwn dialect.
// See the package-level ConvertInline for the substitution rules; the
// method form exists so callers holding a Service need only one handle.
func (s *Service) ConvertInline(markdown string) string {
	return ConvertInline(markdown)
}

// Compile turns markdown into a BlocksPayload under this Service's limits.
// It is total: any input, malformed markdown included, yields a
// structurally valid payload, and empty input yields an empty one.
func (s *Service) Compile(markdown string) BlocksPayload {
	return compileWithLimits(markdown, s.cfg.limits)
}

// Preview renders the markdown to a standalone HTML5 document for local
// inspection before posting. The context is used for cancellation.
func (s *Service) Preview(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", ErrEmptyMarkdown
	}
	return s.preview.ToHTML(ctx, markdown)
}
