package md2slack

import "errors"

// Sentinel errors for library operations.
//
// The compiler itself (Compile, ConvertInline) is total and never fails;
// these errors surface only from limits validation and the preview renderer.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrPreviewRender = errors.New("preview rendering failed")

	// Limits validation errors.
	ErrInvalidHeaderLimit  = errors.New("invalid header limit")
	ErrInvalidSectionLimit = errors.New("invalid section limit")
	ErrInvalidMaxBlocks    = errors.New("invalid max blocks")
	ErrInvalidMaxTableRows = errors.New("invalid max table rows")
	ErrInvalidMaxTableCols = errors.New("invalid max table columns")
)
