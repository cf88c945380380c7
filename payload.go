package md2slack

import "encoding/json"

// Block is one typed unit of message layout. It is a closed sum:
// HeaderBlock, SectionBlock, DividerBlock, and TableBlock are the only
// implementations, and serialization matches exhaustively over them.
type Block interface {
	blockType() string
}

// HeaderBlock is a plain-text header line. Text never exceeds the header
// ceiling; overflow is relocated into a following SectionBlock at compile
// time, never dropped.
type HeaderBlock struct {
	Text string
}

// SectionBlock is a run of mrkdwn text at or under the section ceiling.
type SectionBlock struct {
	Text string
}

// DividerBlock is a horizontal rule. It carries no payload.
type DividerBlock struct{}

// TableBlock is a rectangular grid: an optional header row plus data rows,
// both capped to the table ceilings (at most 100x20).
type TableBlock struct {
	Header []string
	Rows   [][]string
}

func (HeaderBlock) blockType() string  { return "header" }
func (SectionBlock) blockType() string { return "section" }
func (DividerBlock) blockType() string { return "divider" }
func (TableBlock) blockType() string   { return "table" }

// Attachment is a secondary block container. The platform cannot hold
// tables in the top-level block list, so every TableBlock a compilation
// produces is routed into a single shared attachment.
type Attachment struct {
	Blocks []Block `json:"blocks"`
}

// BlocksPayload is the compiler's output: the top-level block list plus any
// attachments, in the envelope shape the outbound message request consumes.
// Blocks never exceeds the block ceiling (50 entries).
type BlocksPayload struct {
	Blocks      []Block      `json:"blocks"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// textObject is the wire shape for text inside header and section blocks.
type textObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// MarshalJSON emits the platform's header block shape with plain_text text.
func (b HeaderBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string     `json:"type"`
		Text textObject `json:"text"`
	}{
		Type: b.blockType(),
		Text: textObject{Type: "plain_text", Text: b.Text},
	})
}

// MarshalJSON emits the platform's section block shape with mrkdwn text.
func (b SectionBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string     `json:"type"`
		Text textObject `json:"text"`
	}{
		Type: b.blockType(),
		Text: textObject{Type: "mrkdwn", Text: b.Text},
	})
}

// MarshalJSON emits the platform's divider block shape.
func (b DividerBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{
		Type: b.blockType(),
	})
}

// MarshalJSON emits the table block shape carried inside an attachment.
// The header row is serialized separately from the data rows so consumers
// can style it without guessing.
func (b TableBlock) MarshalJSON() ([]byte, error) {
	rows := b.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return json.Marshal(struct {
		Type   string     `json:"type"`
		Header []string   `json:"header,omitempty"`
		Rows   [][]string `json:"rows"`
	}{
		Type:   b.blockType(),
		Header: b.Header,
		Rows:   rows,
	})
}
