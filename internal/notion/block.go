package notion

import (
	"encoding/json"
	"fmt"
)

// Block kind discriminators as defined by the Notion block object schema.
// The Type field of a Block always holds one of these values (or a
// "heading_N" string for an out-of-range heading level, which is rejected
// by Validate before transmission).
const (
	TypeHeading1         = "heading_1"
	TypeHeading2         = "heading_2"
	TypeHeading3         = "heading_3"
	TypeToDo             = "to_do"
	TypeToggle           = "toggle"
	TypeParagraph        = "paragraph"
	TypeBulletedListItem = "bulleted_list_item"
	TypeNumberedListItem = "numbered_list_item"
	TypeDivider          = "divider"
)

// ObjectBlock is the value of the "object" discriminator carried by every
// block in the Notion API.
const ObjectBlock = "block"

// TextContent holds the plain text content of a rich text element.
type TextContent struct {
	// Content is the literal text. It is passed through unchanged from
	// the constructor argument; Notion performs no templating on it.
	Content string `json:"content"`
}

// RichText is a single rich text element. The Notion API represents all
// text as arrays of these elements; this tool only ever produces plain
// text, so annotations, links, and mentions are not modeled.
type RichText struct {
	Text TextContent `json:"text"`
}

// Text wraps a plain string into the rich text array form the API expects.
func Text(content string) []RichText {
	return []RichText{{Text: TextContent{Content: content}}}
}

// PlainText returns the concatenated text content of a rich text array.
func PlainText(rt []RichText) string {
	if len(rt) == 1 {
		return rt[0].Text.Content
	}
	var s string
	for _, r := range rt {
		s += r.Text.Content
	}
	return s
}

// HeadingContent is the payload of a heading_1, heading_2, or heading_3 block.
type HeadingContent struct {
	RichText []RichText `json:"rich_text"`
}

// ToDoContent is the payload of a to_do block. Checked is always serialized
// so that the API's default is never relied on implicitly.
type ToDoContent struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// ToggleContent is the payload of a toggle block. Children holds the
// nested blocks revealed when the toggle is expanded.
//
// The children field has three distinct states on the wire:
//   - nil: the field is omitted entirely (a toggle authored without children)
//   - empty non-nil: serialized as an explicit empty list
//   - populated: serialized in authored order
//
// The distinction matters because an explicitly empty list and an omitted
// field are different payloads, and callers control which they send.
type ToggleContent struct {
	RichText []RichText `json:"rich_text"`
	Children []Block    `json:"children,omitempty"`
}

// MarshalJSON implements the nil-omitted / empty-preserved children
// semantics described on ToggleContent. The standard omitempty tag cannot
// express this because it treats nil and empty slices identically.
func (t ToggleContent) MarshalJSON() ([]byte, error) {
	if t.Children == nil {
		return json.Marshal(struct {
			RichText []RichText `json:"rich_text"`
		}{RichText: t.RichText})
	}
	return json.Marshal(struct {
		RichText []RichText `json:"rich_text"`
		Children []Block    `json:"children"`
	}{RichText: t.RichText, Children: t.Children})
}

// ParagraphContent is the payload of a paragraph block.
type ParagraphContent struct {
	RichText []RichText `json:"rich_text"`
}

// ListItemContent is the payload of a bulleted_list_item or
// numbered_list_item block.
type ListItemContent struct {
	RichText []RichText `json:"rich_text"`
}

// DividerContent is the payload of a divider block. Dividers carry no
// data, but the API requires the empty payload object to be present.
type DividerContent struct{}

// Block is one unit of page content. It serializes to a mapping with an
// "object" discriminator, a "type" discriminator, and exactly one
// type-specific payload field whose JSON key equals the Type value.
//
// Blocks form strict trees: each block belongs to exactly one parent
// (a toggle or the page itself), and the order of siblings is significant
// and preserved exactly as authored.
type Block struct {
	Object string `json:"object"`
	Type   string `json:"type"`

	Heading1         *HeadingContent   `json:"heading_1,omitempty"`
	Heading2         *HeadingContent   `json:"heading_2,omitempty"`
	Heading3         *HeadingContent   `json:"heading_3,omitempty"`
	ToDo             *ToDoContent      `json:"to_do,omitempty"`
	Toggle           *ToggleContent    `json:"toggle,omitempty"`
	Paragraph        *ParagraphContent `json:"paragraph,omitempty"`
	BulletedListItem *ListItemContent  `json:"bulleted_list_item,omitempty"`
	NumberedListItem *ListItemContent  `json:"numbered_list_item,omitempty"`
	Divider          *DividerContent   `json:"divider,omitempty"`

	// headingLevel records the level passed to Heading so Validate can
	// reject out-of-range levels. Zero for non-heading blocks.
	headingLevel int
}

// Heading creates a heading block of the given level.
//
// The constructor accepts any level without enforcement, matching the
// builder contract that constructors are pure and never fail. Levels
// outside 1-3 produce a block whose Type is "heading_N" with no payload;
// such blocks are rejected by Validate before transmission rather than
// passed through for the API to reject opaquely.
func Heading(level int, text string) Block {
	b := Block{
		Object:       ObjectBlock,
		Type:         fmt.Sprintf("heading_%d", level),
		headingLevel: level,
	}
	content := &HeadingContent{RichText: Text(text)}
	switch level {
	case 1:
		b.Heading1 = content
	case 2:
		b.Heading2 = content
	case 3:
		b.Heading3 = content
	}
	return b
}

// Todo creates an unchecked to-do block.
func Todo(text string) Block {
	return TodoChecked(text, false)
}

// TodoChecked creates a to-do block with an explicit checked state.
func TodoChecked(text string, checked bool) Block {
	return Block{
		Object: ObjectBlock,
		Type:   TypeToDo,
		ToDo:   &ToDoContent{RichText: Text(text), Checked: checked},
	}
}

// Toggle creates a toggle block wrapping the given children in order.
// Calling Toggle with no children produces a toggle whose children field
// is omitted from the payload; passing an explicitly empty slice via
// Toggle(text, children...) preserves the empty list.
func Toggle(text string, children ...Block) Block {
	return Block{
		Object: ObjectBlock,
		Type:   TypeToggle,
		Toggle: &ToggleContent{RichText: Text(text), Children: children},
	}
}

// Paragraph creates a paragraph block. An empty string is valid and is
// commonly used as vertical whitespace between sections.
func Paragraph(text string) Block {
	return Block{
		Object:    ObjectBlock,
		Type:      TypeParagraph,
		Paragraph: &ParagraphContent{RichText: Text(text)},
	}
}

// BulletedItem creates a single bulleted list item block.
func BulletedItem(text string) Block {
	return Block{
		Object:           ObjectBlock,
		Type:             TypeBulletedListItem,
		BulletedListItem: &ListItemContent{RichText: Text(text)},
	}
}

// NumberedItem creates a single numbered list item block.
func NumberedItem(text string) Block {
	return Block{
		Object:           ObjectBlock,
		Type:             TypeNumberedListItem,
		NumberedListItem: &ListItemContent{RichText: Text(text)},
	}
}

// BulletedList creates one bulleted list item block per item, in order.
func BulletedList(items ...string) []Block {
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, BulletedItem(item))
	}
	return blocks
}

// NumberedList creates one numbered list item block per item, in order.
func NumberedList(items ...string) []Block {
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, NumberedItem(item))
	}
	return blocks
}

// Divider creates a horizontal divider block.
func Divider() Block {
	return Block{
		Object:  ObjectBlock,
		Type:    TypeDivider,
		Divider: &DividerContent{},
	}
}

// RichTextContent returns the rich text array of the block's payload,
// or nil for blocks that carry no text (dividers, malformed headings).
func (b Block) RichTextContent() []RichText {
	switch {
	case b.Heading1 != nil:
		return b.Heading1.RichText
	case b.Heading2 != nil:
		return b.Heading2.RichText
	case b.Heading3 != nil:
		return b.Heading3.RichText
	case b.ToDo != nil:
		return b.ToDo.RichText
	case b.Toggle != nil:
		return b.Toggle.RichText
	case b.Paragraph != nil:
		return b.Paragraph.RichText
	case b.BulletedListItem != nil:
		return b.BulletedListItem.RichText
	case b.NumberedListItem != nil:
		return b.NumberedListItem.RichText
	}
	return nil
}

// Children returns the block's nested child blocks, or nil if the block
// kind does not nest or the children field is unset.
func (b Block) Children() []Block {
	if b.Toggle != nil {
		return b.Toggle.Children
	}
	return nil
}
