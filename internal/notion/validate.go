package notion

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// API limits enforced by validation. These match the documented limits of
// the Notion API for a single page-creation request.
const (
	// MaxRichTextLength is the maximum number of characters in one rich
	// text element's content.
	MaxRichTextLength = 2000

	// MaxChildrenPerRequest is the maximum number of blocks in any single
	// children array of a page-creation request.
	MaxChildrenPerRequest = 100

	// MaxNestingDepth is the maximum depth of nested children in a single
	// page-creation request. Depth 1 is a page's direct children; depth 2
	// is the children of a toggle among them.
	MaxNestingDepth = 2

	// PageIDLength is the length of a normalized page identifier.
	PageIDLength = 32
)

// ValidatePageID checks that the given identifier is a well-formed page ID
// after normalization: exactly 32 hexadecimal characters.
func ValidatePageID(id string) error {
	normalized := NormalizePageID(id)
	if len(normalized) != PageIDLength {
		return fmt.Errorf("%w: got %d characters", ErrInvalidPageID, len(normalized))
	}
	for _, c := range normalized {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidPageID, c)
		}
	}
	return nil
}

// Validate checks the block against the API limits. Nested children are
// validated recursively. The first violation found is returned, wrapped
// with enough position information to locate the offending block.
func (b Block) Validate() error {
	return b.validate(1)
}

// validate checks one block at the given nesting depth.
func (b Block) validate(depth int) error {
	switch b.Type {
	case TypeHeading1, TypeHeading2, TypeHeading3:
		// Constructed headings carry their level; a zero level means the
		// block was built literally rather than via Heading, and the Type
		// string already proves the level is in range.
	case TypeToDo, TypeToggle, TypeParagraph, TypeBulletedListItem, TypeNumberedListItem, TypeDivider:
	default:
		if strings.HasPrefix(b.Type, "heading_") {
			return fmt.Errorf("%w: got level %d", ErrInvalidHeadingLevel, b.headingLevel)
		}
		return fmt.Errorf("%w: %q", ErrUnknownBlockType, b.Type)
	}

	for i, rt := range b.RichTextContent() {
		if utf8.RuneCountInString(rt.Text.Content) > MaxRichTextLength {
			return fmt.Errorf("%w: %s block, text element %d", ErrTextTooLong, b.Type, i)
		}
	}

	children := b.Children()
	if len(children) == 0 {
		return nil
	}
	if depth+1 > MaxNestingDepth {
		return fmt.Errorf("%w: %s block at depth %d has children", ErrNestingTooDeep, b.Type, depth)
	}
	if len(children) > MaxChildrenPerRequest {
		return fmt.Errorf("%w: %s block has %d children", ErrTooManyChildren, b.Type, len(children))
	}
	for i, child := range children {
		if err := child.validate(depth + 1); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks the whole page payload: the parent page ID, the size of
// the top-level children list, and every block in the tree. It returns the
// first violation found.
func (p *Page) Validate() error {
	if err := ValidatePageID(p.Parent.PageID); err != nil {
		return err
	}
	if len(p.Children) > MaxChildrenPerRequest {
		return fmt.Errorf("%w: page has %d top-level blocks", ErrTooManyChildren, len(p.Children))
	}
	for i, child := range p.Children {
		if err := child.Validate(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}
