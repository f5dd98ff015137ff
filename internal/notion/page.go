package notion

import "strings"

// Parent identifies the existing page under which a new page is created.
type Parent struct {
	PageID string `json:"page_id"`
}

// TitleProperty is the title property of a page. Notion models page titles
// as a named property holding a rich text array.
type TitleProperty struct {
	Title []RichText `json:"title"`
}

// PageProperties holds the properties sent when creating a page. Only the
// title property is used by this tool.
type PageProperties struct {
	Title TitleProperty `json:"title"`
}

// Page is the root container created by one API call: a reference to the
// destination parent page, a title, and the ordered top-level blocks.
//
// A Page is constructed once, in memory, immediately before transmission
// and discarded after the call returns. It holds no identity of its own;
// the created page's ID is assigned by the API and returned in
// CreatePageResponse.
type Page struct {
	Parent     Parent         `json:"parent"`
	Properties PageProperties `json:"properties"`
	Children   []Block        `json:"children"`
}

// NewPage assembles a page payload targeting the given parent. The parent
// ID is normalized (dashes stripped, lowercased) but not validated here;
// call Validate before transmission.
func NewPage(parentPageID, title string, children []Block) *Page {
	return &Page{
		Parent: Parent{PageID: NormalizePageID(parentPageID)},
		Properties: PageProperties{
			Title: TitleProperty{Title: Text(title)},
		},
		Children: children,
	}
}

// Title returns the page's title as plain text.
func (p *Page) Title() string {
	return PlainText(p.Properties.Title.Title)
}

// NormalizePageID canonicalizes a Notion page identifier. Users paste IDs
// both as the bare 32-character hexadecimal tail of a page URL and as a
// dashed UUID; both forms refer to the same page, so dashes are stripped
// and the result is lowercased. No length or character validation happens
// here; see ValidatePageID.
func NormalizePageID(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", ""))
}

// CreatePageResponse is the subset of the API's success response surfaced
// to the user: the created page's identity and its URL.
type CreatePageResponse struct {
	// Object is "page" on success.
	Object string `json:"object"`

	// ID is the identifier Notion assigned to the created page.
	ID string `json:"id"`

	// URL is the browser URL of the created page.
	URL string `json:"url"`
}
