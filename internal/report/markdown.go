package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/notion"
)

// Writer defines the interface for page preview output. An interface is
// slight overkill for a single implementation, but it keeps the preview
// command decoupled from the rendering format.
type Writer interface {
	// Write renders the page to the configured destination. Returns the
	// number of bytes rendered and any error encountered.
	Write(page *notion.Page) (int, error)
}

// MarkdownWriter renders a page payload as GitHub Flavored Markdown.
//
// The mapping shifts headings down one level so the page title can take
// H1: heading_1 renders as H2, heading_2 as H3, heading_3 as H4. To-dos
// become task-list checkboxes, toggles become collapsible details blocks,
// and dividers become horizontal rules.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the page and its block tree.
func (w *MarkdownWriter) Write(page *notion.Page) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(page.Title())
	renderBlocks(md, page.Children)

	return len(md.String()), md.Build()
}

// renderBlocks renders a run of sibling blocks. Consecutive list items of
// the same kind are grouped into a single Markdown list.
func renderBlocks(md *markdown.Markdown, blocks []notion.Block) {
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		switch b.Type {
		case notion.TypeBulletedListItem:
			var items []string
			for ; i < len(blocks) && blocks[i].Type == notion.TypeBulletedListItem; i++ {
				items = append(items, notion.PlainText(blocks[i].RichTextContent()))
			}
			i--
			md.BulletList(items...)
		case notion.TypeNumberedListItem:
			var items []string
			for ; i < len(blocks) && blocks[i].Type == notion.TypeNumberedListItem; i++ {
				items = append(items, notion.PlainText(blocks[i].RichTextContent()))
			}
			i--
			md.OrderedList(items...)
		case notion.TypeToDo:
			var boxes []markdown.CheckBoxSet
			for ; i < len(blocks) && blocks[i].Type == notion.TypeToDo; i++ {
				boxes = append(boxes, markdown.CheckBoxSet{
					Checked: blocks[i].ToDo.Checked,
					Text:    notion.PlainText(blocks[i].RichTextContent()),
				})
			}
			i--
			md.CheckBox(boxes)
		default:
			renderBlock(md, b)
		}
	}
}

// renderBlock renders a single non-list block.
func renderBlock(md *markdown.Markdown, b notion.Block) {
	text := notion.PlainText(b.RichTextContent())
	switch b.Type {
	case notion.TypeHeading1:
		md.H2(text)
	case notion.TypeHeading2:
		md.H3(text)
	case notion.TypeHeading3:
		md.H4(text)
	case notion.TypeParagraph:
		md.PlainText(text)
	case notion.TypeToggle:
		// Render nested children into a standalone fragment for the
		// details body.
		nested := markdown.NewMarkdown(io.Discard)
		renderBlocks(nested, b.Children())
		md.Details(text, nested.String())
	case notion.TypeDivider:
		md.HorizontalRule()
	default:
		// Unreachable for validated pages; render the text rather than
		// dropping content silently.
		if text != "" {
			md.PlainText(text)
		}
	}
}
