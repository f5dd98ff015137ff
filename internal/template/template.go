package template

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/notion"
	"gopkg.in/yaml.v3"
)

//go:embed templates/life_design.yaml
var embeddedTemplates embed.FS

// Node kinds accepted in template files. Each kind maps onto one block
// constructor in the notion package, except the *_list kinds which expand
// to one block per item.
const (
	KindHeading      = "heading"
	KindParagraph    = "paragraph"
	KindTodo         = "todo"
	KindTodoList     = "todo_list"
	KindToggle       = "toggle"
	KindBulletedItem = "bulleted_item"
	KindNumberedItem = "numbered_item"
	KindBulletedList = "bulleted_list"
	KindNumberedList = "numbered_list"
	KindDivider      = "divider"
)

// ErrUnknownKind is returned when a template node declares a kind that no
// constructor exists for. Unknown kinds are a load-time error rather than
// a silent skip so that typos in template files are caught before any
// network transmission.
var ErrUnknownKind = errors.New("unknown template node kind")

// Node describes one content node in a template. Which fields are
// meaningful depends on Kind: headings use Level and Text, to-dos use Text
// and Checked, toggles use Text and Children, list kinds use Items, and
// dividers use nothing.
type Node struct {
	Kind     string   `yaml:"kind"`
	Text     string   `yaml:"text,omitempty"`
	Level    int      `yaml:"level,omitempty"`
	Checked  bool     `yaml:"checked,omitempty"`
	Items    []string `yaml:"items,omitempty"`
	Children []Node   `yaml:"children,omitempty"`
}

// Section is a named, ordered run of nodes. Sections exist for template
// authoring clarity only; they have no representation in the generated
// page beyond the order of their nodes.
type Section struct {
	Name  string `yaml:"name"`
	Nodes []Node `yaml:"blocks"`
}

// Definition is a complete page template: a title and ordered sections.
type Definition struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Load parses a template definition from YAML. Every node's kind is
// checked during loading; an unrecognized kind fails with ErrUnknownKind
// wrapped with the section and node position.
func Load(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse template YAML: %w", err)
	}

	if def.Title == "" {
		return nil, errors.New("template has no title")
	}
	for si, section := range def.Sections {
		for ni, node := range section.Nodes {
			if err := checkKinds(node); err != nil {
				return nil, fmt.Errorf("section %d (%s), node %d: %w", si, section.Name, ni, err)
			}
		}
	}
	return &def, nil
}

// LoadFile loads a template definition from a file path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided template path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	def, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("template file %s: %w", path, err)
	}
	return def, nil
}

// Default returns the embedded Life Design dashboard template.
func Default() *Definition {
	data, err := embeddedTemplates.ReadFile("templates/life_design.yaml")
	if err != nil {
		// The template is embedded at compile time; a read failure is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded template missing: %v", err))
	}
	def, err := Load(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("embedded template invalid: %v", err))
	}
	return def
}

// checkKinds verifies the kind of a node and all of its descendants.
func checkKinds(n Node) error {
	switch n.Kind {
	case KindHeading, KindParagraph, KindTodo, KindTodoList, KindToggle,
		KindBulletedItem, KindNumberedItem, KindBulletedList, KindNumberedList,
		KindDivider:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
	for i, child := range n.Children {
		if err := checkKinds(child); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

// Build assembles the page payload for this definition, targeting the
// given parent page. Building is deterministic: the same definition and
// parent ID always produce a byte-identical payload, with no timestamps
// or randomness involved.
//
// Build performs no validation beyond the kind check already done at load
// time; callers validate the resulting page before transmission.
func (d *Definition) Build(parentPageID string) *notion.Page {
	var children []notion.Block
	for _, section := range d.Sections {
		for _, node := range section.Nodes {
			children = append(children, buildNode(node)...)
		}
	}
	return notion.NewPage(parentPageID, d.Title, children)
}

// buildNode maps one template node onto notion blocks. List kinds expand
// to one block per item; every other kind yields exactly one block.
func buildNode(n Node) []notion.Block {
	switch n.Kind {
	case KindHeading:
		return []notion.Block{notion.Heading(n.Level, n.Text)}
	case KindParagraph:
		return []notion.Block{notion.Paragraph(n.Text)}
	case KindTodo:
		return []notion.Block{notion.TodoChecked(n.Text, n.Checked)}
	case KindTodoList:
		blocks := make([]notion.Block, 0, len(n.Items))
		for _, item := range n.Items {
			blocks = append(blocks, notion.Todo(item))
		}
		return blocks
	case KindToggle:
		var nested []notion.Block
		for _, child := range n.Children {
			nested = append(nested, buildNode(child)...)
		}
		return []notion.Block{notion.Toggle(n.Text, nested...)}
	case KindBulletedItem:
		return []notion.Block{notion.BulletedItem(n.Text)}
	case KindNumberedItem:
		return []notion.Block{notion.NumberedItem(n.Text)}
	case KindBulletedList:
		return notion.BulletedList(n.Items...)
	case KindNumberedList:
		return notion.NumberedList(n.Items...)
	case KindDivider:
		return []notion.Block{notion.Divider()}
	}
	// Unreachable for definitions that passed Load's kind check.
	return nil
}
