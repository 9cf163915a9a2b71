// Package ordinance defines the structured model for parsed planning-scheme
// ordinance content. The parser produces it, the renderers consume it.
package ordinance

// Node is one element of ordinance content. The set of implementations is
// closed: Paragraph, List, Table, Seq and Raw. Every renderer switches over
// all of them.
type Node interface {
	isNode()
}

// Paragraph is a run of plain text. Text is trimmed and never empty; an
// empty paragraph is dropped at parse time rather than represented.
type Paragraph struct {
	Text string
}

// List is an ordered bulleted list. Each item is either a single Node or a
// Seq when the list item held more than one child element.
type List struct {
	Items []Node
}

// Table holds one header row, body rows and an optional caption.
// Cell contents follow the same single/Seq shape as list items. Body rows
// may be shorter than the header; missing cells render blank.
type Table struct {
	Header  []Node
	Body    [][]Node
	Caption string // empty means no caption
}

// Seq is an ordered sequence of sibling nodes, used where a list item or
// table cell contains more than one child element.
type Seq []Node

// Raw is the degraded fallback for an unrecognized element: its flattened
// text content with all structure discarded.
type Raw struct {
	Text string
}

func (Paragraph) isNode() {}
func (List) isNode()      {}
func (Table) isNode()     {}
func (Seq) isNode()       {}
func (Raw) isNode()       {}

// Collapse reduces a slice of recognized children to the shape containers
// store: nil for none, the child itself for exactly one, a Seq otherwise.
func Collapse(children []Node) Node {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return Seq(children)
	}
}

// Rule is one titled or title-less unit of ordinance text. Title is empty
// when the fragment had no heading before the content. Content preserves
// document order and is never empty for a retained Rule.
type Rule struct {
	Title   string
	Content []Node
}

// Section pairs an ordinance section heading with its parsed rules.
type Section struct {
	Title string
	Rules []Rule
}
