package render

import (
	"log/slog"

	"github.com/dgallion1/planscheme/internal/ordinance"
	"github.com/fumiama/go-docx"
)

// bulletStyles is the indent ladder for list items. Nesting deeper than the
// ladder clamps to the deepest style.
var bulletStyles = []string{"ListBullet", "ListBullet2", "ListBullet3"}

const tableWidth = 8640 // twips, roughly the printable width of an A4 page

// paragraphAdder is the insertion target for new paragraphs: the document
// body or a table cell.
type paragraphAdder interface {
	AddParagraph() *docx.Paragraph
}

// DocxRenderer walks ordinance sections into a word document: one Heading2
// per section, Heading3 per rule title, Heading4 for table captions.
type DocxRenderer struct {
	doc *docx.Docx
	log *slog.Logger
}

func NewDocxRenderer(log *slog.Logger) *DocxRenderer {
	if log == nil {
		log = slog.Default()
	}
	return &DocxRenderer{
		doc: docx.New().WithDefaultTheme(),
		log: log,
	}
}

// Render emits every section in order and returns the populated document.
func (r *DocxRenderer) Render(sections []ordinance.Section) *docx.Docx {
	for _, sec := range sections {
		r.doc.AddParagraph().Style("Heading2").AddText(sec.Title)
		for _, rule := range sec.Rules {
			if rule.Title != "" {
				r.doc.AddParagraph().Style("Heading3").AddText(rule.Title)
			}
			for _, node := range rule.Content {
				r.emit(r.doc, node, 0, nil)
			}
		}
	}
	return r.doc
}

// emit writes one node into body. When para is non-nil the node sits inside
// an open list-item or cell paragraph, and plain text appends there as a run
// instead of opening a new paragraph.
func (r *DocxRenderer) emit(body paragraphAdder, n ordinance.Node, indent int, para *docx.Paragraph) {
	switch v := n.(type) {
	case ordinance.Paragraph:
		r.emitText(body, v.Text, para)
	case ordinance.Raw:
		r.emitText(body, v.Text, para)
	case ordinance.Seq:
		// Inline siblings keep appending to the open paragraph as runs;
		// structural siblings start fresh at the same indent.
		for _, sib := range v {
			switch sib.(type) {
			case ordinance.Paragraph, ordinance.Raw:
				r.emit(body, sib, indent, para)
			default:
				r.emit(body, sib, indent, nil)
			}
		}
	case ordinance.List:
		for _, item := range v.Items {
			r.emitItem(body, item, indent)
		}
	case ordinance.Table:
		r.emitTable(body, v, indent)
	}
}

func (r *DocxRenderer) emitText(body paragraphAdder, text string, para *docx.Paragraph) {
	if para != nil {
		para.AddText(text)
		return
	}
	body.AddParagraph().AddText(text)
}

// emitItem opens a bulleted paragraph styled by indent depth, then recurses
// into the item's children with that paragraph as the run target.
func (r *DocxRenderer) emitItem(body paragraphAdder, item ordinance.Node, indent int) {
	style := bulletStyles[len(bulletStyles)-1]
	if indent < len(bulletStyles) {
		style = bulletStyles[indent]
	} else {
		r.log.Warn("list nesting deeper than bullet styles, clamping", "indent", indent)
	}
	para := body.AddParagraph().Style(style)
	r.emit(body, item, indent+1, para)
}

// emitTable lays out a (body rows + 1) x len(header) grid. Row 0 holds the
// flattened header text; body cells are emitted recursively with the cell's
// first paragraph as the open run context. Short body rows leave their
// trailing cells blank.
func (r *DocxRenderer) emitTable(body paragraphAdder, v ordinance.Table, indent int) {
	doc, ok := body.(*docx.Docx)
	if !ok {
		// go-docx tables only attach to the document body; a table nested
		// in a cell degrades to its flattened text.
		r.log.Warn("table nested inside table cell, flattening")
		body.AddParagraph().AddText(Flatten(v, r.log))
		return
	}

	if v.Caption != "" {
		doc.AddParagraph().Style("Heading4").AddText(v.Caption)
	}

	rows, cols := len(v.Body)+1, len(v.Header)
	if cols == 0 {
		r.log.Warn("table without header cells, skipping")
		return
	}
	tbl := doc.AddTable(rows, cols, tableWidth, nil)

	for c := 0; c < cols; c++ {
		cell := tbl.TableRows[0].TableCells[c]
		cell.AddParagraph().AddText(Flatten(v.Header[c], r.log)).Bold()
	}
	for ri, row := range v.Body {
		for ci := 0; ci < cols && ci < len(row); ci++ {
			cell := tbl.TableRows[ri+1].TableCells[ci]
			para := cell.AddParagraph()
			r.emit(cell, row[ci], indent, para)
		}
	}
}
