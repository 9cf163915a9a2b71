package render

import (
	"strings"
	"testing"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/planscheme/internal/ordinance"
)

// paragraphText collects the run text of a paragraph.
func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func cellText(cell *docx.WTableCell) string {
	var parts []string
	for _, para := range cell.Paragraphs {
		if t := paragraphText(para); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// bodyParagraphs filters the document body down to its paragraphs in order.
func bodyParagraphs(doc *docx.Docx) []*docx.Paragraph {
	var paras []*docx.Paragraph
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

func bodyTables(doc *docx.Docx) []*docx.Table {
	var tables []*docx.Table
	for _, item := range doc.Document.Body.Items {
		if t, ok := item.(*docx.Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

func TestDocxRenderer_Headings(t *testing.T) {
	sections := []ordinance.Section{
		{
			Title: "Table of uses",
			Rules: []ordinance.Rule{
				{Title: "Section 1", Content: []ordinance.Node{ordinance.Paragraph{Text: "body text"}}},
				{Content: []ordinance.Node{ordinance.Paragraph{Text: "untitled body"}}},
			},
		},
	}
	doc := NewDocxRenderer(testLog).Render(sections)
	paras := bodyParagraphs(doc)

	if len(paras) != 4 {
		t.Fatalf("expected 4 paragraphs, got %d", len(paras))
	}
	checks := []struct {
		style, text string
	}{
		{"Heading2", "Table of uses"},
		{"Heading3", "Section 1"},
		{"", "body text"},
		{"", "untitled body"},
	}
	for i, want := range checks {
		if got := paragraphStyle(paras[i]); got != want.style {
			t.Errorf("paragraph %d style: expected %q, got %q", i, want.style, got)
		}
		if got := paragraphText(paras[i]); got != want.text {
			t.Errorf("paragraph %d text: expected %q, got %q", i, want.text, got)
		}
	}
}

func TestDocxRenderer_ListIndentStyles(t *testing.T) {
	sections := []ordinance.Section{
		{
			Title: "Rules",
			Rules: []ordinance.Rule{
				{
					Content: []ordinance.Node{
						ordinance.List{Items: []ordinance.Node{
							ordinance.Seq{
								ordinance.Paragraph{Text: "depth zero"},
								ordinance.List{Items: []ordinance.Node{
									ordinance.Paragraph{Text: "depth one"},
								}},
							},
						}},
					},
				},
			},
		},
	}
	doc := NewDocxRenderer(testLog).Render(sections)
	paras := bodyParagraphs(doc)

	// Heading, outer item, nested item.
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paras))
	}
	if got := paragraphStyle(paras[1]); got != "ListBullet" {
		t.Errorf("outer item style: expected ListBullet, got %q", got)
	}
	if got := paragraphText(paras[1]); got != "depth zero" {
		t.Errorf("outer item text: expected %q, got %q", "depth zero", got)
	}
	if got := paragraphStyle(paras[2]); got != "ListBullet2" {
		t.Errorf("nested item style: expected ListBullet2, got %q", got)
	}
}

func TestDocxRenderer_ListIndentClampsBeyondLadder(t *testing.T) {
	// Five levels deep; the last two must clamp to the deepest style.
	deepest := ordinance.Node(ordinance.Paragraph{Text: "bottom"})
	for i := 0; i < 4; i++ {
		deepest = ordinance.List{Items: []ordinance.Node{deepest}}
	}
	sections := []ordinance.Section{
		{Title: "Deep", Rules: []ordinance.Rule{{Content: []ordinance.Node{deepest}}}},
	}
	doc := NewDocxRenderer(testLog).Render(sections)
	paras := bodyParagraphs(doc)

	var styles []string
	for _, p := range paras[1:] {
		styles = append(styles, paragraphStyle(p))
	}
	want := []string{"ListBullet", "ListBullet2", "ListBullet3", "ListBullet3"}
	if len(styles) != len(want) {
		t.Fatalf("expected %d item paragraphs, got %d", len(want), len(styles))
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Errorf("depth %d style: expected %q, got %q", i, want[i], styles[i])
		}
	}
}

func TestDocxRenderer_TableGrid(t *testing.T) {
	sections := []ordinance.Section{
		{
			Title: "With table",
			Rules: []ordinance.Rule{
				{
					Content: []ordinance.Node{
						ordinance.Table{
							Caption: "Garden area",
							Header: []ordinance.Node{
								ordinance.Paragraph{Text: "A"},
								ordinance.Paragraph{Text: "B"},
							},
							Body: [][]ordinance.Node{
								{ordinance.Paragraph{Text: "1"}, ordinance.Paragraph{Text: "2"}},
								{ordinance.Paragraph{Text: "3"}},
							},
						},
					},
				},
			},
		},
	}
	doc := NewDocxRenderer(testLog).Render(sections)

	paras := bodyParagraphs(doc)
	if len(paras) != 2 {
		t.Fatalf("expected section heading and caption heading, got %d paragraphs", len(paras))
	}
	if got := paragraphStyle(paras[1]); got != "Heading4" {
		t.Errorf("caption style: expected Heading4, got %q", got)
	}
	if got := paragraphText(paras[1]); got != "Garden area" {
		t.Errorf("caption text: expected %q, got %q", "Garden area", got)
	}

	tables := bodyTables(doc)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	tbl := tables[0]
	if len(tbl.TableRows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tbl.TableRows))
	}
	for i, row := range tbl.TableRows {
		if len(row.TableCells) != 2 {
			t.Fatalf("row %d: expected 2 cells, got %d", i, len(row.TableCells))
		}
	}

	if got := cellText(tbl.TableRows[0].TableCells[0]); got != "A" {
		t.Errorf("header cell 0: expected %q, got %q", "A", got)
	}
	if got := cellText(tbl.TableRows[1].TableCells[0]); got != "1" {
		t.Errorf("cell (1,0): expected %q, got %q", "1", got)
	}
	if got := cellText(tbl.TableRows[1].TableCells[1]); got != "2" {
		t.Errorf("cell (1,1): expected %q, got %q", "2", got)
	}
	// Second body row is short: its second column stays blank.
	if got := cellText(tbl.TableRows[2].TableCells[1]); got != "" {
		t.Errorf("cell (2,1): expected blank, got %q", got)
	}
}

func TestDocxRenderer_FlattenedTableHeader(t *testing.T) {
	sections := []ordinance.Section{
		{
			Title: "With structured header",
			Rules: []ordinance.Rule{
				{
					Content: []ordinance.Node{
						ordinance.Table{
							Header: []ordinance.Node{
								ordinance.Seq{
									ordinance.Paragraph{Text: "Minimum"},
									ordinance.Paragraph{Text: "garden area"},
								},
							},
							Body: [][]ordinance.Node{{ordinance.Paragraph{Text: "25%"}}},
						},
					},
				},
			},
		},
	}
	doc := NewDocxRenderer(testLog).Render(sections)
	tables := bodyTables(doc)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if got := cellText(tables[0].TableRows[0].TableCells[0]); got != "Minimum garden area" {
		t.Errorf("header cell: expected %q, got %q", "Minimum garden area", got)
	}
}

func TestDocxRenderer_ListItemParagraphRuns(t *testing.T) {
	// A list item with several paragraphs keeps the extra paragraphs as
	// runs of the item paragraph rather than new bulleted paragraphs.
	sections := []ordinance.Section{
		{
			Title: "Runs",
			Rules: []ordinance.Rule{
				{
					Content: []ordinance.Node{
						ordinance.List{Items: []ordinance.Node{
							ordinance.Seq{
								ordinance.Paragraph{Text: "first "},
								ordinance.Paragraph{Text: "second"},
							},
						}},
					},
				},
			},
		},
	}
	doc := NewDocxRenderer(testLog).Render(sections)
	paras := bodyParagraphs(doc)

	if len(paras) != 2 {
		t.Fatalf("expected heading plus one item paragraph, got %d", len(paras))
	}
	if got := paragraphText(paras[1]); got != "first second" {
		t.Errorf("item text: expected %q, got %q", "first second", got)
	}
}
