package render

import (
	"log/slog"
	"strings"

	"github.com/dgallion1/planscheme/internal/ordinance"
)

// indentStep is how far each list nesting level shifts in block markdown.
const indentStep = 4

// MarkdownInline renders a node on a single line, siblings joined with an
// explicit line-break marker. Used for table cells and other inline slots.
func MarkdownInline(n ordinance.Node, log *slog.Logger) string {
	if log == nil {
		log = slog.Default()
	}
	switch v := n.(type) {
	case ordinance.Paragraph:
		return v.Text
	case ordinance.Raw:
		return v.Text
	case ordinance.Seq:
		return joinInline(v, log)
	case ordinance.List:
		return joinInline(v.Items, log)
	case ordinance.Table:
		return markdownTable(v, log)
	}
	return ""
}

func joinInline(nodes []ordinance.Node, log *slog.Logger) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, MarkdownInline(n, log))
	}
	return strings.Join(parts, "<br />")
}

// MarkdownBlock renders a node as block markdown. Lists become indented
// bullet lines, the indent growing by indentStep per nesting level.
func MarkdownBlock(n ordinance.Node, indent int, log *slog.Logger) string {
	if log == nil {
		log = slog.Default()
	}
	switch v := n.(type) {
	case ordinance.Paragraph:
		return v.Text
	case ordinance.Raw:
		return v.Text
	case ordinance.Seq:
		parts := make([]string, 0, len(v))
		for _, sib := range v {
			parts = append(parts, MarkdownBlock(sib, indent, log))
		}
		return strings.Join(parts, "\n")
	case ordinance.List:
		var b strings.Builder
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strings.Repeat(" ", indent))
			b.WriteString("- ")
			b.WriteString(MarkdownBlock(item, indent+indentStep, log))
		}
		return b.String()
	case ordinance.Table:
		return markdownTable(v, log)
	}
	return ""
}

// markdownTable emits a pipe table: optional caption heading, header row,
// separator, then one row per body row with cells in single-line mode.
func markdownTable(t ordinance.Table, log *slog.Logger) string {
	var b strings.Builder
	if t.Caption != "" {
		b.WriteString("### ")
		b.WriteString(t.Caption)
		b.WriteString("\n\n")
	}
	b.WriteByte('|')
	for _, h := range t.Header {
		b.WriteString(" ")
		b.WriteString(MarkdownInline(h, log))
		b.WriteString(" |")
	}
	b.WriteString("\n|")
	for range t.Header {
		b.WriteString(" --- |")
	}
	b.WriteByte('\n')
	for _, row := range t.Body {
		b.WriteByte('|')
		for _, cell := range row {
			b.WriteString(" ")
			b.WriteString(MarkdownInline(cell, log))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// MarkdownDocument assembles whole sections into one markdown document:
// "##" per section, "###" per titled rule, blocks separated by blank lines.
func MarkdownDocument(sections []ordinance.Section, log *slog.Logger) string {
	var b strings.Builder
	for _, sec := range sections {
		b.WriteString("## ")
		b.WriteString(sec.Title)
		b.WriteString("\n\n")
		for _, rule := range sec.Rules {
			if rule.Title != "" {
				b.WriteString("### ")
				b.WriteString(rule.Title)
				b.WriteString("\n\n")
			}
			for _, n := range rule.Content {
				b.WriteString(MarkdownBlock(n, 0, log))
				b.WriteString("\n\n")
			}
		}
	}
	return b.String()
}
