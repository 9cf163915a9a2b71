package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dgallion1/planscheme/internal/ordinance"
)

// Terminal writes sections to w for reading in a console: colored headings,
// indented bullets, and boxed tables.
func Terminal(w io.Writer, sections []ordinance.Section, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	heading := color.New(color.FgGreen, color.Bold).SprintFunc()
	subheading := color.New(color.FgCyan).SprintFunc()

	for _, sec := range sections {
		fmt.Fprintf(w, "%s\n\n", heading(sec.Title))
		for _, rule := range sec.Rules {
			if rule.Title != "" {
				fmt.Fprintf(w, "%s\n\n", subheading(rule.Title))
			}
			for _, n := range rule.Content {
				termNode(w, n, 0, log)
				fmt.Fprintln(w)
			}
		}
	}
}

func termNode(w io.Writer, n ordinance.Node, indent int, log *slog.Logger) {
	prefix := strings.Repeat(" ", indent*2)
	switch v := n.(type) {
	case ordinance.Paragraph:
		fmt.Fprintf(w, "%s%s\n", prefix, v.Text)
	case ordinance.Raw:
		fmt.Fprintf(w, "%s%s\n", prefix, v.Text)
	case ordinance.Seq:
		for _, sib := range v {
			termNode(w, sib, indent, log)
		}
	case ordinance.List:
		for _, item := range v.Items {
			fmt.Fprintf(w, "%s- ", prefix)
			termItem(w, item, indent, log)
		}
	case ordinance.Table:
		termTable(w, v, log)
	}
}

// termItem prints a list item's first line after the bullet and any further
// structure on its own indented lines.
func termItem(w io.Writer, item ordinance.Node, indent int, log *slog.Logger) {
	switch v := item.(type) {
	case ordinance.Paragraph:
		fmt.Fprintln(w, v.Text)
	case ordinance.Raw:
		fmt.Fprintln(w, v.Text)
	case ordinance.Seq:
		if len(v) == 0 {
			fmt.Fprintln(w)
			return
		}
		termItem(w, v[0], indent, log)
		for _, sib := range v[1:] {
			termNode(w, sib, indent+1, log)
		}
	default:
		fmt.Fprintln(w)
		termNode(w, item, indent+1, log)
	}
}

func termTable(w io.Writer, v ordinance.Table, log *slog.Logger) {
	if v.Caption != "" {
		caption := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(w, "%s\n", caption(v.Caption))
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(v.Header))
	for _, h := range v.Header {
		header = append(header, Flatten(h, log))
	}
	t.AppendHeader(header)

	for _, row := range v.Body {
		cells := make(table.Row, 0, len(row))
		for _, cell := range row {
			cells = append(cells, Flatten(cell, log))
		}
		t.AppendRow(cells)
	}
	t.Render()
}
