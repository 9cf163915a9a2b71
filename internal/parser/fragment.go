// Package parser converts the HTML fragments embedded in planning API
// responses into ordinance Rules.
package parser

import (
	"log/slog"
	"strings"

	"github.com/dgallion1/planscheme/internal/ordinance"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment scans one section fragment and returns its Rules in document
// order. An h3 closes the current rule and opens a new titled one; rules that
// end up with no content are dropped. A fragment that yields no rules returns
// nil — absence, not an error. Malformed or unexpected markup degrades with a
// diagnostic instead of failing the fragment.
func ParseFragment(fragment string, log *slog.Logger) []ordinance.Rule {
	if log == nil {
		log = slog.Default()
	}

	// Fragments are body-level markup, so parse against a body context.
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	children, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		log.Warn("unparseable fragment", "error", err)
		return nil
	}

	var rules []ordinance.Rule
	current := ordinance.Rule{}
	flush := func() {
		if len(current.Content) > 0 {
			rules = append(rules, current)
		}
	}

	for _, child := range children {
		if child.Type == html.ElementNode && child.Data == "h3" {
			flush()
			current = ordinance.Rule{Title: textContent(child)}
			continue
		}
		if node := parseElem(child, log); node != nil {
			current.Content = append(current.Content, node)
		}
	}
	flush()

	if len(rules) == 0 {
		log.Debug("fragment produced no rules")
		return nil
	}
	return rules
}

// parseElem converts one element to a content node, or nil when the element
// contributes nothing (empty paragraph, line break, stray text).
func parseElem(n *html.Node, log *slog.Logger) ordinance.Node {
	if n.Type != html.ElementNode {
		// Text between elements is layout whitespace; only text inside
		// recognized elements is captured.
		return nil
	}

	switch n.Data {
	case "ul":
		var items []ordinance.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				if item := parseChildren(c, log); item != nil {
					items = append(items, item)
				}
			}
		}
		return ordinance.List{Items: items}
	case "table":
		return parseTable(n, log)
	case "p":
		text := textContent(n)
		if text == "" {
			return nil
		}
		return ordinance.Paragraph{Text: text}
	case "br":
		return nil
	default:
		log.Warn("unexpected element in fragment", "tag", n.Data)
		text := textContent(n)
		if text == "" {
			return nil
		}
		return ordinance.Raw{Text: text}
	}
}

// parseChildren converts an element's children and collapses them per the
// single-child invariant.
func parseChildren(n *html.Node, log *slog.Logger) ordinance.Node {
	var children []ordinance.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if sub := parseElem(c, log); sub != nil {
			children = append(children, sub)
		}
	}
	return ordinance.Collapse(children)
}

// parseTable reads a table element: header cells from the first row's th
// children, the caption if present, and data cells from every later row.
// Cells that yield no content are omitted, so body rows may run short.
func parseTable(n *html.Node, log *slog.Logger) ordinance.Node {
	tbl := ordinance.Table{}
	sawHeaderRow := false

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "caption":
			tbl.Caption = textContent(c)
		case "thead", "tbody":
			for row := c.FirstChild; row != nil; row = row.NextSibling {
				if row.Type != html.ElementNode || row.Data != "tr" {
					continue
				}
				if !sawHeaderRow {
					sawHeaderRow = true
					for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
						if cell.Type == html.ElementNode && cell.Data == "th" {
							if h := parseChildren(cell, log); h != nil {
								tbl.Header = append(tbl.Header, h)
							}
						}
					}
					continue
				}
				var cells []ordinance.Node
				for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type == html.ElementNode && cell.Data == "td" {
						if v := parseChildren(cell, log); v != nil {
							cells = append(cells, v)
						}
					}
				}
				tbl.Body = append(tbl.Body, cells)
			}
		}
	}
	return tbl
}

// textContent collects the trimmed text beneath a node.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
