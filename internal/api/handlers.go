package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dgallion1/planscheme/internal/ordinance"
	"github.com/dgallion1/planscheme/internal/parser"
	"github.com/dgallion1/planscheme/internal/render"
)

// markdownHTML converts rendered markdown to HTML for browser preview.
// GFM is needed for the pipe tables the markdown renderer emits.
var markdownHTML = goldmark.New(goldmark.WithExtensions(extension.GFM))

// handleOrdinance fetches, parses and renders one ordinance.
// Query: clause, subclause (required); format=md|html|json (default md).
func (s *Server) handleOrdinance(w http.ResponseWriter, r *http.Request) {
	clause := r.URL.Query().Get("clause")
	subClause := r.URL.Query().Get("subclause")
	if clause == "" || subClause == "" {
		jsonError(w, "clause and subclause query parameters are required", http.StatusBadRequest)
		return
	}

	raw, err := s.client.Sections(r.Context(), clause, subClause)
	if err != nil {
		jsonError(w, "fetch ordinance: "+err.Error(), http.StatusBadGateway)
		return
	}

	var sections []ordinance.Section
	for _, sec := range raw {
		rules := parser.ParseFragment(sec.Content, s.log)
		if rules == nil {
			continue
		}
		sections = append(sections, ordinance.Section{Title: sec.Title, Rules: rules})
	}
	if len(sections) == 0 {
		jsonError(w, "ordinance has no parseable sections", http.StatusNotFound)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		fmt.Fprint(w, render.MarkdownDocument(sections, s.log))
	case "html":
		md := render.MarkdownDocument(sections, s.log)
		var buf bytes.Buffer
		if err := markdownHTML.Convert([]byte(md), &buf); err != nil {
			jsonError(w, "convert markdown: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<html><head><title>%s - %s</title></head><body>\n", clause, subClause)
		w.Write(buf.Bytes())
		fmt.Fprint(w, "</body></html>\n")
	case "json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"sections": sections})
	default:
		jsonError(w, "unknown format: "+format, http.StatusBadRequest)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
