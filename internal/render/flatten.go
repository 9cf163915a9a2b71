package render

import (
	"log/slog"
	"strings"

	"github.com/dgallion1/planscheme/internal/ordinance"
)

// Flatten reduces a node subtree to plain inline text, space-joined across
// siblings. It backs contexts that cannot hold structure, such as table
// header cells. A table reached here is unrepresentable: it logs a
// diagnostic and contributes nothing.
func Flatten(n ordinance.Node, log *slog.Logger) string {
	if log == nil {
		log = slog.Default()
	}
	switch v := n.(type) {
	case ordinance.Paragraph:
		return v.Text
	case ordinance.Raw:
		return v.Text
	case ordinance.Seq:
		return flattenAll(v, log)
	case ordinance.List:
		return flattenAll(v.Items, log)
	case ordinance.Table:
		log.Warn("table inside flattened context, dropping")
		return ""
	}
	return ""
}

func flattenAll(nodes []ordinance.Node, log *slog.Logger) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, Flatten(n, log))
	}
	return strings.Join(parts, " ")
}
