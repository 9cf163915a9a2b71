package vicplan

// SubClause is one entry under a clause in the scheme index.
type SubClause struct {
	Title       string `json:"title"`
	OrdinanceID string `json:"ordinanceID"`
}

// Clause is one top-level clause in the scheme index.
type Clause struct {
	Title      string      `json:"title"`
	SubClauses []SubClause `json:"subClauses"`
}

// Index is the response from GET /schemes/vpp.
type Index struct {
	Clauses []Clause `json:"clauses"`
}

// Section is one section of an ordinance. Content is an HTML fragment
// holding the section's rendered legal text.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Ordinance is the response from GET /schemes/vpp/ordinances/{id}.
type Ordinance struct {
	Content           string    `json:"content"`
	OrdinanceSections []Section `json:"ordinanceSections"`
}
