package domain

// Brand is a manufacturer label shown on the public catalog. Products copy
// the brand name as free text; there is no referential link back here.
type Brand struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
