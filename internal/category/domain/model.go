package domain

// Category groups products on the public catalog. Like brands, products copy
// the category name as free text with no referential link.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
