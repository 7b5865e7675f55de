package core

import "fmt"

// IndexDocument is the fully denormalized, immutable unit written to the
// search index. One catalog event expands into one document per
// (locale, currency) pair so queries never need locale or currency joins.
type IndexDocument struct {
	ID          string         `json:"id"`
	CatalogID   CatalogID      `json:"catalogId"`
	Domain      CatalogDomain  `json:"domain"`
	Locale      string         `json:"locale"`
	Currency    string         `json:"currency"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Price       *float64       `json:"price"` // nil for non-product domains or missing currency
	Synonyms    []string       `json:"synonyms"`
	Metadata    map[string]any `json:"metadata"`
}

// DocumentID builds the canonical index document key.
func DocumentID(id CatalogID, locale, currency string) string {
	return fmt.Sprintf("%d:%s:%s", id, locale, currency)
}
