package core

// LocaleOverride carries locale-specific copy that replaces the base
// name/description/tags of an event for one locale. Nil fields fall back to
// the event's base values.
type LocaleOverride struct {
	Name        *string
	Description *string
	Tags        []string
}

// InventoryInfo describes stock levels attached to a product event.
type InventoryInfo struct {
	Available int
	Backorder *int
}

// CatalogEvent is the sole unit of catalog mutation. One event carries the
// full state of a catalog entry; there is no partial-field patching. The
// Domain tag selects which of the domain-specific field groups is meaningful,
// matching the tagged-union shape of the wire format.
type CatalogEvent struct {
	ID              CatalogID
	Domain          CatalogDomain
	Name            string
	Description     string
	Tags            []string
	Deleted         bool
	LocaleOverrides map[string]LocaleOverride
	Synonyms        []string

	// Product fields.
	PriceByCurrency map[string]float64
	Inventory       *InventoryInfo
	CategoryID      *CatalogID
	CategoryPath    []string

	// Category fields.
	ParentID *CatalogID
	Path     []string

	// Editorial fields.
	Author       string
	PublishedAt  string
	HeroImageURL string
}

// Catalog projects the event into the repository read model.
func (e CatalogEvent) Catalog() Catalog {
	return Catalog{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Tags:        e.Tags,
		Domain:      e.Domain,
	}
}
