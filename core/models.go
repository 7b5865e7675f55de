// Copyright 2026 Vantry Commerce
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

// CatalogID is the unique identifier for a catalog entry.
// IDs are globally unique across all domains within one repository.
type CatalogID int64

// CatalogDomain tags a catalog entry with its merchandising domain.
type CatalogDomain string

const (
	// DomainProduct marks sellable items with prices and inventory.
	DomainProduct CatalogDomain = "product"
	// DomainCategory marks navigation/taxonomy nodes.
	DomainCategory CatalogDomain = "category"
	// DomainEditorial marks editorial content such as guides and articles.
	DomainEditorial CatalogDomain = "editorial"
)

// Valid reports whether the domain is one of the known values.
func (d CatalogDomain) Valid() bool {
	switch d {
	case DomainProduct, DomainCategory, DomainEditorial:
		return true
	}
	return false
}

// CatalogMetrics carries the merchandising signals consumed by boosters.
// All fields are optional; absent metrics score as zero, except
// FreshnessDays which defaults to 90 ("old") when nil. An explicit zero
// FreshnessDays means the item is brand new, which is why it is a pointer.
type CatalogMetrics struct {
	Popularity      float64
	InventoryHealth float64
	Margin          float64
	FreshnessDays   *float64
}

// Catalog is the base shape shared by every searchable entry.
type Catalog struct {
	ID          CatalogID
	Name        string
	Description string
	Tags        []string // ordered, duplicates allowed
	Domain      CatalogDomain
	Category    string
	Attributes  map[string]string
	Metrics     *CatalogMetrics
	Vector      []float64 // optional fixed-length embedding; tag embedding is used when empty
}

// InventorySnapshot describes stock levels for a product.
type InventorySnapshot struct {
	Available      int
	Reserved       int
	BackorderLimit int
}

// Product is the product-domain specialization of Catalog.
type Product struct {
	Catalog
	SKU          string
	Price        float64
	Currency     string
	Inventory    InventorySnapshot
	CategoryPath []string
	Brand        string
}

// Category is the category-domain specialization of Catalog.
type Category struct {
	Catalog
	Slug                  string
	ParentID              CatalogID
	ChildIDs              []CatalogID
	Path                  []string
	MerchandisingPriority int
}

// EditorialEntry is the editorial-domain specialization of Catalog.
type EditorialEntry struct {
	Catalog
	Author                string
	PublishedAt           string
	ReadingTimeMinutes    int
	HeroImageURL          string
	RelatedProductIDs     []CatalogID
	FeaturedCategorySlugs []string
}

// ScoreBreakdown decomposes a combined relevance score into its components.
type ScoreBreakdown struct {
	Lexical  float64
	Semantic float64
	Booster  float64
}

// RankedCatalog pairs a catalog entry with its per-query relevance score.
// Produced fresh for every query; never persisted.
type RankedCatalog struct {
	Catalog
	Score     float64
	Breakdown ScoreBreakdown
}

// FacetBucket is one count-aggregated value of a faceted field.
// Pinned buckets sort before unpinned ones regardless of count.
type FacetBucket struct {
	Value  string
	Count  int
	Pinned bool
}
