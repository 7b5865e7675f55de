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


package pipeline

import (
	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/dictionary"
)

// DocumentBuilder expands catalog events into indexable documents across
// locales and currencies, enriching each document with synonym-expanded
// terms from its dictionary.
type DocumentBuilder struct {
	dictionary *dictionary.SynonymDictionary
}

// NewDocumentBuilder creates a builder. A nil dictionary gets an empty one.
func NewDocumentBuilder(dict *dictionary.SynonymDictionary) *DocumentBuilder {
	if dict == nil {
		dict = dictionary.New()
	}
	return &DocumentBuilder{dictionary: dict}
}

// Build expands one event into one document per (locale, currency) pair.
// A deletion event yields no documents. Synonym terms and the metadata bag
// are computed once per event; locale overrides fall back per field to the
// event's base copy, and price resolves only for product events via the
// currency map.
func (b *DocumentBuilder) Build(event core.CatalogEvent, locales, currencies []string) []core.IndexDocument {
	if event.Deleted {
		return nil
	}

	terms := make([]string, 0, 1+len(event.Tags)+len(event.Synonyms))
	terms = append(terms, event.Name)
	terms = append(terms, event.Tags...)
	terms = append(terms, event.Synonyms...)
	synonyms := b.dictionary.Expand(terms)
	metadata := metadataForEvent(event)

	documents := make([]core.IndexDocument, 0, len(locales)*len(currencies))
	for _, locale := range locales {
		name := event.Name
		description := event.Description
		tags := event.Tags
		if override, ok := event.LocaleOverrides[locale]; ok {
			if override.Name != nil {
				name = *override.Name
			}
			if override.Description != nil {
				description = *override.Description
			}
			if override.Tags != nil {
				tags = override.Tags
			}
		}

		for _, currency := range currencies {
			documents = append(documents, core.IndexDocument{
				ID:          core.DocumentID(event.ID, locale, currency),
				CatalogID:   event.ID,
				Domain:      event.Domain,
				Locale:      locale,
				Currency:    currency,
				Name:        name,
				Description: description,
				Tags:        tags,
				Price:       priceForCurrency(event, currency),
				Synonyms:    synonyms,
				Metadata:    metadata,
			})
		}
	}
	return documents
}

// priceForCurrency resolves the document price. Only product events carry
// prices; a currency absent from the map yields nil.
func priceForCurrency(event core.CatalogEvent, currency string) *float64 {
	if event.Domain != core.DomainProduct {
		return nil
	}
	price, ok := event.PriceByCurrency[currency]
	if !ok {
		return nil
	}
	return &price
}

// metadataForEvent builds the per-domain metadata bag. Absent optional
// fields are carried as explicit nulls so every document of one domain has
// the same metadata keys.
func metadataForEvent(event core.CatalogEvent) map[string]any {
	switch event.Domain {
	case core.DomainProduct:
		metadata := map[string]any{
			"categoryId":         nil,
			"categoryPath":       emptyIfNil(event.CategoryPath),
			"inventoryAvailable": nil,
			"inventoryBackorder": nil,
		}
		if event.CategoryID != nil {
			metadata["categoryId"] = *event.CategoryID
		}
		if event.Inventory != nil {
			metadata["inventoryAvailable"] = event.Inventory.Available
			if event.Inventory.Backorder != nil {
				metadata["inventoryBackorder"] = *event.Inventory.Backorder
			}
		}
		return metadata

	case core.DomainCategory:
		metadata := map[string]any{
			"parentId": nil,
			"path":     emptyIfNil(event.Path),
		}
		if event.ParentID != nil {
			metadata["parentId"] = *event.ParentID
		}
		return metadata

	default:
		metadata := map[string]any{
			"author":       nil,
			"publishedAt":  nil,
			"heroImageUrl": nil,
		}
		if event.Author != "" {
			metadata["author"] = event.Author
		}
		if event.PublishedAt != "" {
			metadata["publishedAt"] = event.PublishedAt
		}
		if event.HeroImageURL != "" {
			metadata["heroImageUrl"] = event.HeroImageURL
		}
		return metadata
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
