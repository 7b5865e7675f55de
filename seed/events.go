package seed

import "github.com/vantry/shopsearch/core"

func str(v string) *string { return &v }

func catalogID(v core.CatalogID) *core.CatalogID { return &v }

// SampleEvents converts the sample entries into catalog events in publish
// order, the form the ingestion bus and the seeder command consume. Products
// carry multi-currency prices and inventory, and the hoodie event adds locale
// overrides and synonyms so the full document fan-out is exercised.
func SampleEvents() []core.CatalogEvent {
	events := []core.CatalogEvent{
		{
			ID:          1001,
			Domain:      core.DomainProduct,
			Name:        "Pro Node Hoodie",
			Description: "Soft fleece hoodie built for late-night debugging sessions.",
			Tags:        []string{"apparel", "nodejs", "merch"},
			Synonyms:    []string{"js"},
			LocaleOverrides: map[string]core.LocaleOverride{
				"de-DE": {
					Name:        str("Pro Node Kapuzenpullover"),
					Description: str("Weicher Fleece-Hoodie für lange Debugging-Nächte."),
				},
			},
			PriceByCurrency: map[string]float64{"USD": 79, "EUR": 74},
			Inventory:       &core.InventoryInfo{Available: 140},
			CategoryID:      catalogID(2002),
			CategoryPath:    []string{"apparel", "hoodies"},
		},
		{
			ID:              1002,
			Domain:          core.DomainProduct,
			Name:            "TypeScript Studio License",
			Description:     "Annual subscription that bundles advanced TypeScript tooling and priority support.",
			Tags:            []string{"software", "typescript", "productivity"},
			Synonyms:        []string{"ts"},
			PriceByCurrency: map[string]float64{"USD": 299, "EUR": 279},
			Inventory:       &core.InventoryInfo{Available: 10000},
			CategoryID:      catalogID(2002),
			CategoryPath:    []string{"software", "developer-tools"},
		},
		{
			ID:              1003,
			Domain:          core.DomainProduct,
			Name:            "Edge Deploy Toolkit",
			Description:     "Hardware starter kit plus playbook for rolling out edge functions worldwide.",
			Tags:            []string{"edge", "hardware", "starter-kit"},
			PriceByCurrency: map[string]float64{"USD": 1249},
			Inventory:       &core.InventoryInfo{Available: 38},
			CategoryPath:    []string{"hardware", "edge"},
		},
		{
			ID:          2001,
			Domain:      core.DomainCategory,
			Name:        "Runtime & Platforms",
			Description: "Languages, runtimes, and compute surfaces for modern commerce.",
			Tags:        []string{"runtime", "platforms"},
			Path:        []string{"runtime-platforms"},
		},
		{
			ID:          2002,
			Domain:      core.DomainCategory,
			Name:        "Node.js & Edge",
			Description: "Edge runtimes, streaming primitives, and observability for Node.js.",
			Tags:        []string{"nodejs", "edge"},
			ParentID:    catalogID(2001),
			Path:        []string{"runtime-platforms", "node-edge"},
		},
		{
			ID:          2003,
			Domain:      core.DomainCategory,
			Name:        "Frontend Experience",
			Description: "Design systems, rendering strategies, and UX accelerators.",
			Tags:        []string{"frontend", "ux"},
			ParentID:    catalogID(2001),
			Path:        []string{"runtime-platforms", "frontend-experience"},
		},
	}

	for _, entry := range SampleEditorialEntries() {
		events = append(events, core.CatalogEvent{
			ID:           entry.ID,
			Domain:       core.DomainEditorial,
			Name:         entry.Name,
			Description:  entry.Description,
			Tags:         entry.Tags,
			Author:       entry.Author,
			PublishedAt:  entry.PublishedAt,
			HeroImageURL: entry.HeroImageURL,
		})
	}
	return events
}
