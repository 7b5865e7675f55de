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


// Package seed provides sample catalog data for local development, demos,
// and the seeder command.
package seed

import "github.com/vantry/shopsearch/core"

func days(v float64) *float64 { return &v }

// SampleProducts returns the demo product entries.
func SampleProducts() []core.Product {
	return []core.Product{
		{
			Catalog: core.Catalog{
				ID:          1001,
				Name:        "Pro Node Hoodie",
				Description: "Soft fleece hoodie built for late-night debugging sessions.",
				Tags:        []string{"apparel", "nodejs", "merch"},
				Domain:      core.DomainProduct,
				Category:    "merchandise",
				Attributes:  map[string]string{"material": "cotton blend", "fit": "unisex", "color": "charcoal"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.92, InventoryHealth: 0.78, Margin: 0.45, FreshnessDays: days(18)},
				Vector:      []float64{0.78, 0.62, 0.41},
			},
			SKU:          "HOOD-NODE-001",
			Price:        79,
			Currency:     "USD",
			Inventory:    core.InventorySnapshot{Available: 140, Reserved: 12},
			CategoryPath: []string{"apparel", "hoodies"},
			Brand:        "CodeThreads",
		},
		{
			Catalog: core.Catalog{
				ID:          1002,
				Name:        "TypeScript Studio License",
				Description: "Annual subscription that bundles advanced TypeScript tooling and priority support.",
				Tags:        []string{"software", "typescript", "productivity"},
				Domain:      core.DomainProduct,
				Category:    "software",
				Attributes:  map[string]string{"delivery": "digital", "seatCount": "single"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.88, InventoryHealth: 0.98, Margin: 0.72, FreshnessDays: days(6)},
				Vector:      []float64{0.84, 0.59, 0.66},
			},
			SKU:          "TS-STUDIO-ANNUAL",
			Price:        299,
			Currency:     "USD",
			Inventory:    core.InventorySnapshot{Available: 10000},
			CategoryPath: []string{"software", "developer-tools"},
			Brand:        "DevFlow",
		},
		{
			Catalog: core.Catalog{
				ID:          1003,
				Name:        "Edge Deploy Toolkit",
				Description: "Hardware starter kit plus playbook for rolling out edge functions worldwide.",
				Tags:        []string{"edge", "hardware", "starter-kit"},
				Domain:      core.DomainProduct,
				Category:    "infrastructure",
				Attributes:  map[string]string{"includes": "gateway, sensors, cables"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.74, InventoryHealth: 0.52, Margin: 0.38, FreshnessDays: days(42)},
				Vector:      []float64{0.71, 0.49, 0.57},
			},
			SKU:          "EDGE-KIT-START",
			Price:        1249,
			Currency:     "USD",
			Inventory:    core.InventorySnapshot{Available: 38, Reserved: 7},
			CategoryPath: []string{"hardware", "edge"},
			Brand:        "Northwind Devices",
		},
	}
}

// SampleCategories returns the demo taxonomy nodes.
func SampleCategories() []core.Category {
	return []core.Category{
		{
			Catalog: core.Catalog{
				ID:          2001,
				Name:        "Runtime & Platforms",
				Description: "Languages, runtimes, and compute surfaces for modern commerce.",
				Tags:        []string{"runtime", "platforms"},
				Domain:      core.DomainCategory,
				Category:    "navigation",
				Attributes:  map[string]string{"depth": "1"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.81, InventoryHealth: 0.9, Margin: 0.3, FreshnessDays: days(12)},
				Vector:      []float64{0.66, 0.58, 0.47},
			},
			Slug:     "runtime-platforms",
			ChildIDs: []core.CatalogID{2002, 2003},
			Path:     []string{"runtime-platforms"},
		},
		{
			Catalog: core.Catalog{
				ID:          2002,
				Name:        "Node.js & Edge",
				Description: "Edge runtimes, streaming primitives, and observability for Node.js.",
				Tags:        []string{"nodejs", "edge"},
				Domain:      core.DomainCategory,
				Category:    "navigation",
				Attributes:  map[string]string{"depth": "2"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.77, InventoryHealth: 0.88, Margin: 0.28, FreshnessDays: days(8)},
				Vector:      []float64{0.7, 0.6, 0.52},
			},
			Slug:     "node-edge",
			ParentID: 2001,
			Path:     []string{"runtime-platforms", "node-edge"},
		},
		{
			Catalog: core.Catalog{
				ID:          2003,
				Name:        "Frontend Experience",
				Description: "Design systems, rendering strategies, and UX accelerators.",
				Tags:        []string{"frontend", "ux"},
				Domain:      core.DomainCategory,
				Category:    "navigation",
				Attributes:  map[string]string{"depth": "2"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.69, InventoryHealth: 0.73, Margin: 0.25, FreshnessDays: days(20)},
				Vector:      []float64{0.61, 0.56, 0.44},
			},
			Slug:     "frontend-experience",
			ParentID: 2001,
			Path:     []string{"runtime-platforms", "frontend-experience"},
		},
	}
}

// SampleEditorialEntries returns the demo editorial content.
func SampleEditorialEntries() []core.EditorialEntry {
	return []core.EditorialEntry{
		{
			Catalog: core.Catalog{
				ID:          3001,
				Name:        "Scaling Search for Flash Sales",
				Description: "Playbook for keeping relevance high during 10x traffic spikes.",
				Tags:        []string{"guide", "search", "flash-sale"},
				Domain:      core.DomainEditorial,
				Category:    "editorial",
				Attributes:  map[string]string{"format": "case-study"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.61, FreshnessDays: days(4)},
				Vector:      []float64{0.55, 0.47, 0.59},
			},
			Author:                "Lena Torres",
			PublishedAt:           "2025-11-18T09:00:00.000Z",
			ReadingTimeMinutes:    7,
			HeroImageURL:          "https://cdn.example.com/editorial/flash-sales.png",
			RelatedProductIDs:     []core.CatalogID{1003},
			FeaturedCategorySlugs: []string{"runtime-platforms"},
		},
		{
			Catalog: core.Catalog{
				ID:          3002,
				Name:        "Composable Commerce Starter",
				Description: "Editorial walkthrough that pairs must-have APIs with merch tactics.",
				Tags:        []string{"composable", "guide"},
				Domain:      core.DomainEditorial,
				Category:    "editorial",
				Attributes:  map[string]string{"format": "long-form"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.58, FreshnessDays: days(15)},
				Vector:      []float64{0.52, 0.44, 0.6},
			},
			Author:                "Miguel Avery",
			PublishedAt:           "2025-10-02T15:30:00.000Z",
			ReadingTimeMinutes:    9,
			HeroImageURL:          "https://cdn.example.com/editorial/composable.png",
			RelatedProductIDs:     []core.CatalogID{1002},
			FeaturedCategorySlugs: []string{"frontend-experience"},
		},
		{
			Catalog: core.Catalog{
				ID:          3003,
				Name:        "Merchandising with Generative AI",
				Description: "How editorial teams blend AI copy with curated brand guardrails.",
				Tags:        []string{"ai", "editorial"},
				Domain:      core.DomainEditorial,
				Category:    "editorial",
				Attributes:  map[string]string{"format": "interview"},
				Metrics:     &core.CatalogMetrics{Popularity: 0.64, FreshnessDays: days(1)},
				Vector:      []float64{0.57, 0.5, 0.63},
			},
			Author:                "Rina Patel",
			PublishedAt:           "2026-01-22T11:00:00.000Z",
			ReadingTimeMinutes:    6,
			HeroImageURL:          "https://cdn.example.com/editorial/genai.png",
			RelatedProductIDs:     []core.CatalogID{1001},
			FeaturedCategorySlugs: []string{"runtime-platforms", "frontend-experience"},
		},
	}
}

// SampleCatalogs flattens every sample entry into base catalog shapes, the
// form the repository serves to the ranking engine.
func SampleCatalogs() []core.Catalog {
	var catalogs []core.Catalog
	for _, product := range SampleProducts() {
		catalogs = append(catalogs, product.Catalog)
	}
	for _, category := range SampleCategories() {
		catalogs = append(catalogs, category.Catalog)
	}
	for _, entry := range SampleEditorialEntries() {
		catalogs = append(catalogs, entry.Catalog)
	}
	return catalogs
}
