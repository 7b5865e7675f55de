package search

import (
	"sort"

	"github.com/vantry/shopsearch/core"
)

// FacetConfig requests one faceted breakdown of the result set.
type FacetConfig struct {
	// Field selects the facet source: "category", "domain", "tags", or any
	// attribute key.
	Field string
	// Limit truncates the bucket list after sorting. Zero means no limit.
	Limit int
	// PinnedValues always sort before unpinned buckets, regardless of count.
	PinnedValues []string
}

// BuildFacets aggregates facet buckets over a ranked result set. The tags
// field counts every tag occurrence per item; scalar fields contribute one
// vote per item and skip empty values. Buckets sort pinned-first, then by
// descending count, then by ascending value.
func BuildFacets(results []core.RankedCatalog, configs []FacetConfig) map[string][]core.FacetBucket {
	if len(configs) == 0 {
		return nil
	}

	facets := make(map[string][]core.FacetBucket, len(configs))
	for _, config := range configs {
		counts := make(map[string]int)
		for _, entry := range results {
			for _, value := range facetValues(entry.Catalog, config.Field) {
				counts[value]++
			}
		}

		pinned := make(map[string]bool, len(config.PinnedValues))
		for _, value := range config.PinnedValues {
			pinned[value] = true
		}

		buckets := make([]core.FacetBucket, 0, len(counts))
		for value, count := range counts {
			buckets = append(buckets, core.FacetBucket{
				Value:  value,
				Count:  count,
				Pinned: pinned[value],
			})
		}

		sort.Slice(buckets, func(i, j int) bool {
			if buckets[i].Pinned != buckets[j].Pinned {
				return buckets[i].Pinned
			}
			if buckets[i].Count != buckets[j].Count {
				return buckets[i].Count > buckets[j].Count
			}
			return buckets[i].Value < buckets[j].Value
		})

		if config.Limit > 0 && len(buckets) > config.Limit {
			buckets = buckets[:config.Limit]
		}

		facets[config.Field] = buckets
	}

	return facets
}

// facetValues extracts the facet contributions of one catalog entry for a
// field, switching on the known scalar fields and falling back to the
// attribute map.
func facetValues(item core.Catalog, field string) []string {
	switch field {
	case "tags":
		return item.Tags
	case "category":
		if item.Category == "" {
			return nil
		}
		return []string{item.Category}
	case "domain":
		if item.Domain == "" {
			return nil
		}
		return []string{string(item.Domain)}
	default:
		if value, ok := item.Attributes[field]; ok && value != "" {
			return []string{value}
		}
		return nil
	}
}
