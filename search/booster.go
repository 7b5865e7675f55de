package search

import "github.com/vantry/shopsearch/core"

// defaultFreshnessDays is assumed when an item carries no freshness metric,
// so unannotated items score as "old" rather than "brand new".
const defaultFreshnessDays = 90

// Booster is a named, query-independent scoring rule driven by item metrics.
// Booster output is added on top of the weighted lexical/semantic blend
// without further weighting, so strong merchandising signals can outrank
// textual relevance.
type Booster struct {
	Name  string
	Score func(core.Catalog) float64
}

// DefaultBoosters returns the built-in booster set: popularity at full
// weight, inventory health at 0.3, margin at 0.2, and a freshness decay
// worth up to 0.2 that fades linearly to zero at 90 days.
func DefaultBoosters() []Booster {
	return []Booster{
		{
			Name: "popularity",
			Score: func(c core.Catalog) float64 {
				if c.Metrics == nil {
					return 0
				}
				return c.Metrics.Popularity
			},
		},
		{
			Name: "inventory-health",
			Score: func(c core.Catalog) float64 {
				if c.Metrics == nil {
					return 0
				}
				return 0.3 * c.Metrics.InventoryHealth
			},
		},
		{
			Name: "margin",
			Score: func(c core.Catalog) float64 {
				if c.Metrics == nil {
					return 0
				}
				return 0.2 * c.Metrics.Margin
			},
		},
		{
			Name: "freshness",
			Score: func(c core.Catalog) float64 {
				days := float64(defaultFreshnessDays)
				if c.Metrics != nil && c.Metrics.FreshnessDays != nil {
					days = *c.Metrics.FreshnessDays
				}
				decay := 1 - days/defaultFreshnessDays
				if decay < 0 {
					decay = 0
				}
				return 0.2 * decay
			},
		},
	}
}

// boosterScore sums every booster's contribution for one item.
func boosterScore(item core.Catalog, boosters []Booster) float64 {
	var total float64
	for _, b := range boosters {
		total += b.Score(item)
	}
	return total
}
