package gateway

import (
	"strings"

	"github.com/vantry/shopsearch/core"
)

// maxSuggestions caps autocomplete responses.
const maxSuggestions = 5

// SearchResultView is the transport projection of one ranked catalog entry.
type SearchResultView struct {
	ID      core.CatalogID `json:"id"`
	Title   string         `json:"title"`
	Snippet string         `json:"snippet"`
	Tags    []string       `json:"tags"`
	Score   float64        `json:"score"`
}

// Suggestion is one autocomplete option.
type Suggestion struct {
	Label string         `json:"label"`
	Value core.CatalogID `json:"value"`
}

// FormatSearchResults projects ranked results into response views.
func FormatSearchResults(results []core.RankedCatalog) []SearchResultView {
	views := make([]SearchResultView, len(results))
	for i, entry := range results {
		views[i] = SearchResultView{
			ID:      entry.ID,
			Title:   entry.Name,
			Snippet: entry.Description,
			Tags:    entry.Tags,
			Score:   entry.Score,
		}
	}
	return views
}

// BuildAutocompleteOptions suggests catalog entries for a partial query: a
// case-insensitive substring match on the name, capped at five. An empty
// query returns the first five entries.
func BuildAutocompleteOptions(query string, catalogs []core.Catalog) []Suggestion {
	suggestions := make([]Suggestion, 0, maxSuggestions)

	if query == "" {
		for _, item := range catalogs {
			if len(suggestions) == maxSuggestions {
				break
			}
			suggestions = append(suggestions, Suggestion{Label: item.Name, Value: item.ID})
		}
		return suggestions
	}

	normalized := strings.ToLower(query)
	for _, item := range catalogs {
		if len(suggestions) == maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(item.Name), normalized) {
			suggestions = append(suggestions, Suggestion{Label: item.Name, Value: item.ID})
		}
	}
	return suggestions
}
