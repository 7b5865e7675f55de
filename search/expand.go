package search

import (
	"sort"
	"strings"

	"github.com/vantry/shopsearch/analysis"
	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/dictionary"
)

// ExpandQuery augments query tokens with registered synonyms and, when
// allowFuzzy is set, with every vocabulary word at edit distance exactly one
// from a query token. The narrow exactly-one threshold is deliberate: exact
// matches are already in the token set and wider radii drown short queries
// in noise.
//
// Returns the full expanded token set used for scoring, plus the expansions
// alone (expanded tokens that were not part of the original query), both
// sorted.
func ExpandQuery(tokens []string, dict *dictionary.SynonymDictionary, vocabulary []string, allowFuzzy bool) (expanded, expansions []string) {
	original := make(map[string]struct{}, len(tokens))
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		original[token] = struct{}{}
		set[token] = struct{}{}
	}

	for _, token := range tokens {
		for _, synonym := range dict.Lookup(token) {
			set[synonym] = struct{}{}
		}
	}

	if allowFuzzy {
		for _, token := range tokens {
			for _, word := range vocabulary {
				if analysis.EditDistance(token, word) == 1 {
					set[word] = struct{}{}
				}
			}
		}
	}

	expanded = make([]string, 0, len(set))
	for token := range set {
		expanded = append(expanded, token)
		if _, ok := original[token]; !ok {
			expansions = append(expansions, token)
		}
	}
	sort.Strings(expanded)
	sort.Strings(expansions)
	return expanded, expansions
}

// buildVocabulary collects the distinct tokens of every item's name,
// description, and tags. The result is the fuzzy-match corpus for one
// ranking call.
func buildVocabulary(items []core.Catalog, caseSensitive bool) []string {
	set := make(map[string]struct{})
	for _, item := range items {
		for _, token := range analysis.Tokenize(itemHaystack(item), caseSensitive) {
			set[token] = struct{}{}
		}
	}

	vocabulary := make([]string, 0, len(set))
	for token := range set {
		vocabulary = append(vocabulary, token)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// itemHaystack joins the searchable text fields of one catalog entry.
func itemHaystack(item core.Catalog) string {
	return item.Name + " " + item.Description + " " + strings.Join(item.Tags, " ")
}
