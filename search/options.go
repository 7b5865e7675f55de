package search

import (
	"log/slog"

	"github.com/vantry/shopsearch/dictionary"
)

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used for per-item scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		return e.resizePool(size)
	}
}

const (
	defaultLexicalWeight  = 0.6
	defaultSemanticWeight = 0.3
)

// rankOptions holds the per-call ranking knobs.
type rankOptions struct {
	caseSensitive  bool
	allowFuzzy     bool
	lexicalWeight  float64
	semanticWeight float64
	synonyms       *dictionary.SynonymDictionary
	boosters       []Booster
	faceting       []FacetConfig
}

func defaultRankOptions() rankOptions {
	return rankOptions{
		allowFuzzy:     true,
		lexicalWeight:  defaultLexicalWeight,
		semanticWeight: defaultSemanticWeight,
		boosters:       DefaultBoosters(),
	}
}

// RankOption configures a single Rank call.
type RankOption func(*rankOptions)

// WithCaseSensitive toggles case-sensitive matching. Default is false.
func WithCaseSensitive(caseSensitive bool) RankOption {
	return func(o *rankOptions) {
		o.caseSensitive = caseSensitive
	}
}

// WithFuzzy toggles edit-distance query expansion. Default is true.
func WithFuzzy(allowFuzzy bool) RankOption {
	return func(o *rankOptions) {
		o.allowFuzzy = allowFuzzy
	}
}

// WithWeights overrides the lexical and semantic blend weights.
// Defaults are 0.6 and 0.3.
func WithWeights(lexical, semantic float64) RankOption {
	return func(o *rankOptions) {
		o.lexicalWeight = lexical
		o.semanticWeight = semantic
	}
}

// WithSynonyms layers caller synonyms on top of the engine's built-in
// defaults for this call.
func WithSynonyms(dict *dictionary.SynonymDictionary) RankOption {
	return func(o *rankOptions) {
		o.synonyms = dict
	}
}

// WithBoosters replaces the default booster set for this call.
// Pass no boosters to disable boosting entirely.
func WithBoosters(boosters ...Booster) RankOption {
	return func(o *rankOptions) {
		o.boosters = boosters
	}
}

// WithFaceting requests facet aggregation over the result set.
func WithFaceting(configs ...FacetConfig) RankOption {
	return func(o *rankOptions) {
		o.faceting = configs
	}
}
