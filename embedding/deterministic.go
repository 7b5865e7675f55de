package embedding

import (
	"context"

	"github.com/vantry/shopsearch/analysis"
)

// Deterministic is the reference embedder. It applies the same token-sum
// embedding the ranking engine uses for queries, so item vectors produced
// here live in the query vector space without any external service.
type Deterministic struct{}

var _ Embedder = Deterministic{}

// NewDeterministic creates the reference embedder.
func NewDeterministic() Deterministic {
	return Deterministic{}
}

// EmbedText embeds one text as the normalized average of its token vectors.
func (Deterministic) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analysis.EmbedTokens(analysis.Tokenize(text, false)), nil
}

// EmbedTexts embeds a batch of texts.
func (d Deterministic) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vector, err := d.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}
