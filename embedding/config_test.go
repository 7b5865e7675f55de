package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantry/shopsearch/analysis"
)

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already canonical", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Host: tc.host}
			cfg.Normalize()
			assert.Equal(t, tc.want, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig(WithHost("http://embed.internal:9100"), WithModel("text-embedding-3-small"))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://embed.internal:9100/v1", cfg.Host)

	require.Error(t, (&Config{Model: "m"}).Validate())
	require.Error(t, (&Config{Host: "http://x"}).Validate())
}

func TestDeterministicEmbedder(t *testing.T) {
	embedder := NewDeterministic()
	ctx := context.Background()

	vector, err := embedder.EmbedText(ctx, "Espresso Machine")
	require.NoError(t, err)

	want := analysis.EmbedTokens([]string{"espresso", "machine"})
	assert.Equal(t, want, vector, "matches the query-side token embedding")

	vectors, err := embedder.EmbedTexts(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.NotEqual(t, vectors[0], vectors[1])
}
