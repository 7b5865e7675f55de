package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	d := New()
	d.Add("javascript", []string{"js"})

	t.Run("expands registered terms", func(t *testing.T) {
		got := d.Expand([]string{"JavaScript"})
		assert.ElementsMatch(t, []string{"javascript", "js"}, got)
	})

	t.Run("unknown terms pass through", func(t *testing.T) {
		got := d.Expand([]string{"rust"})
		assert.Equal(t, []string{"rust"}, got)
	})

	t.Run("union is deduplicated", func(t *testing.T) {
		got := d.Expand([]string{"javascript", "js", "JS"})
		assert.ElementsMatch(t, []string{"javascript", "js"}, got)
	})
}

func TestAddAccumulates(t *testing.T) {
	d := New()
	d.Add("js", []string{"javascript"})
	d.Add("js", []string{"node", "nodejs"})

	got := d.Expand([]string{"js"})
	assert.ElementsMatch(t, []string{"js", "javascript", "node", "nodejs"}, got)
}

func TestAddNormalizesCase(t *testing.T) {
	d := New()
	d.Add("Dress", []string{"GOWN"})

	assert.ElementsMatch(t, []string{"dress", "gown"}, d.Expand([]string{"dress"}))
	assert.Equal(t, []string{"gown"}, d.Lookup("DRESS"))
}

func TestLookupUnknown(t *testing.T) {
	d := New()
	assert.Nil(t, d.Lookup("missing"))
}

func TestMerge(t *testing.T) {
	base := New()
	base.Add("js", []string{"javascript"})

	overrides := New()
	overrides.Add("js", []string{"nodejs"})
	overrides.Add("ts", []string{"typescript"})

	base.Merge(overrides)

	assert.ElementsMatch(t, []string{"js", "javascript", "nodejs"}, base.Expand([]string{"js"}))
	assert.ElementsMatch(t, []string{"ts", "typescript"}, base.Expand([]string{"ts"}))

	// Merging nil is a no-op.
	base.Merge(nil)
}
