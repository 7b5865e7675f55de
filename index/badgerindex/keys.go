package badgerindex

import (
	"fmt"

	"github.com/vantry/shopsearch/core"
)

// Key layout. Each catalog's documents are one value under a
// generation-prefixed key; the metadata key names the live generation.
const (
	catalogBucketPrefix = "catdoc"
	generationKey       = "meta:generation"
)

// makeCatalogKey generates the bucket key for one catalog in one generation.
func makeCatalogKey(generation uint64, id core.CatalogID) []byte {
	return []byte(fmt.Sprintf("%s:%d:%d", catalogBucketPrefix, generation, id))
}

// makeGenerationPrefix generates the iteration prefix covering every catalog
// bucket of one generation.
func makeGenerationPrefix(generation uint64) []byte {
	return []byte(fmt.Sprintf("%s:%d:", catalogBucketPrefix, generation))
}
