package search

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"

	"github.com/vantry/shopsearch/core"
)

// corpusFingerprint hashes the searchable text of every candidate item into
// a stable 64-bit value. The fingerprint changes whenever item text changes,
// so the engine can reuse its tokenized vocabulary across ranking calls over
// an unchanged catalog.
func corpusFingerprint(items []core.Catalog, caseSensitive bool) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits

	var idBuf [8]byte
	for _, item := range items {
		binary.LittleEndian.PutUint64(idBuf[:], uint64(item.ID))
		h.Write(idBuf[:])
		h.Write([]byte(item.Name))
		h.Write([]byte{0})
		h.Write([]byte(item.Description))
		h.Write([]byte{0})
		h.Write([]byte(strings.Join(item.Tags, "\x01")))
		h.Write([]byte{0})
	}
	if caseSensitive {
		h.Write([]byte{1})
	}

	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
