// Copyright 2026 Vantry Commerce
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package dictionary provides the mutable synonym store shared by query
// expansion and document enrichment.
package dictionary

import (
	"sort"
	"strings"
	"sync"
)

// SynonymDictionary maps case-normalized terms to synonym sets. Safe for
// concurrent use; both the ranking engine and the document builder read it
// while merchandisers mutate it.
type SynonymDictionary struct {
	mu      sync.RWMutex
	entries map[string]map[string]struct{}
}

// New creates an empty synonym dictionary.
func New() *SynonymDictionary {
	return &SynonymDictionary{
		entries: make(map[string]map[string]struct{}),
	}
}

// Add registers synonyms for a term. Terms and synonyms are lowercased, and
// repeated calls accumulate into the existing set rather than replacing it.
func (d *SynonymDictionary) Add(term string, synonyms []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	normalized := strings.ToLower(term)
	bucket, ok := d.entries[normalized]
	if !ok {
		bucket = make(map[string]struct{})
		d.entries[normalized] = bucket
	}
	for _, synonym := range synonyms {
		bucket[strings.ToLower(synonym)] = struct{}{}
	}
}

// Expand returns the deduplicated union of every input value (lowercased)
// and its registered synonyms, sorted for determinism. Unknown terms pass
// through unchanged.
func (d *SynonymDictionary) Expand(values []string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.ToLower(value)
		set[normalized] = struct{}{}
		for synonym := range d.entries[normalized] {
			set[synonym] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the registered synonyms for a single term, or nil when the
// term has none. The term is lowercased before lookup.
func (d *SynonymDictionary) Lookup(term string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	bucket, ok := d.entries[strings.ToLower(term)]
	if !ok {
		return nil
	}

	out := make([]string, 0, len(bucket))
	for synonym := range bucket {
		out = append(out, synonym)
	}
	sort.Strings(out)
	return out
}

// Merge copies every entry of other into d. Used to layer caller overrides
// on top of the engine's built-in defaults.
func (d *SynonymDictionary) Merge(other *SynonymDictionary) {
	if other == nil {
		return
	}

	other.mu.RLock()
	defer other.mu.RUnlock()

	for term, bucket := range other.entries {
		synonyms := make([]string, 0, len(bucket))
		for synonym := range bucket {
			synonyms = append(synonyms, synonym)
		}
		d.Add(term, synonyms)
	}
}
