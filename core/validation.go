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


package core

import "fmt"

// ValidateEvent validates a CatalogEvent according to pipeline rules.
//
// Validation rules:
//   - ID must be positive
//   - Domain must be a known domain tag
//   - Name must not be empty unless the event is a deletion
//
// NOT validated (optional by design, defaulted downstream):
//   - LocaleOverrides, Synonyms, and every domain-specific field
func ValidateEvent(event CatalogEvent) error {
	if event.ID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrMissingID)
	}

	if !event.Domain.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEvent, ErrUnknownDomain, event.Domain)
	}

	if !event.Deleted && event.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrMissingName)
	}

	return nil
}
