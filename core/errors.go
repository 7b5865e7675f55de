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

import "errors"

var (
	// ErrInvalidEvent indicates a catalog event that fails validation.
	ErrInvalidEvent = errors.New("invalid catalog event")

	// ErrMissingID indicates an event without a positive catalog id.
	ErrMissingID = errors.New("catalog id required")

	// ErrMissingName indicates a non-deleted event without a name.
	ErrMissingName = errors.New("catalog name required")

	// ErrUnknownDomain indicates an event with an unrecognized domain tag.
	ErrUnknownDomain = errors.New("unknown catalog domain")
)
