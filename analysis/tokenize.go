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


package analysis

import (
	"strings"
	"unicode"
)

// Tokenize splits text on any run of non-alphanumeric characters, drops
// empty segments, and lowercases the result unless caseSensitive is set.
func Tokenize(text string, caseSensitive bool) []string {
	if !caseSensitive {
		text = strings.ToLower(text)
	}

	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
