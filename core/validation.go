// Copyright 2026 Innovatel
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

import (
	"fmt"
	"strings"
)

// ValidateDocument validates a document before it is stored.
//
// Validation rules:
//   - The document must not be nil
//
// NOT validated:
//   - Id (empty or whitespace ids are legal; the store generates one)
//   - Title, Content, Author, Created (all optional)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nothing to save", ErrNilDocument)
	}
	return nil
}

// ValidateSearchRequest reports an obviously inverted created range.
//
// Advisory only: Search accepts any request without error, and an
// inverted range simply matches no documents.
func ValidateSearchRequest(req *SearchRequest) error {
	if req == nil {
		return nil
	}
	if req.CreatedFrom != nil && req.CreatedTo != nil && req.CreatedFrom.After(*req.CreatedTo) {
		return fmt.Errorf("%w: %w", ErrInvalidSearchRequest, ErrInvertedRange)
	}
	return nil
}

// NormalizeID trims surrounding whitespace from an id. An id that is
// empty after trimming counts as absent.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
