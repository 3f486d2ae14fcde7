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

import "errors"

// Domain validation errors
var (
	// ErrNilDocument indicates a nil document was passed to Save.
	ErrNilDocument = errors.New("document is nil")

	// ErrInvalidSearchRequest indicates a SearchRequest failed validation.
	ErrInvalidSearchRequest = errors.New("invalid search request")

	// ErrInvertedRange indicates CreatedFrom is later than CreatedTo.
	ErrInvertedRange = errors.New("createdFrom is after createdTo")
)
