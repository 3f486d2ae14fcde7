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


package storage

import "errors"

var (
	// ErrNotFound indicates that the requested document was not found.
	// It is a sentinel, not a failure: lookups with absent or unknown
	// ids degrade to it rather than erroring.
	ErrNotFound = errors.New("document not found")

	// ErrStorageClosed indicates that the repository is closed.
	ErrStorageClosed = errors.New("storage is closed")
)
