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


// Package storage provides the storage abstraction layer for docstore.
//
// This package defines the repository interface that decouples storage
// implementation from search and facade logic. The only shipped backend
// is the in-memory one (storage/memory); the interface exists so that
// search and tests never couple to it.
//
// # Identity
//
// Repository keys always equal the stored document's id, and stored ids
// are never empty: Save trims the caller's id and generates a fresh one
// when the trimmed id is empty. Save is an upsert; there is no delete
// operation, documents are only ever created or replaced.
//
// # Not Found
//
// Point lookups report a missing document with the ErrNotFound
// sentinel rather than a failure. Callers check it with errors.Is.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. The in-memory backend
// never blocks, so the context goes unused there, but the interface
// keeps the parameter so alternative backends can honor cancellation.
package storage
