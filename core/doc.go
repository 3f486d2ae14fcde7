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


// Package core contains the domain model for the document store.
//
// A Document is identified by a string id; every other field is
// optional and represented with a pointer so that an absent value is
// distinguishable from an empty one. That distinction matters for
// search: a document with a nil Title never matches a title-prefix
// constraint, while a document with an empty Title matches the empty
// prefix.
//
// The package also carries validation rules and the sentinel errors
// they return. Storage backends live in the storage packages and
// search logic in the search package; core depends on neither.
package core
