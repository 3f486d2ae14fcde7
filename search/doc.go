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


// Package search provides multi-criteria filtering over a document
// repository.
//
// The Searcher scans every stored document and keeps those that
// satisfy all four predicate categories:
//   - title prefix matching
//   - content substring matching
//   - author id equality
//   - inclusive created-time range
//
// Within a category the candidate values are OR-ed; across categories
// the predicates are AND-ed. A category with no candidates constrains
// nothing, so the empty request matches every document. Results carry
// no relevance order.
//
// A SearchMonitor can be supplied per call to observe the scan.
package search
