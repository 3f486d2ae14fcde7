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


// Package memory implements storage.DocumentRepository with a plain
// map guarded by a single RWMutex. Save takes the write lock; FindByID,
// All and Len take the read lock. No finer coordination is needed
// because every operation is a direct, non-blocking map access.
//
// The repository stores and returns deep copies, so documents held by
// callers never alias store state in either direction.
package memory
