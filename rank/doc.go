// Copyright 2025 Atenea Labs
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


// Package rank narrows and reorders retrieval candidates.
//
// The metadata filter is a conjunctive predicate over the explicit facets a
// user selected; it decides membership only, never order. The scorer then
// computes nine named features per candidate and a weighted linear score
// with fixed, hand-tuned weights, and stable-sorts descending. Scores are
// only meaningful relative to each other within one request.
package rank
