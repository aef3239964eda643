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


// Package profile holds the per-session user profile driving retrieval.
//
// State is a value: transitions take the old state plus an input and return
// a new state, so the conversational slot-filling is testable without any
// UI. The package also derives the two retrieval inputs from a state — the
// hybrid-search query string and the user token list for keyword-overlap
// scoring.
package profile
