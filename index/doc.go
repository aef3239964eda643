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


// Package index provides hybrid lexical retrieval over a course catalog.
//
// Each course is flattened into one document string and indexed by two
// independent models: a BM25 probabilistic term-frequency model and a
// TF-IDF vector-space model over unigrams and bigrams. HybridSearch fuses
// both result lists by dividing each raw score by the model's top score and
// by the document's 1-based rank, then summing the two contributions.
//
// An Index is immutable once built. The Cache keys built indexes by catalog
// fingerprint, so a changed catalog always gets a brand-new index instead of
// an in-place rebuild.
package index
