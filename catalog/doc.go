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


// Package catalog loads the course catalog from tabular sources.
//
// The XLSX loader reads every sheet of a workbook, normalizes headers,
// tolerates missing columns, and parses the free-text course duration into a
// numeric hours value. Rows from each sheet carry the sheet name as their
// category label. A CSV loader covers fixture-sized catalogs. Data-quality
// faults (missing fields, unparseable durations) are substituted with empty
// values, never surfaced as errors; only a structurally unreadable source is
// rejected.
package catalog
