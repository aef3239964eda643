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


package catalog

import "errors"

var (
	// ErrUnreadableSource is returned when the catalog source cannot be
	// opened or parsed at all. No partial catalog is returned alongside it.
	ErrUnreadableSource = errors.New("catalog source is unreadable")

	// ErrEmptyHeader is returned when a CSV source has no header row.
	ErrEmptyHeader = errors.New("catalog source has no header row")
)
