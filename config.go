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


package rumbo

import "fmt"

// Config holds the recommendation pipeline configuration.
type Config struct {
	// TopKCandidates is how many candidates hybrid retrieval fetches
	// before filtering. Default: 80
	TopKCandidates int

	// TopKFinal is how many courses the reranker keeps. Default: 12
	TopKFinal int
}

// DefaultConfig returns a Config with the default pipeline sizes.
func DefaultConfig() *Config {
	return &Config{
		TopKCandidates: 80,
		TopKFinal:      12,
	}
}

// Validate checks the configuration for usability.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if c.TopKCandidates <= 0 {
		return fmt.Errorf("%w: TopKCandidates must be greater than 0", ErrInvalidConfig)
	}
	if c.TopKFinal <= 0 {
		return fmt.Errorf("%w: TopKFinal must be greater than 0", ErrInvalidConfig)
	}
	return nil
}
