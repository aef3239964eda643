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


// Package ai defines the text-generation abstraction used by the coach.
//
// The core pipeline treats the language model as an opaque collaborator:
// TextGenerator turns a conversation into a reply. The openai subpackage
// backs it with any OpenAI-compatible endpoint; the local subpackage is the
// deterministic fallback that keeps the whole pipeline functional with no
// model configured; the mock subpackage serves tests.
package ai
