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


// Package chat runs the guided coaching conversation.
//
// The Coach folds each user message into the profile, asks the model for a
// short coaching reply, and appends the next scripted interview question.
// The interview walks eight evocative questions, then follow-ups, then
// offers to build the learning path. Every turn is recorded in the session
// repository together with the current profile snapshot.
package chat
