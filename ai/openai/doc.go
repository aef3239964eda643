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


// Package openai provides a coach text generator backed by OpenAI-compatible
// chat APIs.
//
// This package implements the ai.TextGenerator interface using the
// langchaingo library to communicate with OpenAI or OpenAI-compatible
// services (such as Ollama, LocalAI, or vLLM).
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
//	    ai.WithModel("gpt-4o-mini"),
//	)
//
//	generator, err := openai.NewGenerator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reply, err := generator.Generate(ctx, messages)
package openai
