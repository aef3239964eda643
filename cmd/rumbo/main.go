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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/atenea/rumbo"
	"github.com/atenea/rumbo/ai"
	"github.com/atenea/rumbo/catalog"
	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
	"github.com/atenea/rumbo/rank"
)

func main() {
	app := &cli.App{
		Name:  "rumbo",
		Usage: "Conversational course-path recommender",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "recommend",
				Usage:  "Recommend a course path for a profile",
				Action: recommendCommand,
				Flags: append(catalogFlags(), append(profileFlags(),
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Print pipeline stages while recommending",
					})...),
			},
			{
				Name:   "chat",
				Usage:  "Talk with the vocational coach and build a path together",
				Action: chatCommand,
				Flags: append(catalogFlags(),
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "OpenAI-compatible API key (empty runs the local demo coach)",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "OpenAI-compatible chat API base URL",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Chat model identifier",
						Value: "gpt-4o-mini",
					},
					&cli.Float64Flag{
						Name:  "temperature",
						Usage: "Sampling temperature",
						Value: 0.4,
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Interview language (es, en)",
						Value: "es",
					},
				),
			},
			{
				Name:   "export",
				Usage:  "Export the recommended path as a PDF",
				Action: exportCommand,
				Flags: append(catalogFlags(), append(profileFlags(),
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output PDF file path",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Document title",
						Value: "Ruta de aprendizaje",
					})...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Aliases:  []string{"c"},
			Usage:    "Path to the course catalog XLSX workbook",
			Required: true,
		},
	}
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "area",
			Usage: "Competency group or sheet name to filter on",
		},
		&cli.StringFlag{
			Name:  "level",
			Usage: "Complexity level to filter on (exact match)",
		},
		&cli.StringFlag{
			Name:  "access",
			Usage: "Access type substring to filter on (REA, Moodle, ...)",
		},
		&cli.StringFlag{
			Name:  "population",
			Usage: "Target population substring to filter on",
		},
		&cli.Float64Flag{
			Name:  "max-hours",
			Usage: "Weekly hours ceiling (0 disables the ceiling)",
			Value: 40,
		},
		&cli.StringFlag{
			Name:  "keywords",
			Usage: "Free-text keywords for the query",
		},
		&cli.IntFlag{
			Name:  "topk",
			Usage: "Number of courses to recommend",
			Value: 12,
		},
	}
}

func recommendCommand(c *cli.Context) error {
	app, err := openApp(c, ai.DefaultConfig())
	if err != nil {
		return err
	}
	defer app.Close()

	state := stateFromFlags(c)

	var monitor rumbo.RecommendMonitor
	if c.Bool("verbose") {
		monitor = &printingMonitor{out: os.Stderr}
	}

	ranked, err := app.RecommendWithMonitor(context.Background(), state, monitor)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	printRanked(ranked)
	return nil
}

func chatCommand(c *cli.Context) error {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("model")),
		ai.WithAPIKey(c.String("api-key")),
		ai.WithTemperature(c.Float64("temperature")),
	)

	app, err := openApp(c, aiConfig)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	language := c.String("language")
	session := core.IDFromContent("cli-" + time.Now().UTC().Format(time.RFC3339Nano))
	state := profile.NewState(language)

	fmt.Println(app.Greeting(language))
	fmt.Println(`(escribe "/ruta" para proponer una ruta, "/salir" para terminar)`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			continue
		case input == "/salir":
			return nil
		case input == "/ruta":
			ranked, err := app.Recommend(ctx, state)
			if err != nil {
				return fmt.Errorf("recommendation failed: %w", err)
			}
			printRanked(ranked)
			if len(ranked) > 0 {
				explanation, err := app.ExplainTrack(ctx, state, ranked)
				if err != nil {
					return fmt.Errorf("explanation failed: %w", err)
				}
				fmt.Println()
				fmt.Println(explanation)
			}
		default:
			next, reply, err := app.Reply(ctx, session, state, input)
			if err != nil {
				return fmt.Errorf("coach reply failed: %w", err)
			}
			state = next
			fmt.Println()
			fmt.Println(reply)
		}
	}
	return scanner.Err()
}

func exportCommand(c *cli.Context) error {
	app, err := openApp(c, ai.DefaultConfig())
	if err != nil {
		return err
	}
	defer app.Close()

	state := stateFromFlags(c)

	ranked, err := app.Recommend(context.Background(), state)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	data, err := app.ExportPDF(c.String("title"), state, ranked)
	if err != nil {
		return fmt.Errorf("pdf export failed: %w", err)
	}

	outPath := c.String("out")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d courses to %s\n", len(ranked), outPath)
	return nil
}

func openApp(c *cli.Context, aiConfig *ai.Config) (*rumbo.App, error) {
	loader := catalog.NewLoader()
	cat, err := loader.LoadXLSX(c.String("catalog"))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	opts := []rumbo.AppOption{rumbo.WithAIConfig(aiConfig)}
	if c.IsSet("topk") {
		opts = append(opts, rumbo.WithConfig(&rumbo.Config{
			TopKCandidates: 80,
			TopKFinal:      c.Int("topk"),
		}))
	}

	return rumbo.NewApp(cat, opts...)
}

func stateFromFlags(c *cli.Context) profile.State {
	state := profile.NewState("es")
	state.Area = c.String("area")
	state.Level = c.String("level")
	state.Access = c.String("access")
	state.Population = c.String("population")
	state.KeywordsText = c.String("keywords")

	if hours := c.Float64("max-hours"); hours > 0 {
		state.MaxHours = hours
	} else {
		state.MaxHours = rank.NoCeiling()
	}
	return state
}

func printRanked(ranked []core.Candidate) {
	fmt.Printf("Found %d courses\n", len(ranked))
	for i, cand := range ranked {
		course := cand.Course
		fmt.Printf("%d. %s [%s · %s] (%s) score=%.3f\n",
			i+1, course.Title, course.Level, course.Duration, course.Sheet, cand.Score)
		if course.URL != "" {
			fmt.Printf("   %s\n", course.URL)
		}
	}
}

// printingMonitor reports each pipeline stage to the given writer.
type printingMonitor struct {
	out *os.File
}

var _ rumbo.RecommendMonitor = (*printingMonitor)(nil)

func (m *printingMonitor) Start(query string) {
	fmt.Fprintf(m.out, "query: %s\n", query)
}

func (m *printingMonitor) AfterRetrieval(candidates []core.Candidate) {
	fmt.Fprintf(m.out, "retrieved: %d candidates\n", len(candidates))
}

func (m *printingMonitor) AfterFilter(candidates []core.Candidate) {
	fmt.Fprintf(m.out, "after filters: %d candidates\n", len(candidates))
}

func (m *printingMonitor) Finish(ranked []core.Candidate) {
	fmt.Fprintf(m.out, "ranked: %d courses\n", len(ranked))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
