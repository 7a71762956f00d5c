package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"horse.fit/gala/internal/cli"
	"horse.fit/gala/internal/config"
	"horse.fit/gala/internal/corpus"
	"horse.fit/gala/internal/logging"
	"horse.fit/gala/internal/pipeline"
	"horse.fit/gala/internal/results"
)

const (
	outputFormatJSON   = "json"
	outputFormatReport = "report"
)

func parseOutputFormat(raw, defaultFormat string) (string, error) {
	format := strings.TrimSpace(strings.ToLower(raw))
	if format == "" {
		format = strings.TrimSpace(strings.ToLower(defaultFormat))
	}
	switch format {
	case outputFormatJSON, outputFormatReport:
		return format, nil
	default:
		return "", fmt.Errorf("--format must be json or report")
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// bootstrap loads env, config, and the logger; shared preamble of every
// command.
func bootstrap(envLoader *cli.EnvLoader) (*config.Config, zerolog.Logger, error) {
	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}

// extractDocument is the shared path behind extract and the accessor
// commands: load the corpus file and run the pipeline over it.
func extractDocument(ctx context.Context, cfg *config.Config, logger zerolog.Logger, inputPath string) (*results.Document, error) {
	if strings.TrimSpace(inputPath) == "" {
		return nil, fmt.Errorf("--input corpus file is required")
	}

	loader := &corpus.Loader{EnglishOnly: cfg.EnglishOnly, Log: logger}
	posts, stats, err := loader.LoadFile(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("total", stats.Total).
		Int("kept", stats.Kept).
		Int("malformed", stats.Malformed).
		Int("non_english", stats.NonEnglish).
		Msg("corpus loaded")

	svc, err := pipeline.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	doc, err := svc.Run(ctx, posts)
	if err != nil {
		return nil, err
	}
	doc.Stats.PostsRead = stats.Total
	doc.Stats.PostsKept = stats.Kept
	doc.Stats.Malformed = stats.Malformed
	doc.Stats.NonEnglish = stats.NonEnglish
	return doc, nil
}

func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return context.WithTimeout(context.Background(), timeout)
}
