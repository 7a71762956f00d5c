package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"horse.fit/gala/internal/cli"
	"horse.fit/gala/internal/db"
)

func runExtract(args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	input := fs.String("input", "", "Path to the corpus JSON file")
	output := fs.String("output", "", "Write the document to this file instead of stdout")
	format := fs.String("format", outputFormatJSON, "Output format: json or report")
	store := fs.Bool("store", false, "Persist the run to Postgres (requires DATABASE_URL)")
	timeout := fs.Duration("timeout", 10*time.Minute, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "extract does not accept positional arguments")
		return 2
	}

	outputFormat, err := parseOutputFormat(*format, outputFormatJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid format: %v\n", err)
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *store {
		if err := cfg.RequireDatabaseURL(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	ctx, cancel := commandContext(*timeout)
	defer cancel()

	doc, err := extractDocument(ctx, cfg, logger, *input)
	if err != nil {
		logger.Error().Err(err).Msg("extraction failed")
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		return 1
	}

	if *store {
		dbCtx, dbCancel := context.WithTimeout(ctx, 30*time.Second)
		defer dbCancel()
		pool, err := db.NewPool(dbCtx, cfg)
		if err != nil {
			logger.Error().Err(err).Msg("store failed to connect to database")
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			return 1
		}
		defer pool.Close()
		runUUID, err := pool.SaveDocument(dbCtx, doc)
		if err != nil {
			logger.Error().Err(err).Msg("store failed")
			fmt.Fprintf(os.Stderr, "Failed to store results: %v\n", err)
			return 1
		}
		logger.Info().Str("run_uuid", runUUID).Msg("extraction run stored")
	}

	var rendered []byte
	if outputFormat == outputFormatReport {
		rendered = []byte(doc.Report())
	} else {
		rendered, err = doc.JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return 1
		}
		rendered = append(rendered, '\n')
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			return 1
		}
		logger.Info().Str("path", *output).Msg("results written")
		return 0
	}
	fmt.Print(string(rendered))
	return 0
}
