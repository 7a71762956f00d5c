package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"horse.fit/gala/internal/awards"
	"horse.fit/gala/internal/cli"
	"horse.fit/gala/internal/ranker"
	"horse.fit/gala/internal/results"
)

// accessorFlags is the flag set shared by the per-fact commands.
type accessorFlags struct {
	fs        *flag.FlagSet
	envLoader *cli.EnvLoader
	input     *string
	award     *string
	timeout   *time.Duration
}

func newAccessorFlags(name string, withAward bool) *accessorFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	a := &accessorFlags{
		fs:        fs,
		envLoader: cli.AddEnvFlag(fs, ".env", "Path to the .env file"),
		input:     fs.String("input", "", "Path to the corpus JSON file"),
		timeout:   fs.Duration("timeout", 10*time.Minute, "Command timeout"),
	}
	if withAward {
		a.award = fs.String("award", "", "Restrict to one award (fuzzy names accepted)")
	}
	return a
}

// run parses flags, extracts the document, and hands it to render.
func (a *accessorFlags) run(args []string, render func(*results.Document) error) int {
	if err := a.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if a.fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s does not accept positional arguments\n", a.fs.Name())
		return 2
	}

	cfg, logger, err := bootstrap(a.envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	ctx, cancel := commandContext(*a.timeout)
	defer cancel()

	doc, err := extractDocument(ctx, cfg, logger, *a.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		return 1
	}
	if err := render(doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// resolveAwardFlag maps a loosely-typed --award value onto the taxonomy.
func resolveAwardFlag(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", nil
	}
	if awards.IsCanonical(name) {
		return name, nil
	}
	m := awards.NewMatcher(awards.FuzzyOptions{})
	if award := m.Resolve(name); award != "" {
		return award, nil
	}
	if award := m.ResolveFuzzy(name); award != "" {
		return award, nil
	}
	return "", fmt.Errorf("unrecognized award: %q", raw)
}

func runHosts(args []string) int {
	a := newAccessorFlags("hosts", false)
	return a.run(args, func(doc *results.Document) error {
		return printJSON(map[string]any{"hosts": doc.Hosts})
	})
}

func runWinners(args []string) int {
	a := newAccessorFlags("winners", true)
	return a.run(args, func(doc *results.Document) error {
		award, err := resolveAwardFlag(*a.award)
		if err != nil {
			return err
		}
		winners := doc.Winners()
		if award != "" {
			return printJSON(map[string]any{"award": award, "winner": winners[award]})
		}
		return printJSON(map[string]any{"winners": winners})
	})
}

func runNominees(args []string) int {
	a := newAccessorFlags("nominees", true)
	return a.run(args, func(doc *results.Document) error {
		return printAwardLists(doc, *a.award, func(r ranker.AwardResult) any { return r.Nominees })
	})
}

func runPresenters(args []string) int {
	a := newAccessorFlags("presenters", true)
	return a.run(args, func(doc *results.Document) error {
		return printAwardLists(doc, *a.award, func(r ranker.AwardResult) any { return r.Presenters })
	})
}

func printAwardLists(doc *results.Document, awardFlag string, pick func(ranker.AwardResult) any) error {
	award, err := resolveAwardFlag(awardFlag)
	if err != nil {
		return err
	}
	if award != "" {
		res, ok := doc.AwardNamed(award)
		if !ok {
			return fmt.Errorf("award %q missing from results", award)
		}
		return printJSON(map[string]any{"award": award, "result": pick(res)})
	}
	out := make(map[string]any, len(doc.Awards))
	for _, res := range doc.Awards {
		out[res.Award] = pick(res)
	}
	return printJSON(out)
}

// runAwards prints the fixed taxonomy; with --input it also mines the corpus
// for award names the posts themselves repeat.
func runAwards(args []string) int {
	fs := flag.NewFlagSet("awards", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	input := fs.String("input", "", "Corpus file; when set, mined award names are included")
	timeout := fs.Duration("timeout", 10*time.Minute, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if strings.TrimSpace(*input) == "" {
		if err := printJSON(map[string]any{"awards": awards.Canonical}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	ctx, cancel := commandContext(*timeout)
	defer cancel()

	doc, err := extractDocument(ctx, cfg, logger, *input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		return 1
	}
	if err := printJSON(map[string]any{
		"awards":     awards.Canonical,
		"discovered": doc.DiscoveredAwards,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runReport(args []string) int {
	a := newAccessorFlags("report", false)
	return a.run(args, func(doc *results.Document) error {
		fmt.Print(doc.Report())
		return nil
	})
}
