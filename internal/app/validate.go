package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	tweetschema "horse.fit/gala/schema"
)

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	input := fs.String("input", "", "Path to the corpus JSON file")
	verbose := fs.Bool("verbose", false, "Print every validation failure")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "--input corpus file is required")
		return 2
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read corpus: %v\n", err)
		return 1
	}

	records, err := splitValidationRecords(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse corpus: %v\n", err)
		return 1
	}

	valid, invalid := 0, 0
	for i, raw := range records {
		if _, err := tweetschema.ValidateTweetPayload(raw); err != nil {
			invalid++
			if *verbose {
				fmt.Fprintf(os.Stderr, "record %d: %v\n", i, err)
			}
			continue
		}
		valid++
	}

	fmt.Printf("records: %d\nvalid: %d\ninvalid: %d\n", len(records), valid, invalid)
	if valid == 0 {
		fmt.Fprintln(os.Stderr, "corpus contains no valid records")
		return 1
	}
	return 0
}

func splitValidationRecords(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	// Fall back to one record per line.
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			records = append(records, json.RawMessage(line))
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found")
	}
	return records, nil
}
