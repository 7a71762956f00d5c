// Package corpus loads and screens the post corpus. Input files are either
// one JSON array of tweet objects or newline-delimited JSON; both shapes are
// in the wild. Malformed records are counted and skipped, never fatal, but
// an empty result is an error: a run with no posts has nothing to say.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"horse.fit/gala/internal/langdetect"
	"horse.fit/gala/internal/textnorm"
	tweetschema "horse.fit/gala/schema"
)

// Post is one usable corpus record with its normalized text forms.
type Post struct {
	ID          string
	Author      string
	TimestampMS int64
	Raw         string
	Norm        textnorm.Normalized
}

// LoadStats describes what a load kept and why it dropped the rest.
type LoadStats struct {
	Total      int
	Kept       int
	Malformed  int
	NonEnglish int
}

type Loader struct {
	EnglishOnly bool
	Log         zerolog.Logger
}

// LoadFile reads the corpus at path. A missing file is a configuration
// error and fails outright.
func (l *Loader) LoadFile(path string) ([]Post, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

func (l *Loader) Load(r io.Reader) ([]Post, LoadStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read corpus: %w", err)
	}

	records, err := splitRecords(data)
	if err != nil {
		return nil, LoadStats{}, err
	}

	var (
		posts []Post
		stats LoadStats
	)
	for i, raw := range records {
		stats.Total++
		tweet, err := tweetschema.ValidateTweetPayload(raw)
		if err != nil {
			stats.Malformed++
			l.Log.Debug().Err(err).Int("record", i).Msg("skipping malformed corpus record")
			continue
		}
		if l.EnglishOnly && !langdetect.IsEnglish(tweet.Text) {
			stats.NonEnglish++
			continue
		}
		post := Post{
			ID:   tweet.IDString(),
			Raw:  tweet.Text,
			Norm: textnorm.Normalize(tweet.Text),
		}
		if post.ID == "" {
			post.ID = strconv.Itoa(i)
		}
		if tweet.User != nil {
			post.Author = tweet.User.ScreenName
		}
		if ms, ok := tweet.TimestampMillis(); ok {
			post.TimestampMS = ms
		}
		if post.Norm.Clean == "" {
			stats.Malformed++
			continue
		}
		posts = append(posts, post)
		stats.Kept++
	}

	if len(posts) == 0 {
		return nil, stats, fmt.Errorf("corpus is empty: %d records read, %d malformed", stats.Total, stats.Malformed)
	}
	return posts, stats, nil
}

// splitRecords accepts a top-level JSON array or NDJSON.
func splitRecords(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("corpus is empty: no bytes")
	}
	if trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode corpus array: %w", err)
		}
		return records, nil
	}

	var records []json.RawMessage
	sc := bufio.NewScanner(bytes.NewReader(trimmed))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		records = append(records, json.RawMessage(append([]byte(nil), line...)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus lines: %w", err)
	}
	return records, nil
}
