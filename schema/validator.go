package tweetschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tweet.schema.json
var tweetSchemaJSON string

// Tweet is the validated shape of one corpus record. The upstream dumps are
// inconsistent about numeric vs string ids and timestamps, so both are
// accepted and normalized here.
type Tweet struct {
	ID          json.RawMessage `json:"id,omitempty"`
	Text        string          `json:"text"`
	TimestampMS json.RawMessage `json:"timestamp_ms,omitempty"`
	User        *TweetUser      `json:"user,omitempty"`
}

type TweetUser struct {
	ScreenName string `json:"screen_name,omitempty"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ValidateTweetPayload checks one raw JSON record against the tweet schema
// and decodes it. Records failing validation are reported, not repaired.
func ValidateTweetPayload(payload json.RawMessage) (*Tweet, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize payload JSON: %w", err)
	}

	var tweet Tweet
	if err := json.Unmarshal(normalized, &tweet); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	if strings.TrimSpace(tweet.Text) == "" {
		return nil, fmt.Errorf("payload text is blank")
	}

	return &tweet, nil
}

// IDString renders the tweet id as a string regardless of its JSON type.
func (t *Tweet) IDString() string {
	return rawScalarString(t.ID)
}

// TimestampMillis parses timestamp_ms when present; ok is false otherwise.
func (t *Tweet) TimestampMillis() (int64, bool) {
	s := rawScalarString(t.TimestampMS)
	if s == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}

func rawScalarString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	return string(trimmed)
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true

		if err := compiler.AddResource("tweet.schema.json", strings.NewReader(tweetSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("tweet.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("payload contains trailing content")
	}

	return value, nil
}
