// Package results is the output document: everything one extraction run
// concluded about the ceremony, renderable as JSON or as a plain-text
// report.
package results

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"horse.fit/gala/internal/globaltime"
	"horse.fit/gala/internal/ranker"
)

// Stats summarizes what the run consumed.
type Stats struct {
	PostsRead    int `json:"posts_read"`
	PostsKept    int `json:"posts_kept"`
	Malformed    int `json:"malformed"`
	NonEnglish   int `json:"non_english"`
	Tickets      int `json:"tickets"`
	ElapsedMilli int `json:"elapsed_ms"`
}

// Document is one complete run result.
type Document struct {
	Ceremony         string               `json:"ceremony"`
	Year             int                  `json:"year"`
	GeneratedAt      time.Time            `json:"generated_at"`
	Hosts            []string             `json:"hosts"`
	Awards           []ranker.AwardResult `json:"awards"`
	DiscoveredAwards []string             `json:"discovered_awards,omitempty"`
	Stats            Stats                `json:"stats"`
}

// New stamps a document with the mockable clock so runs are reproducible in
// tests.
func New(ceremony string, year int) *Document {
	return &Document{
		Ceremony:    ceremony,
		Year:        year,
		GeneratedAt: globaltime.Now().UTC(),
		Hosts:       []string{},
		Awards:      []ranker.AwardResult{},
	}
}

func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// AwardNamed returns the result block for one canonical award.
func (d *Document) AwardNamed(award string) (ranker.AwardResult, bool) {
	for _, a := range d.Awards {
		if a.Award == award {
			return a, true
		}
	}
	return ranker.AwardResult{}, false
}

// Winners flattens the document into award -> winner, resolved awards only.
func (d *Document) Winners() map[string]string {
	out := make(map[string]string, len(d.Awards))
	for _, a := range d.Awards {
		if a.Winner != "" {
			out[a.Award] = a.Winner
		}
	}
	return out
}

// Report renders the human-readable summary, one block per award in the
// taxonomy order, hosts first.
func (d *Document) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", d.Ceremony, d.Year)
	fmt.Fprintf(&b, "Host(s): %s\n\n", orNone(strings.Join(d.Hosts, ", ")))
	for _, a := range d.Awards {
		fmt.Fprintf(&b, "Award: %s\n", a.Award)
		fmt.Fprintf(&b, "Presenters: %s\n", orNone(strings.Join(a.Presenters, ", ")))
		fmt.Fprintf(&b, "Nominees: %s\n", orNone(strings.Join(a.Nominees, ", ")))
		fmt.Fprintf(&b, "Winner: %s\n\n", orNone(a.Winner))
	}
	if len(d.DiscoveredAwards) > 0 {
		fmt.Fprintf(&b, "Discovered award names: %s\n", strings.Join(d.DiscoveredAwards, "; "))
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
