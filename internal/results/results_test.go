package results

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"horse.fit/gala/internal/globaltime"
	"horse.fit/gala/internal/ranker"
)

func demoDocument() *Document {
	d := New("Golden Globes", 2013)
	d.Hosts = []string{"Amy Poehler", "Tina Fey"}
	d.Awards = []ranker.AwardResult{
		{
			Award:      "cecil b. demille award",
			Winner:     "Jodie Foster",
			Nominees:   []string{"Jodie Foster"},
			Presenters: []string{"Robert Downey Jr"},
		},
		{Award: "best original song - motion picture", Nominees: []string{}, Presenters: []string{}},
	}
	return d
}

func TestReportRendering(t *testing.T) {
	t.Parallel()

	report := demoDocument().Report()
	for _, want := range []string{
		"Host(s): Amy Poehler, Tina Fey",
		"Award: cecil b. demille award",
		"Winner: Jodie Foster",
		"Presenters: Robert Downey Jr",
		"Winner: (none)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGeneratedAtUsesMockableClock(t *testing.T) {
	fixed := time.Date(2013, 1, 14, 3, 0, 0, 0, time.UTC)
	globaltime.SetMockTime(fixed)
	defer globaltime.ResetTime()

	d := New("Golden Globes", 2013)
	if !d.GeneratedAt.Equal(fixed) {
		t.Fatalf("GeneratedAt = %v, want %v", d.GeneratedAt, fixed)
	}
}

func TestJSONRoundTripsWinners(t *testing.T) {
	t.Parallel()

	raw, err := demoDocument().JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back Document
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	winners := back.Winners()
	if winners["cecil b. demille award"] != "Jodie Foster" {
		t.Fatalf("winners = %v", winners)
	}
	if _, ok := winners["best original song - motion picture"]; ok {
		t.Fatal("award without winner must not appear in Winners()")
	}
}

func TestAwardNamed(t *testing.T) {
	t.Parallel()

	d := demoDocument()
	if _, ok := d.AwardNamed("cecil b. demille award"); !ok {
		t.Fatal("expected award block")
	}
	if _, ok := d.AwardNamed("no such award"); ok {
		t.Fatal("unknown award must not resolve")
	}
}
