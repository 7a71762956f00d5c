package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"horse.fit/gala/internal/results"
)

// SaveDocument persists one results document and its per-award standings in
// a single transaction. Returns the run's UUID.
func (p *Pool) SaveDocument(ctx context.Context, doc *results.Document) (string, error) {
	if p == nil || p.gdb == nil {
		return "", fmt.Errorf("database pool is not initialized")
	}
	if doc == nil {
		return "", fmt.Errorf("nil document")
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	hostsJSON, err := json.Marshal(doc.Hosts)
	if err != nil {
		return "", fmt.Errorf("marshal hosts: %w", err)
	}

	run := ExtractionRun{
		RunUUID:     uuid.NewString(),
		Ceremony:    doc.Ceremony,
		Year:        doc.Year,
		Hosts:       hostsJSON,
		Document:    docJSON,
		PostsRead:   doc.Stats.PostsRead,
		Tickets:     doc.Stats.Tickets,
		GeneratedAt: doc.GeneratedAt,
	}

	err = p.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("insert extraction run: %w", err)
		}
		for _, a := range doc.Awards {
			nomineesJSON, err := json.Marshal(a.Nominees)
			if err != nil {
				return fmt.Errorf("marshal nominees: %w", err)
			}
			presentersJSON, err := json.Marshal(a.Presenters)
			if err != nil {
				return fmt.Errorf("marshal presenters: %w", err)
			}
			standing := AwardStanding{
				RunID:      run.RunID,
				Award:      a.Award,
				Nominees:   nomineesJSON,
				Presenters: presentersJSON,
			}
			if a.Winner != "" {
				w := a.Winner
				standing.Winner = &w
			}
			if err := tx.Create(&standing).Error; err != nil {
				return fmt.Errorf("insert award standing: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return run.RunUUID, nil
}

// LatestDocument loads the most recently generated run.
func (p *Pool) LatestDocument(ctx context.Context) (*results.Document, error) {
	if p == nil || p.gdb == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}
	var run ExtractionRun
	if err := p.gdb.WithContext(ctx).Order("generated_at DESC, run_id DESC").First(&run).Error; err != nil {
		return nil, err
	}
	return decodeRun(&run)
}

// DocumentByUUID loads one stored run by its public identifier.
func (p *Pool) DocumentByUUID(ctx context.Context, runUUID string) (*results.Document, error) {
	if p == nil || p.gdb == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}
	var run ExtractionRun
	if err := p.gdb.WithContext(ctx).Where("run_uuid = ?", runUUID).First(&run).Error; err != nil {
		return nil, err
	}
	return decodeRun(&run)
}

func decodeRun(run *ExtractionRun) (*results.Document, error) {
	var doc results.Document
	if err := json.Unmarshal(run.Document, &doc); err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}
	return &doc, nil
}
