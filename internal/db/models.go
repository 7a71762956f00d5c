package db

import (
	"time"

	"gorm.io/datatypes"
)

// ExtractionRun is one stored pipeline run: the full document as jsonb plus
// the headline columns worth querying on.
type ExtractionRun struct {
	RunID       int64          `gorm:"column:run_id;primaryKey;autoIncrement"`
	RunUUID     string         `gorm:"column:run_uuid;type:uuid;not null;unique"`
	Ceremony    string         `gorm:"column:ceremony;type:text;not null"`
	Year        int            `gorm:"column:year;type:integer;not null"`
	Hosts       datatypes.JSON `gorm:"column:hosts;type:jsonb;not null"`
	Document    datatypes.JSON `gorm:"column:document;type:jsonb;not null"`
	PostsRead   int            `gorm:"column:posts_read;type:integer;not null;default:0"`
	Tickets     int            `gorm:"column:tickets;type:integer;not null;default:0"`
	GeneratedAt time.Time      `gorm:"column:generated_at;type:timestamptz;not null"`
	CreatedAt   time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (ExtractionRun) TableName() string { return "gala.extraction_runs" }

// AwardStanding is one award's outcome within a run, denormalized for
// straightforward per-award queries.
type AwardStanding struct {
	StandingID int64          `gorm:"column:standing_id;primaryKey;autoIncrement"`
	RunID      int64          `gorm:"column:run_id;type:bigint;not null;index"`
	Award      string         `gorm:"column:award;type:text;not null"`
	Winner     *string        `gorm:"column:winner;type:text"`
	Nominees   datatypes.JSON `gorm:"column:nominees;type:jsonb;not null"`
	Presenters datatypes.JSON `gorm:"column:presenters;type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (AwardStanding) TableName() string { return "gala.award_standings" }
