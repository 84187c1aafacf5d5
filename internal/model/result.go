package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evamed/evamed/internal/scoring"
)

// AreaBreakdown stores the per-area score breakdown as a JSON column.
type AreaBreakdown []scoring.AreaScore

func (b AreaBreakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *AreaBreakdown) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into AreaBreakdown", src)
	}
}

// Result is the scored report of a completed evaluation. It is written
// exactly once, when the last answer is committed, and never updated.
type Result struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	EvaluationID uint          `json:"evaluation_id" gorm:"not null;uniqueIndex"`
	OverallPct   int           `json:"overall_pct" gorm:"not null"`
	Verdict      string        `json:"verdict" gorm:"not null"`
	VerdictColor string        `json:"verdict_color" gorm:"not null"`
	Areas        AreaBreakdown `json:"areas" gorm:"type:jsonb"`
	CreatedAt    time.Time     `json:"created_at"`
}

// FromScore builds the persistable row for one evaluation's computed score.
func FromScore(evaluationID uint, r scoring.Result) Result {
	return Result{
		EvaluationID: evaluationID,
		OverallPct:   r.OverallPct,
		Verdict:      r.Verdict,
		VerdictColor: r.VerdictColor,
		Areas:        AreaBreakdown(r.Areas),
	}
}
