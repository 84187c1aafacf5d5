package dto

import "time"

type DimensionResultDTO struct {
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}

type AreaResultDTO struct {
	Key        string                        `json:"key"`
	Name       string                        `json:"name"`
	Pct        float64                       `json:"pct"`
	Color      string                        `json:"color"`
	Dimensions map[string]DimensionResultDTO `json:"dimensions"`
}

// ResultDTO is the final report rendered for a completed evaluation.
type ResultDTO struct {
	Token             string          `json:"token"`
	CandidateName     string          `json:"candidate_name"`
	CandidateID       *string         `json:"candidate_id,omitempty"`
	Position          *string         `json:"position,omitempty"`
	Company           *string         `json:"company,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at"`
	OverallPct        int             `json:"overall_pct"`
	Verdict           string          `json:"verdict"`
	VerdictColor      string          `json:"verdict_color"`
	Areas             []AreaResultDTO `json:"areas"`
	TotalQuestions    int             `json:"total_questions"`
	AnsweredQuestions int             `json:"answered_questions"`
}
