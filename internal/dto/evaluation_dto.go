package dto

import "time"

// EvaluationCreateDTO is the admin request to open a session for a candidate.
type EvaluationCreateDTO struct {
	CandidateName  string  `json:"candidate_name" binding:"required"`
	CandidateID    *string `json:"candidate_id"`
	CandidateEmail *string `json:"candidate_email" binding:"omitempty,email"`
	CandidatePhone *string `json:"candidate_phone"`
	Position       *string `json:"position"`
	Company        *string `json:"company"`
}

// EvaluationDTO is the full admin view of one evaluation.
type EvaluationDTO struct {
	ID              uint       `json:"id"`
	Token           string     `json:"token"`
	CandidateName   string     `json:"candidate_name"`
	CandidateID     *string    `json:"candidate_id,omitempty"`
	CandidateEmail  *string    `json:"candidate_email,omitempty"`
	CandidatePhone  *string    `json:"candidate_phone,omitempty"`
	Position        *string    `json:"position,omitempty"`
	Company         *string    `json:"company,omitempty"`
	Status          string     `json:"status"`
	CurrentQuestion int        `json:"current_question"`
	TotalQuestions  int        `json:"total_questions"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// EvaluationSummaryDTO is one row of the admin listing. Verdict fields are
// only present for completed evaluations.
type EvaluationSummaryDTO struct {
	ID            uint       `json:"id"`
	Token         string     `json:"token"`
	CandidateName string     `json:"candidate_name"`
	CandidateID   *string    `json:"candidate_id,omitempty"`
	Position      *string    `json:"position,omitempty"`
	Company       *string    `json:"company,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	OverallPct    *int       `json:"overall_pct,omitempty"`
	Verdict       *string    `json:"verdict,omitempty"`
}
