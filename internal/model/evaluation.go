package model

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation status values. Transitions are one-way:
// pending -> in_progress -> completed.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Evaluation is one candidate's session. The token is the opaque identifier
// used in every candidate-facing URL; the numeric ID stays internal.
type Evaluation struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	Token          string  `json:"token" gorm:"not null;uniqueIndex"`
	CandidateName  string  `json:"candidate_name" gorm:"not null"`
	CandidateID    *string `json:"candidate_id,omitempty"` // id document (cedula)
	CandidateEmail *string `json:"candidate_email,omitempty"`
	CandidatePhone *string `json:"candidate_phone,omitempty"`
	Position       *string `json:"position,omitempty"`
	Company        *string `json:"company,omitempty"`

	Status          string `json:"status" gorm:"not null;default:'pending'"`
	CurrentQuestion int    `json:"current_question" gorm:"not null;default:0"`
	// TotalQuestions snapshots the catalog size at creation time, so a later
	// bank change cannot invalidate progress accounting for this session.
	TotalQuestions int `json:"total_questions" gorm:"not null"`

	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:EvaluationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Result  *Result  `json:"result,omitempty" gorm:"foreignKey:EvaluationID"`

	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Completed reports whether the session reached its terminal state.
func (e *Evaluation) Completed() bool {
	return e.Status == StatusCompleted
}
