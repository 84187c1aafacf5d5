package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one recorded response. The unique index over
// (evaluation_id, question_id) enforces at most one answer per question
// within a session at the storage level.
type Answer struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	EvaluationID uint           `json:"evaluation_id" gorm:"not null;uniqueIndex:idx_answers_eval_question"`
	QuestionID   int            `json:"question_id" gorm:"not null;uniqueIndex:idx_answers_eval_question"`
	AnswerValue  int            `json:"answer_value" gorm:"not null"`
	AnsweredAt   time.Time      `json:"answered_at" gorm:"autoCreateTime"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
