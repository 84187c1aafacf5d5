package repository

import (
	"github.com/evamed/evamed/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByEvaluationID(evaluationID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByEvaluationID(evaluationID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("evaluation_id = ?", evaluationID).Order("answered_at asc").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
