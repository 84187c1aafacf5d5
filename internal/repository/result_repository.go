package repository

import (
	"github.com/evamed/evamed/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	FindByEvaluationID(evaluationID uint) (*model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) FindByEvaluationID(evaluationID uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.Where("evaluation_id = ?", evaluationID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
