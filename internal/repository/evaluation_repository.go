package repository

import (
	"github.com/evamed/evamed/internal/model"
	"gorm.io/gorm"
)

type EvaluationRepository interface {
	Create(evaluation *model.Evaluation) error
	Update(evaluation *model.Evaluation) error
	FindByToken(token string) (*model.Evaluation, error)
	FindAllWithResults() ([]model.Evaluation, error)
	// Complete commits the terminal transition and its result in one
	// transaction, so a half-finalized session can never be observed.
	Complete(evaluation *model.Evaluation, result *model.Result) error
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(evaluation *model.Evaluation) error {
	return r.db.Create(evaluation).Error
}

func (r *evaluationRepository) Update(evaluation *model.Evaluation) error {
	return r.db.Save(evaluation).Error
}

func (r *evaluationRepository) FindByToken(token string) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	if err := r.db.Where("token = ?", token).First(&evaluation).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) FindAllWithResults() ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	if err := r.db.Preload("Result").Order("created_at desc").Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *evaluationRepository) Complete(evaluation *model.Evaluation, result *model.Result) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(evaluation).Error; err != nil {
			return err
		}
		return tx.Create(result).Error
	})
}
