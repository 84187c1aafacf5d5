package service

import (
	"errors"
	"fmt"

	"github.com/evamed/evamed/internal/catalog"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/model"
	"github.com/evamed/evamed/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EvaluationService is the administrative surface: opening sessions for
// candidates and reviewing them.
type EvaluationService interface {
	Create(req dto.EvaluationCreateDTO) (*dto.EvaluationDTO, error)
	List() ([]dto.EvaluationSummaryDTO, error)
	Get(token string) (*dto.EvaluationDTO, error)
}

type evaluationService struct {
	evaluationRepo repository.EvaluationRepository
	bank           *catalog.Catalog
}

func NewEvaluationService(evaluationRepo repository.EvaluationRepository, bank *catalog.Catalog) EvaluationService {
	return &evaluationService{evaluationRepo: evaluationRepo, bank: bank}
}

// Create opens a session against the current question bank. The bank size is
// snapshotted into the evaluation, and an empty bank is rejected here rather
// than discovered mid-session.
func (s *evaluationService) Create(req dto.EvaluationCreateDTO) (*dto.EvaluationDTO, error) {
	if s.bank.Size() == 0 {
		return nil, ErrEmptyCatalog
	}

	evaluation := model.Evaluation{
		Token:          uuid.NewString(),
		CandidateName:  req.CandidateName,
		CandidateID:    req.CandidateID,
		CandidateEmail: req.CandidateEmail,
		CandidatePhone: req.CandidatePhone,
		Position:       req.Position,
		Company:        req.Company,
		Status:         model.StatusPending,
		TotalQuestions: s.bank.Size(),
	}
	if err := s.evaluationRepo.Create(&evaluation); err != nil {
		log.Error().Err(err).Str("candidate", req.CandidateName).Msg("Create: failed to persist evaluation")
		return nil, fmt.Errorf("creating evaluation: %w", err)
	}
	log.Info().Str("token", evaluation.Token).Str("candidate", evaluation.CandidateName).Msg("Evaluation created")

	var resp dto.EvaluationDTO
	if err := copier.Copy(&resp, &evaluation); err != nil {
		return nil, fmt.Errorf("preparing evaluation response: %w", err)
	}
	return &resp, nil
}

// List returns all evaluations, newest first, with verdicts attached to the
// completed ones from their persisted results.
func (s *evaluationService) List() ([]dto.EvaluationSummaryDTO, error) {
	evaluations, err := s.evaluationRepo.FindAllWithResults()
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}

	summaries := make([]dto.EvaluationSummaryDTO, 0, len(evaluations))
	for _, evaluation := range evaluations {
		var summary dto.EvaluationSummaryDTO
		if err := copier.Copy(&summary, &evaluation); err != nil {
			log.Error().Err(err).Uint("evaluationID", evaluation.ID).Msg("List: failed to copy evaluation to summary")
			continue
		}
		if evaluation.Completed() && evaluation.Result != nil {
			pct := evaluation.Result.OverallPct
			verdict := evaluation.Result.Verdict
			summary.OverallPct = &pct
			summary.Verdict = &verdict
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *evaluationService) Get(token string) (*dto.EvaluationDTO, error) {
	evaluation, err := s.evaluationRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("fetching evaluation: %w", err)
	}

	var resp dto.EvaluationDTO
	if err := copier.Copy(&resp, evaluation); err != nil {
		return nil, fmt.Errorf("preparing evaluation response: %w", err)
	}
	return &resp, nil
}
