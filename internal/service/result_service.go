package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/evamed/evamed/internal/cache"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/model"
	"github.com/evamed/evamed/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResultService serves the final report of a completed evaluation from its
// persisted result. Results are never recomputed here.
type ResultService interface {
	Report(ctx context.Context, token string) (*dto.ResultDTO, error)
}

type resultService struct {
	evaluationRepo repository.EvaluationRepository
	resultRepo     repository.ResultRepository
	reports        cache.ReportCache // optional, may be nil
}

func NewResultService(
	evaluationRepo repository.EvaluationRepository,
	resultRepo repository.ResultRepository,
	reports cache.ReportCache,
) ResultService {
	return &resultService{evaluationRepo: evaluationRepo, resultRepo: resultRepo, reports: reports}
}

func (s *resultService) Report(ctx context.Context, token string) (*dto.ResultDTO, error) {
	if s.reports != nil {
		if report, err := s.reports.Get(ctx, token); err == nil {
			return report, nil
		}
	}

	evaluation, err := s.evaluationRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("fetching evaluation: %w", err)
	}
	if !evaluation.Completed() {
		return nil, ErrResultNotReady
	}

	result, err := s.resultRepo.FindByEvaluationID(evaluation.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotReady
		}
		return nil, fmt.Errorf("fetching result: %w", err)
	}

	report := buildReport(evaluation, result)

	if s.reports != nil {
		if err := s.reports.Set(ctx, token, report); err != nil {
			log.Warn().Err(err).Str("token", token).Msg("Report: failed to cache report")
		}
	}
	return report, nil
}

func buildReport(evaluation *model.Evaluation, result *model.Result) *dto.ResultDTO {
	areas := make([]dto.AreaResultDTO, len(result.Areas))
	for i, area := range result.Areas {
		dims := make(map[string]dto.DimensionResultDTO, len(area.Dimensions))
		for key, dim := range area.Dimensions {
			dims[key] = dto.DimensionResultDTO{Name: dim.Name, Pct: dim.Pct}
		}
		areas[i] = dto.AreaResultDTO{
			Key:        area.Key,
			Name:       area.Name,
			Pct:        area.Pct,
			Color:      area.Color,
			Dimensions: dims,
		}
	}

	return &dto.ResultDTO{
		Token:             evaluation.Token,
		CandidateName:     evaluation.CandidateName,
		CandidateID:       evaluation.CandidateID,
		Position:          evaluation.Position,
		Company:           evaluation.Company,
		CompletedAt:       evaluation.CompletedAt,
		OverallPct:        result.OverallPct,
		Verdict:           result.Verdict,
		VerdictColor:      result.VerdictColor,
		Areas:             areas,
		TotalQuestions:    evaluation.TotalQuestions,
		AnsweredQuestions: evaluation.TotalQuestions,
	}
}
