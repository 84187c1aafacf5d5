package service

import (
	"errors"
	"fmt"

	"github.com/evamed/evamed/internal/catalog"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/model"
	"github.com/evamed/evamed/internal/repository"
	"gorm.io/gorm"
)

// SessionService owns the candidate-facing reads of one evaluation session.
// Reads never mutate state; recording goes through AnswerService.
type SessionService interface {
	NextQuestion(token string) (*dto.NextQuestionDTO, error)
	Progress(token string) (*dto.ProgressDTO, error)
}

type sessionService struct {
	evaluationRepo repository.EvaluationRepository
	answerRepo     repository.AnswerRepository
	bank           *catalog.Catalog
}

func NewSessionService(
	evaluationRepo repository.EvaluationRepository,
	answerRepo repository.AnswerRepository,
	bank *catalog.Catalog,
) SessionService {
	return &sessionService{evaluationRepo: evaluationRepo, answerRepo: answerRepo, bank: bank}
}

// NextQuestion returns the delivery policy's pick together with progress.
// Repeated calls without new answers return the same question.
func (s *sessionService) NextQuestion(token string) (*dto.NextQuestionDTO, error) {
	evaluation, answered, err := s.load(token)
	if err != nil {
		return nil, err
	}

	return &dto.NextQuestionDTO{
		Evaluation: dto.SessionEvaluationDTO{
			Token:         evaluation.Token,
			CandidateName: evaluation.CandidateName,
			Position:      evaluation.Position,
			Company:       evaluation.Company,
			Status:        evaluation.Status,
		},
		Answered:     len(answered),
		Total:        evaluation.TotalQuestions,
		NextQuestion: questionDTO(s.bank.NextUnanswered(answered)),
	}, nil
}

func (s *sessionService) Progress(token string) (*dto.ProgressDTO, error) {
	evaluation, answered, err := s.load(token)
	if err != nil {
		return nil, err
	}

	current := 0
	if next := s.bank.NextUnanswered(answered); next != nil {
		current = next.ID
	}
	return &dto.ProgressDTO{
		Answered:        len(answered),
		Total:           evaluation.TotalQuestions,
		CurrentQuestion: current,
		Status:          evaluation.Status,
	}, nil
}

func (s *sessionService) load(token string) (*model.Evaluation, map[int]bool, error) {
	evaluation, err := s.evaluationRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEvaluationNotFound
		}
		return nil, nil, fmt.Errorf("fetching evaluation: %w", err)
	}
	answered, err := answeredSet(s.answerRepo, evaluation.ID)
	if err != nil {
		return nil, nil, err
	}
	return evaluation, answered, nil
}

// answeredSet loads the ids of the questions already answered in a session.
// Progress is always derived from the answer rows, never from a counter that
// could drift from them.
func answeredSet(answers repository.AnswerRepository, evaluationID uint) (map[int]bool, error) {
	recorded, err := answers.FindByEvaluationID(evaluationID)
	if err != nil {
		return nil, fmt.Errorf("fetching answers: %w", err)
	}
	set := make(map[int]bool, len(recorded))
	for _, a := range recorded {
		set[a.QuestionID] = true
	}
	return set, nil
}

func questionDTO(q *catalog.Question) *dto.QuestionDTO {
	if q == nil {
		return nil
	}
	return &dto.QuestionDTO{
		ID:        q.ID,
		Area:      q.Area,
		Dimension: q.Dimension,
		Text:      q.Text,
		Options:   q.Options,
	}
}
