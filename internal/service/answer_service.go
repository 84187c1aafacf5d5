package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/evamed/evamed/internal/catalog"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/model"
	"github.com/evamed/evamed/internal/repository"
	"github.com/evamed/evamed/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService records answers: it validates a submission, commits it,
// advances progress and, when the last answer lands, finalizes the session
// with its scored result in the same pass.
type AnswerService interface {
	Record(token string, questionID int, answerValue int) (*dto.RecordOutcomeDTO, error)
}

type answerService struct {
	evaluationRepo repository.EvaluationRepository
	answerRepo     repository.AnswerRepository
	bank           *catalog.Catalog
	locks          *sessionLocks
}

func NewAnswerService(
	evaluationRepo repository.EvaluationRepository,
	answerRepo repository.AnswerRepository,
	bank *catalog.Catalog,
) AnswerService {
	return &answerService{
		evaluationRepo: evaluationRepo,
		answerRepo:     answerRepo,
		bank:           bank,
		locks:          newSessionLocks(),
	}
}

// Record commits one answer. The whole operation runs under the session's
// lock, so retried or concurrent submissions serialize and the completion
// boundary is crossed at most once.
//
// Replaying an already-answered question is an idempotent no-op returning the
// current snapshot; answers are never revised after commit.
func (s *answerService) Record(token string, questionID int, answerValue int) (*dto.RecordOutcomeDTO, error) {
	lock := s.locks.get(token)
	lock.Lock()
	defer lock.Unlock()

	evaluation, err := s.evaluationRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("fetching evaluation: %w", err)
	}
	if evaluation.Completed() {
		return nil, ErrAlreadyCompleted
	}

	question, ok := s.bank.Question(questionID)
	if !ok {
		return nil, ErrQuestionNotFound
	}

	recorded, err := s.answerRepo.FindByEvaluationID(evaluation.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching answers: %w", err)
	}
	answered := make(map[int]bool, len(recorded))
	for _, a := range recorded {
		answered[a.QuestionID] = true
	}

	if answered[questionID] {
		return s.outcome(evaluation, answered), nil
	}
	if next := s.bank.NextUnanswered(answered); next == nil || next.ID != questionID {
		return nil, ErrOutOfOrder
	}
	if answerValue < 0 || answerValue >= len(question.Options) {
		return nil, ErrInvalidAnswer
	}

	answer := model.Answer{
		EvaluationID: evaluation.ID,
		QuestionID:   questionID,
		AnswerValue:  answerValue,
	}
	if err := s.answerRepo.Create(&answer); err != nil {
		return nil, fmt.Errorf("recording answer: %w", err)
	}
	answered[questionID] = true
	recorded = append(recorded, answer)

	if evaluation.Status == model.StatusPending {
		evaluation.Status = model.StatusInProgress
	}
	evaluation.CurrentQuestion = questionID

	if s.bank.NextUnanswered(answered) == nil {
		if err := s.finalize(evaluation, recorded); err != nil {
			return nil, err
		}
	} else if err := s.evaluationRepo.Update(evaluation); err != nil {
		return nil, fmt.Errorf("updating evaluation progress: %w", err)
	}

	return s.outcome(evaluation, answered), nil
}

// finalize crosses the completion boundary: terminal status, completion
// timestamp and the scored result are committed together.
func (s *answerService) finalize(evaluation *model.Evaluation, recorded []model.Answer) error {
	score := scoring.Compute(scoringAnswers(recorded), s.bank)

	now := time.Now().UTC()
	evaluation.Status = model.StatusCompleted
	evaluation.CompletedAt = &now

	result := model.FromScore(evaluation.ID, score)
	if err := s.evaluationRepo.Complete(evaluation, &result); err != nil {
		return fmt.Errorf("finalizing evaluation: %w", err)
	}

	log.Info().
		Str("token", evaluation.Token).
		Int("overall_pct", score.OverallPct).
		Str("verdict", score.Verdict).
		Msg("Evaluation completed and scored")
	return nil
}

func (s *answerService) outcome(evaluation *model.Evaluation, answered map[int]bool) *dto.RecordOutcomeDTO {
	return &dto.RecordOutcomeDTO{
		Answered:     len(answered),
		Total:        evaluation.TotalQuestions,
		NextQuestion: questionDTO(s.bank.NextUnanswered(answered)),
		Status:       evaluation.Status,
	}
}

func scoringAnswers(recorded []model.Answer) []scoring.Answer {
	answers := make([]scoring.Answer, len(recorded))
	for i, a := range recorded {
		answers[i] = scoring.Answer{QuestionID: a.QuestionID, OptionIndex: a.AnswerValue}
	}
	return answers
}
