package service

import (
	"sync"
	"testing"

	"github.com/evamed/evamed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorderUnderTest(t *testing.T) (*fakeStore, AnswerService) {
	t.Helper()
	store := newFakeStore()
	bank := testCatalog(t)
	return store, NewAnswerService(store, answerRepo{store}, bank)
}

func TestRecord_FullSessionCompletes(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	bank := testCatalog(t)
	newSession(t, store, bank, "tok-1")

	// Answer every question in delivery order with its best option.
	best := map[int]int{1: 0, 2: 2, 3: 0, 4: 0}
	for i, questionID := range []int{1, 2, 3, 4} {
		outcome, err := recorder.Record("tok-1", questionID, best[questionID])
		require.NoError(t, err)
		assert.Equal(t, i+1, outcome.Answered)
		assert.Equal(t, 4, outcome.Total)
	}

	evaluation, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, evaluation.Status)
	require.NotNil(t, evaluation.CompletedAt)

	result, err := store.FindResultByEvaluationID(evaluation.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.OverallPct)
	assert.Equal(t, "APTO", result.Verdict)
	assert.Equal(t, "green", result.VerdictColor)
}

func TestRecord_CompletionReportedInOnePass(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	for _, questionID := range []int{1, 2, 3} {
		_, err := recorder.Record("tok-1", questionID, 0)
		require.NoError(t, err)
	}

	// The final commit must reflect completion without a second round-trip.
	outcome, err := recorder.Record("tok-1", 4, 0)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, outcome.Status)
	assert.Equal(t, 4, outcome.Answered)
	assert.Nil(t, outcome.NextQuestion)
}

func TestRecord_FirstAnswerStartsSession(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	outcome, err := recorder.Record("tok-1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, outcome.Status)
	require.NotNil(t, outcome.NextQuestion)
	assert.Equal(t, 2, outcome.NextQuestion.ID)

	evaluation, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, evaluation.Status)
	assert.Equal(t, 1, evaluation.CurrentQuestion)
}

func TestRecord_ReplayIsIdempotent(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	first, err := recorder.Record("tok-1", 1, 0)
	require.NoError(t, err)

	// Replaying the same question, even with a different option, changes
	// nothing: same progress, same next question, same stored answer.
	replay, err := recorder.Record("tok-1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, first, replay)

	answers, err := store.FindByEvaluationID(1)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 0, answers[0].AnswerValue)
}

func TestRecord_OutOfOrderRejected(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	_, err := recorder.Record("tok-1", 3, 0)
	assert.ErrorIs(t, err, ErrOutOfOrder)

	answers, err := store.FindByEvaluationID(1)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestRecord_OptionOutOfRangeRejected(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	for _, value := range []int{-1, 3, 99} {
		_, err := recorder.Record("tok-1", 1, value)
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	}

	answers, err := store.FindByEvaluationID(1)
	require.NoError(t, err)
	assert.Empty(t, answers)

	evaluation, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, evaluation.Status)
}

func TestRecord_AfterCompletionRejected(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	for _, questionID := range []int{1, 2, 3, 4} {
		_, err := recorder.Record("tok-1", questionID, 0)
		require.NoError(t, err)
	}
	evaluation, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	before, err := store.FindResultByEvaluationID(evaluation.ID)
	require.NoError(t, err)

	_, err = recorder.Record("tok-1", 1, 0)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// The stored result is untouched by the rejected submission.
	after, err := store.FindResultByEvaluationID(evaluation.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRecord_UnknownTokenAndQuestion(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	_, err := recorder.Record("missing", 1, 0)
	assert.ErrorIs(t, err, ErrEvaluationNotFound)

	_, err = recorder.Record("tok-1", 999, 0)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestRecord_ConcurrentDuplicatesCommitOnce(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	// Simulate a duplicated network retry: both submissions succeed (one as
	// the real commit, one as the idempotent replay) and exactly one answer
	// lands.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := recorder.Record("tok-1", 1, 0)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	answers, err := store.FindByEvaluationID(1)
	require.NoError(t, err)
	assert.Len(t, answers, 1)
}

func TestRecord_ConcurrentFinishTriggersScoringOnce(t *testing.T) {
	store, recorder := recorderUnderTest(t)
	newSession(t, store, testCatalog(t), "tok-1")

	for _, questionID := range []int{1, 2, 3} {
		_, err := recorder.Record("tok-1", questionID, 0)
		require.NoError(t, err)
	}

	// Racing final submissions must not cross the completion boundary twice;
	// the fake store rejects a second result like the unique index would.
	// Exactly one racer commits, the rest see the terminal-state rejection.
	var wg sync.WaitGroup
	var mu sync.Mutex
	committed := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := recorder.Record("tok-1", 4, 0)
			if err == nil {
				mu.Lock()
				committed++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrAlreadyCompleted)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, committed)

	evaluation, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, evaluation.Status)
	_, err = store.FindResultByEvaluationID(evaluation.ID)
	assert.NoError(t, err)
}
