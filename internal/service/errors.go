package service

import "errors"

// Sentinel errors for the failure taxonomy. Controllers match these with
// errors.Is to pick response codes; every one of them leaves the session
// state untouched.
var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrQuestionNotFound   = errors.New("question not found in catalog")
	ErrInvalidAnswer      = errors.New("answer value out of range for question")
	ErrAlreadyCompleted   = errors.New("evaluation already completed")
	ErrOutOfOrder         = errors.New("question is not the next one to answer")
	ErrResultNotReady     = errors.New("evaluation not completed yet")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCatalog       = errors.New("question catalog is empty")
)
