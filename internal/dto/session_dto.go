package dto

// QuestionDTO is the candidate-facing view of one question. Score
// contributions and weights never leave the server.
type QuestionDTO struct {
	ID        int      `json:"id"`
	Area      string   `json:"area"`
	Dimension string   `json:"dimension"`
	Text      string   `json:"text"`
	Options   []string `json:"options"`
}

// SessionEvaluationDTO is the slim evaluation header shown to the candidate.
type SessionEvaluationDTO struct {
	Token         string  `json:"token"`
	CandidateName string  `json:"candidate_name"`
	Position      *string `json:"position,omitempty"`
	Company       *string `json:"company,omitempty"`
	Status        string  `json:"status"`
}

// NextQuestionDTO answers the next-question read: NextQuestion is null once
// every question has been answered.
type NextQuestionDTO struct {
	Evaluation   SessionEvaluationDTO `json:"evaluation"`
	Answered     int                  `json:"answered"`
	Total        int                  `json:"total"`
	NextQuestion *QuestionDTO         `json:"next_question"`
}

// ProgressDTO is the lightweight progress read.
type ProgressDTO struct {
	Answered        int    `json:"answered"`
	Total           int    `json:"total"`
	CurrentQuestion int    `json:"current_question"`
	Status          string `json:"status"`
}

// AnswerSubmitDTO is one answer submission. AnswerValue is a pointer so the
// zero option index survives required-field binding.
type AnswerSubmitDTO struct {
	QuestionID  int  `json:"question_id" binding:"required"`
	AnswerValue *int `json:"answer_value" binding:"required"`
}

// RecordOutcomeDTO reflects the post-commit session state in one pass;
// status "completed" tells the client the report is ready.
type RecordOutcomeDTO struct {
	Answered     int          `json:"answered"`
	Total        int          `json:"total"`
	NextQuestion *QuestionDTO `json:"next_question"`
	Status       string       `json:"status"`
}
