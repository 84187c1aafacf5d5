package candidate

import (
	"net/http"

	"github.com/evamed/evamed/internal/controller"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
	answerService  service.AnswerService
}

func NewSessionController(sessionService service.SessionService, answerService service.AnswerService) *SessionController {
	return &SessionController{sessionService: sessionService, answerService: answerService}
}

// NextQuestion godoc
// @Summary (Candidate) Get the next question of a session
// @Description Returns the next unanswered question with progress; next_question is null once the session is complete.
// @Tags Candidate - Session
// @Produce json
// @Param token path string true "Evaluation token"
// @Success 200 {object} dto.NextQuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /eval/{token}/next-question [get]
func (c *SessionController) NextQuestion(ctx *gin.Context) {
	next, err := c.sessionService.NextQuestion(ctx.Param("token"))
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, next)
}

// Progress godoc
// @Summary (Candidate) Get session progress
// @Tags Candidate - Session
// @Produce json
// @Param token path string true "Evaluation token"
// @Success 200 {object} dto.ProgressDTO
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /eval/{token}/progress [get]
func (c *SessionController) Progress(ctx *gin.Context) {
	progress, err := c.sessionService.Progress(ctx.Param("token"))
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// SubmitAnswer godoc
// @Summary (Candidate) Submit an answer
// @Description Records one answer and returns the post-commit state; a "completed" status signals the client to fetch the report.
// @Tags Candidate - Session
// @Accept json
// @Produce json
// @Param token path string true "Evaluation token"
// @Param answer body dto.AnswerSubmitDTO true "Question id and selected option index"
// @Success 200 {object} dto.RecordOutcomeDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or option index out of range"
// @Failure 404 {object} dto.ErrorResponse "Evaluation or question not found"
// @Failure 409 {object} dto.ErrorResponse "Session already completed or submission out of order"
// @Router /eval/{token}/response [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	token := ctx.Param("token")

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	outcome, err := c.answerService.Record(token, req.QuestionID, *req.AnswerValue)
	if err != nil {
		log.Warn().Err(err).Str("token", token).Int("questionID", req.QuestionID).Msg("SubmitAnswer: rejected")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, outcome)
}
