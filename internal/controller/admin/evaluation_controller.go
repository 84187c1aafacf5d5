package admin

import (
	"net/http"

	"github.com/evamed/evamed/internal/controller"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type EvaluationController struct {
	evaluationService service.EvaluationService
}

func NewEvaluationController(evaluationService service.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService}
}

// CreateEvaluation godoc
// @Summary (Admin) Create an evaluation for a candidate
// @Description Opens a new evaluation session and returns it with the token used to build the candidate link.
// @Tags Admin - Evaluations
// @Accept json
// @Produce json
// @Param evaluation body dto.EvaluationCreateDTO true "Candidate data"
// @Success 201 {object} dto.EvaluationDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or empty question bank"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security AdminToken
// @Router /admin/evaluations [post]
func (c *EvaluationController) CreateEvaluation(ctx *gin.Context) {
	var req dto.EvaluationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	evaluation, err := c.evaluationService.Create(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateEvaluation: service error")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, evaluation)
}

// ListEvaluations godoc
// @Summary (Admin) List all evaluations
// @Description Lists evaluations newest first; completed ones include their overall score and verdict.
// @Tags Admin - Evaluations
// @Produce json
// @Success 200 {array} dto.EvaluationSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security AdminToken
// @Router /admin/evaluations [get]
func (c *EvaluationController) ListEvaluations(ctx *gin.Context) {
	summaries, err := c.evaluationService.List()
	if err != nil {
		log.Error().Err(err).Msg("ListEvaluations: service error")
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetEvaluation godoc
// @Summary (Admin) Get one evaluation
// @Description Full view of a single evaluation looked up by its token.
// @Tags Admin - Evaluations
// @Produce json
// @Param token path string true "Evaluation token"
// @Success 200 {object} dto.EvaluationDTO
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Security AdminToken
// @Router /admin/evaluations/{token} [get]
func (c *EvaluationController) GetEvaluation(ctx *gin.Context) {
	evaluation, err := c.evaluationService.Get(ctx.Param("token"))
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, evaluation)
}
