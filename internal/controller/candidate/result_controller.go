package candidate

import (
	"net/http"

	"github.com/evamed/evamed/internal/controller"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/service"
	"github.com/gin-gonic/gin"
)

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// GetReport godoc
// @Summary Get the scored report of a completed evaluation
// @Description Returns the persisted dimension/area/overall percentages and verdict for a completed session.
// @Tags Results
// @Produce json
// @Param token path string true "Evaluation token"
// @Success 200 {object} dto.ResultDTO
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Failure 409 {object} dto.ErrorResponse "Evaluation not completed yet"
// @Router /result/{token} [get]
func (c *ResultController) GetReport(ctx *gin.Context) {
	report, err := c.resultService.Report(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}
