package admin

import (
	"net/http"

	"github.com/evamed/evamed/internal/controller"
	"github.com/evamed/evamed/internal/dto"
	"github.com/evamed/evamed/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary (Admin) Authenticate with the admin password
// @Description Exchanges the admin password for a bearer token used on the admin endpoints.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.AdminAuthRequest true "Admin password"
// @Success 200 {object} dto.AdminAuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Wrong password"
// @Router /admin/auth [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.AdminAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Login(req.Password)
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	log.Info().Msg("Admin authenticated")
	ctx.JSON(http.StatusOK, dto.AdminAuthResponse{Token: token})
}
