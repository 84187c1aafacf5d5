package dto

type AdminAuthRequest struct {
	Password string `json:"password" binding:"required"`
}

type AdminAuthResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
