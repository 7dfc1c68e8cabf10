package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbook/internal/middleware"
	"travelbook/internal/pkg/response"
	"travelbook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the token endpoint only when the issuer is enabled.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	if h.service.Enabled() {
		v1.POST("/auth/token", h.IssueToken)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid identity", errs)
		return
	}

	token, err := h.service.IssueToken(req.identity())
	if err != nil {
		response.Internal(c, err, "Failed to issue token")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  req.identity(),
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": id})
}
