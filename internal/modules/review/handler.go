package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbook/internal/domain"
	"travelbook/internal/middleware"
	"travelbook/internal/pkg/response"
	"travelbook/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/services/:type/:id/reviews", h.ListForService)
	}

	if protected != nil {
		protected.POST("/reviews", h.Create)
	}
}

// Create stores a review signed with the caller's identity snapshot.
func (h *Handler) Create(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review", errs)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req.toNewReview(id))
	if err != nil {
		response.Internal(c, err, "Failed to save review")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListForService(c *gin.Context) {
	serviceType := domain.ServiceType(c.Param("type"))
	if !serviceType.Valid() {
		response.Error(c, http.StatusBadRequest, "INVALID_SERVICE_TYPE", "Unknown service type")
		return
	}

	items := h.svc.ListForService(c.Param("id"), serviceType)
	response.Success(c, http.StatusOK, gin.H{"reviews": items, "total": len(items)})
}
