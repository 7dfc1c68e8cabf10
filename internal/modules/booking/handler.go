package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbook/internal/domain"
	"travelbook/internal/middleware"
	"travelbook/internal/pkg/response"
	"travelbook/internal/pkg/validator"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes expects rg to be behind middleware.JWTAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/me", h.MyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking", errs)
		return
	}

	b, err := h.store.AddBooking(c.Request.Context(), req.toNewBooking(id.ID))
	if err != nil {
		response.Internal(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) MyBookings(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": h.store.GetUserBookings(id.ID)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, ok := h.store.GetBooking(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// CancelBooking answers 204 whether or not the id exists; the store treats
// unknown ids as a no-op.
func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.store.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		response.Internal(c, err, "Failed to cancel booking")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status", errs)
		return
	}

	status := domain.BookingStatus(req.Status)
	if err := h.store.UpdateBookingStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		response.Internal(c, err, "Failed to update booking status")
		return
	}
	c.Status(http.StatusNoContent)
}
