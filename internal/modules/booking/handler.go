package booking

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kejastays/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// whatsappNumber is the host's enquiry line, digits only in wa.me form.
const whatsappNumber = "254700000000"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.GET("/properties/:id/availability", h.GetAvailability)
	rg.POST("/whatsapp-booking", h.WhatsAppBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing status")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// GetAvailability handles GET /api/properties/:id/availability. The
// optional from/to window defaults to the next twelve months.
func (h *Handler) GetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property id")
		return
	}

	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(1, 0, 0)
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid from date")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid to date")
			return
		}
	}

	days, err := h.service.BlockedDays(c.Request.Context(), id, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := AvailabilityResponse{PropertyID: id, BlockedDates: []string{}}
	for _, d := range days.Days() {
		resp.BlockedDates = append(resp.BlockedDates, d.Format("2006-01-02"))
	}

	response.Success(c, http.StatusOK, resp)
}

// WhatsAppBooking builds a prefilled wa.me enquiry link for guests who
// prefer to book over chat.
func (h *Handler) WhatsAppBooking(c *gin.Context) {
	var req WhatsAppBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing property name")
		return
	}

	text := fmt.Sprintf(
		"Hi! I'm interested in booking *%s*\n\nGuest Name: %s\nCheck-in: %s\nCheck-out: %s\nNumber of Guests: %d\n\nPlease let me know the availability and total cost.",
		req.PropertyName, req.GuestName, req.CheckIn, req.CheckOut, req.Guests,
	)
	link := "https://wa.me/" + whatsappNumber + "?text=" + url.QueryEscape(text)

	response.Success(c, http.StatusOK, gin.H{"whatsappUrl": link})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
	case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrOverbooking):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Property is not available for the selected dates")
	default:
		response.Internal(c, err, "Failed to process booking")
	}
}
