package payment

import (
	"errors"
	"net/http"

	"kejastays/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/mpesa/setup", h.MpesaSetup)
	rg.POST("/mpesa/order", h.createOrder(Mpesa))
	rg.POST("/mpesa/order/:orderID/capture", h.captureOrder(Mpesa))
	rg.POST("/paypal/order", h.createOrder(Paypal))
	rg.POST("/paypal/order/:orderID/capture", h.captureOrder(Paypal))
}

func (h *Handler) MpesaSetup(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.MpesaSetup())
}

func (h *Handler) createOrder(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount, currency and intent are required")
			return
		}

		o, err := h.service.CreateOrder(provider, req)
		if err != nil {
			handleError(c, err)
			return
		}

		response.Success(c, http.StatusCreated, o)
	}
}

func (h *Handler) captureOrder(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CaptureOrderRequest
		_ = c.ShouldBindJSON(&req) // body is optional on capture

		o, err := h.service.CaptureOrder(c.Request.Context(), provider, c.Param("orderID"), req.BookingID)
		if err != nil {
			handleError(c, err)
			return
		}

		response.Success(c, http.StatusOK, o)
	}
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request")
	case errors.Is(err, ErrOrderNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	default:
		response.Internal(c, err, "Failed to process payment order")
	}
}
