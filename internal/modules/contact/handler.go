package contact

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
	rg.POST("/contact", h.CreateMessage)
	rg.GET("/contact", h.GetMessages)
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contact data")
		return
	}

	msg, err := h.service.CreateMessage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contact data")
			return
		}
		response.Internal(c, err, "Failed to save contact message")
		return
	}

	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) GetMessages(c *gin.Context) {
	msgs, err := h.service.GetMessages(c.Request.Context())
	if err != nil {
		response.Internal(c, err, "Failed to fetch contact messages")
		return
	}

	response.Success(c, http.StatusOK, msgs)
}
