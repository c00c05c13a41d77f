package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"kejastays/internal/pkg/response"
	"kejastays/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.GetProperties)
	rg.GET("/properties/:id", h.GetProperty)
	rg.POST("/properties", h.CreateProperty)
}

// GetProperties handles GET /api/properties with category/featured filters.
func (h *Handler) GetProperties(c *gin.Context) {
	var f repository.PropertyFilters

	f.Category = c.Query("category")
	if featured := c.Query("featured"); featured != "" {
		v := featured == "true"
		f.Featured = &v
	}

	props, err := h.service.GetProperties(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, props)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property id")
		return
	}

	p, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data")
		return
	}

	p, err := h.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data")
	default:
		response.Internal(c, err, "Failed to fetch properties")
	}
}
