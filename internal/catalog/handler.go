package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List catalog (optional ?category= and ?brand=)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(
		c.Request.Context(),
		c.Query("category"),
		c.Query("brand"),
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// --------------------------------------------------
// Filter values
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) Brands(c *gin.Context) {
	brands, err := h.service.Brands(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// --------------------------------------------------
// Single product
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	product, err := h.service.Find(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// --------------------------------------------------
// ADMIN: update one field (image link or description)
// --------------------------------------------------
func (h *Handler) UpdateField(c *gin.Context) {
	var req struct {
		Column string `json:"column" binding:"required"`
		Value  string `json:"value"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateField(
		c.Request.Context(),
		c.Param("name"),
		req.Column,
		req.Value,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotEditable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "updated",
		"product": c.Param("name"),
		"column":  req.Column,
	})
}

// --------------------------------------------------
// ADMIN: drop the cached catalog
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	h.service.Refresh()
	c.JSON(http.StatusOK, gin.H{"status": "cache invalidated"})
}
