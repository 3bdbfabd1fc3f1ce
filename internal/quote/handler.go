package quote

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/cart"
)

type Handler struct {
	service *Service
	carts   *cart.Service
}

func NewHandler(service *Service, carts *cart.Service) *Handler {
	return &Handler{service: service, carts: carts}
}

// --------------------------------------------------
// Export the session cart as a PDF quotation
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req struct {
		Number      string `json:"number" binding:"required"`
		ClientName  string `json:"client_name" binding:"required"`
		ClientTaxID string `json:"client_tax_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	meta := Meta{
		Number:      req.Number,
		ClientName:  req.ClientName,
		ClientTaxID: req.ClientTaxID,
	}

	items := h.carts.Items(c.GetString("sessionID"))

	data, err := h.service.Generate(c.Request.Context(), meta, items)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.Filename()))
	c.Data(http.StatusOK, "application/pdf", data)
}
