package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/catalog"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// View the session cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	items := h.service.Items(sessionID)
	grand := h.service.GrandTotal(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"items":               items,
		"grand_total":         grand,
		"grand_total_display": pricing.Format(grand),
	})
}

// --------------------------------------------------
// Add a line item
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		Product   string `json:"product" binding:"required"`
		PriceTier string `json:"price_tier" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.Add(
		c.Request.Context(),
		c.GetString("sessionID"),
		req.Product,
		catalog.PriceTier(req.PriceTier),
		req.Quantity,
	)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// Empty the cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	h.service.Clear(c.GetString("sessionID"))
	c.JSON(http.StatusOK, gin.H{"status": "cart cleared"})
}
