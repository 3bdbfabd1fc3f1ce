package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/auth"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/cart"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/catalog"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/middleware"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/quote"
)

// Deps carries everything the route table needs.
type Deps struct {
	Auth        *auth.Service
	AuthHandler *auth.Handler
	Catalog     *catalog.Handler
	Cart        *cart.Handler
	Quote       *quote.Handler
	CORSOrigins []string
}

func New(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/token", d.AuthHandler.IssueToken)

	// ───────────────────────── CATALOG (read) ─────────────────────────
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("", d.Catalog.List)
		catalogGroup.GET("/categories", d.Catalog.Categories)
		catalogGroup.GET("/brands", d.Catalog.Brands)
		catalogGroup.GET("/products/:name", d.Catalog.Get)
	}

	// ───────────────────────── CATALOG (write, ADMIN) ─────────────────────────
	adminCatalog := r.Group("/catalog")
	adminCatalog.Use(
		middleware.AuthMiddleware(d.Auth),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		adminCatalog.PUT("/products/:name/field", d.Catalog.UpdateField)
		adminCatalog.POST("/refresh", d.Catalog.Refresh)
	}

	// ───────────────────────── CART (per session) ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.Session())
	{
		cartGroup.GET("", d.Cart.Get)
		cartGroup.POST("/items", d.Cart.AddItem)
		cartGroup.DELETE("", d.Cart.Clear)
	}

	// ───────────────────────── QUOTATION EXPORT ─────────────────────────
	r.POST("/quote", middleware.Session(), d.Quote.Generate)

	return r
}
