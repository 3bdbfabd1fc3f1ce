package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jfsc87-wq/cotizador-plastshopp/internal/auth"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/cart"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/catalog"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/config"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/quote"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/router"
	"github.com/jfsc87-wq/cotizador-plastshopp/internal/storage"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	sheetRepo := catalog.NewSheetRepository(cfg.CatalogURL)
	cache := catalog.NewCache(sheetRepo, time.Duration(cfg.CacheTTL)*time.Second)
	updater := catalog.NewUpdater(cfg.BridgeURL)
	catalogService := catalog.NewService(cache, updater)
	catalogHandler := catalog.NewHandler(catalogService)

	// ───────────────────────── CART ─────────────────────────
	cartService := cart.NewService(cart.NewStore(), catalogService)
	cartHandler := cart.NewHandler(cartService)

	// ───────────────────────── QUOTATION ─────────────────────────
	var archive quote.Archive
	if cfg.ArchiveEnabled() {
		r2, err := storage.NewR2Client(
			context.Background(),
			cfg.R2Endpoint,
			cfg.R2AccessKey,
			cfg.R2SecretKey,
			cfg.R2Bucket,
		)
		if err != nil {
			logrus.WithError(err).Fatal("initializing quotation archive")
		}
		archive = r2
		logrus.WithField("bucket", cfg.R2Bucket).Info("quotation archive enabled")
	}

	seller := quote.Seller{
		Name:    cfg.CompanyName,
		TaxID:   cfg.CompanyTaxID,
		Phone:   cfg.CompanyPhone,
		Website: cfg.CompanyWeb,
	}
	generator := quote.NewGenerator(seller, quote.NewFetcher())
	quoteService := quote.NewService(generator, archive)
	quoteHandler := quote.NewHandler(quoteService, cartService)

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(cfg.AdminAPIKey, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	// ───────────────────────── ROUTES ─────────────────────────
	r := router.New(router.Deps{
		Auth:        authService,
		AuthHandler: authHandler,
		Catalog:     catalogHandler,
		Cart:        cartHandler,
		Quote:       quoteHandler,
		CORSOrigins: cfg.CORSOrigins,
	})

	// ───────────────────────── START ─────────────────────────
	logrus.WithField("addr", cfg.ListenAddr).Info("quotation api listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
