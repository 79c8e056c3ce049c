// Package api provides the HTTP API for FitAdvisor.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fitadvisor/fitadvisor/internal/api/handler"
	"github.com/fitadvisor/fitadvisor/internal/api/middleware"
	"github.com/fitadvisor/fitadvisor/internal/auth"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/classifier"
	"github.com/fitadvisor/fitadvisor/internal/provider/resilience"
	"github.com/fitadvisor/fitadvisor/internal/recommend"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	BuildTime         string
	Logger            zerolog.Logger
	ServiceName       string
	Metrics           *middleware.Metrics
	CatalogLoader     *catalog.Loader
	RecommendService  *recommend.Service
	ClassifierService *classifier.Service
	TokenValidator    *auth.TokenValidator
	ProviderRegistry  *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "fitadvisor-api"
	}
	registry := cfg.ProviderRegistry
	if registry == nil {
		registry = resilience.GlobalRegistry
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.CatalogLoader.Store(), cfg.ClassifierService, registry)
	recommendHandler := handler.NewRecommendHandler(cfg.RecommendService)
	classifyHandler := handler.NewClassifyHandler(cfg.ClassifierService)
	metadataHandler := handler.NewMetadataHandler()
	adminHandler := handler.NewAdminHandler(cfg.CatalogLoader)

	// Create admin auth middleware
	adminAuth := middleware.AdminAuth(cfg.TokenValidator)

	// Create rate limit middleware for different endpoint categories
	adminRateLimit := middleware.RateLimitByIP(middleware.AdminRateLimit)         // 10 req/min
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Recommendation endpoint - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Post("/recommendations", recommendHandler.Recommend)

		// Classification endpoint - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Post("/classify", classifyHandler.Classify)

		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/equipment", metadataHandler.Equipment)
			r.Get("/muscles", metadataHandler.Muscles)
		})

		// Admin endpoints (authenticated) - for internal operations
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminAuth)
			r.Use(adminRateLimit)
			r.Post("/catalog/reload", adminHandler.ReloadCatalog)
		})
	})

	return r
}
