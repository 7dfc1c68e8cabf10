package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbook/internal/config"
	"travelbook/internal/middleware"
	"travelbook/internal/modules/auth"
	"travelbook/internal/modules/booking"
	"travelbook/internal/modules/realtime"
	"travelbook/internal/modules/review"
	jwtsvc "travelbook/internal/pkg/jwt"
	"travelbook/internal/pkg/response"
	"travelbook/internal/storage"
)

// App holds the constructed stores and the HTTP router.
type App struct {
	Router   *gin.Engine
	Bookings *booking.Store
	Reviews  *review.Store
	Hub      *realtime.Hub
	JWT      *jwtsvc.Service

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	adapter, closeStorage, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a := &App{closers: []func() error{closeStorage}}

	a.Bookings, err = booking.NewStore(ctx, adapter, booking.WithLogger(log))
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	a.Reviews, err = review.NewStore(ctx, adapter, review.WithLogger(log))
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	a.closers = append(a.closers, a.Bookings.Close, a.Reviews.Close)

	seeds, err := review.LoadSeed(cfg.SeedReviewsPath)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Hub = realtime.NewHub(log)
	detachBookings := a.Hub.AttachBookings(a.Bookings)
	detachReviews := a.Hub.AttachReviews(a.Reviews)
	a.closers = append(a.closers, func() error {
		detachBookings()
		detachReviews()
		a.Hub.Close()
		return nil
	})

	a.JWT = jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	log.Info("stores ready",
		"storage", cfg.Storage.Driver,
		"bookings", len(a.Bookings.Bookings()),
		"reviews", len(a.Reviews.Reviews()),
		"seed_reviews", seeds.Len(),
	)

	a.Router = a.routes(cfg, log, seeds)
	return a, nil
}

func (a *App) routes(cfg *config.Config, log *slog.Logger, seeds *review.SeedCatalog) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger(log))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := auth.NewHandler(auth.NewService(a.JWT, !cfg.IsProduction()))
	bookingHandler := booking.NewHandler(a.Bookings)
	reviewHandler := review.NewHandler(review.NewService(a.Reviews, seeds))
	wsHandler := realtime.NewHandler(a.Hub, a.JWT, middleware.AllowedOrigins(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(a.JWT))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		reviewHandler.RegisterRoutes(v1, protected)
	}

	return r
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
