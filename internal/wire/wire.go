// internal/wire/wire.go
package wire

import (
	"fmt"
	"net/http"
	"time"

	"secure-portal/internal/adaptor"
	"secure-portal/internal/data/repository"
	"secure-portal/internal/usecase"
	"secure-portal/pkg/middleware"
	"secure-portal/pkg/token"
	"secure-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	issuer, err := token.NewIssuer(
		config.JWT.Secret,
		time.Duration(config.JWT.AccessTTLMinutes)*time.Minute,
		time.Duration(config.JWT.RefreshTTLDays)*24*time.Hour,
	)
	if err != nil {
		return nil, fmt.Errorf("create token issuer: %w", err)
	}

	service := usecase.NewService(repo, issuer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, issuer, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	issuer *token.Issuer,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth, issuer, logger)
	wireUser(r, handler.User, issuer, logger)
	wirePayment(r, handler.Payment, issuer, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
