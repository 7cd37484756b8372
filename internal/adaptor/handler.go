package adaptor

import (
	"net/http"
	"strings"

	"secure-portal/internal/usecase"
	"secure-portal/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Payment *PaymentHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Payment: NewPaymentHandler(service.Payment, log),
		User:    NewUserHandler(service.User, log),
	}
}

// handleServiceError maps service failures to HTTP responses. Messages are
// matched rather than typed; services keep them stable for this reason.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already taken"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "invalid refresh token"),
		strings.Contains(errMsg, "invalid or expired"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "access required"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
