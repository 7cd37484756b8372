package middleware

import (
	"net/http"
	"strings"

	"secure-portal/internal/data/entity"
	"secure-portal/pkg/token"
	"secure-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthJWT validates the bearer token and attaches the caller's identity
// and role to the request context.
func AuthJWT(issuer *token.Issuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Token subject is not a valid user ID",
					zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireEmployee runs after AuthJWT and rejects callers whose role claim
// is not employee. Role staleness is accepted until the next token refresh.
func RequireEmployee(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleEmployee) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-employee access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Employee access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
