package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fablab-scheduler/internal/domain/user"
	"fablab-scheduler/internal/handler/httperr"
	"fablab-scheduler/internal/pkg/cookie"
	"fablab-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken     = errors.New("access token missing from request")
	errRoleNotInContext = errors.New("user role missing from context")
	errNotStaff         = errors.New("staff role required")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, errMissingToken, "Access token required")
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		setUserContext(c, userID, role)
		c.Next()
	}
}

// RequireStaff gates approval and flag endpoints. Must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, errRoleNotInContext, "Internal server error")
			return
		}

		if !role.IsStaff() {
			httperr.Abort(c, http.StatusForbidden, errNotStaff, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setUserContext(c *gin.Context, userID uuid.UUID, role user.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
		"role":    string(role),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
