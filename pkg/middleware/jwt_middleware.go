package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitmarket/internal/authz"
	"fitmarket/internal/models/db_models"
	"fitmarket/pkg/tokendeny"
	"fitmarket/pkg/utils"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxToken  = "token"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// JWTAuthMiddleware rejects requests without a valid, non-denylisted
// bearer token and stores the resolved identity on the context.
func JWTAuthMiddleware(denylist tokendeny.Denylist) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		denied, err := denylist.IsDenied(c.Request.Context(), tokenString)
		if err != nil || denied {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxToken, tokenString)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a valid token is
// present and lets the request through anonymously otherwise. Browse
// endpoints use it: an invalid token never turns a read into a 401.
func OptionalAuthMiddleware(denylist tokendeny.Denylist) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if denied, err := denylist.IsDenied(c.Request.Context(), tokenString); err != nil || denied {
			c.Next()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxToken, tokenString)
		c.Next()
	}
}

// RoleMiddleware fails closed on role before any handler loads the
// target entity, so "not a trainer" never reaches the ownership check.
func RoleMiddleware(requiredRole db_models.Role) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(ctxRole)

		if role != string(requiredRole) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentActor rebuilds the authorization actor from context values
// set by the auth middleware. The zero actor means anonymous.
func CurrentActor(c *gin.Context) authz.Actor {
	idStr := c.GetString(ctxUserID)
	if idStr == "" {
		return authz.Actor{}
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return authz.Actor{}
	}
	return authz.Actor{
		ID:            id,
		Role:          db_models.Role(c.GetString(ctxRole)),
		Authenticated: true,
	}
}

// CurrentToken returns the raw bearer token stored by the auth
// middleware, for the logout denylist.
func CurrentToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}
