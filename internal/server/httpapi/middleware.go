package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fitprogress/internal/common"
	"fitprogress/internal/logging"
	"fitprogress/internal/server/auth"
	"fitprogress/internal/server/models"
)

const claimsKey = "claims"

// RequireAuth validates the Bearer token and stores its claims in the
// request context.
func RequireAuth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}
		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), secretKey)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose token carries a
// different role. It must run after RequireAuth.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil || claims.Role != role {
			abortWithError(c, common.ErrorForbidden)
			return
		}
		c.Next()
	}
}

// claimsFrom returns the claims stored by RequireAuth, or nil.
func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// CORS allows the configured web-client origins.
func CORS(allowedOrigins string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	})
}

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
