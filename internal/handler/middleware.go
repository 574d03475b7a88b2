package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDContextKey = "userID"

// Auth verifies an externally issued bearer token and records the
// numeric subject as the owner id for the request. Token issuance and
// refresh live in the identity provider, not here.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDContextKey)
}

type QuotaStore interface {
	IncrDaily(ctx context.Context, userID int64) (int64, error)
}

// Quota limits how many model-calling requests each user may make per
// day. With no store configured the limit is not enforced.
func Quota(store QuotaStore, dailyLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || dailyLimit <= 0 {
			c.Next()
			return
		}

		count, err := store.IncrDaily(c.Request.Context(), currentUserID(c))
		if err != nil {
			// Quota accounting must not take the endpoint down.
			slog.Error("quota check failed", "error", err)
			c.Next()
			return
		}

		if count > int64(dailyLimit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Daily generation quota exceeded"})
			return
		}

		c.Next()
	}
}
