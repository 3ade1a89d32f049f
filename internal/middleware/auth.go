package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/pkg/auth"
)

const UserIDKey = "userID"

// UserID returns the authenticated user's id from the request context,
// if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func verifyToken(c *gin.Context, token string, jwtManager *auth.JWTManager, blacklist auth.Blacklist) (uint, bool) {
	if blacklist != nil {
		revoked, err := blacklist.Contains(c.Request.Context(), token)
		if err != nil || revoked {
			return 0, false
		}
	}

	userID, err := jwtManager.Verify(token)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// RequireAuth rejects requests without a valid, non-revoked bearer token.
func RequireAuth(jwtManager *auth.JWTManager, blacklist auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		userID, ok := verifyToken(c, token, jwtManager, blacklist)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and
// lets anonymous requests through untouched.
func OptionalAuth(jwtManager *auth.JWTManager, blacklist auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err == nil {
			if userID, ok := verifyToken(c, token, jwtManager, blacklist); ok {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// WSAuth authenticates websocket upgrades, which pass the token as a
// query parameter since browsers cannot set headers on them.
func WSAuth(jwtManager *auth.JWTManager, blacklist auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			if t, err := auth.ExtractTokenFromHeader(c.Request); err == nil {
				token = t
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		userID, ok := verifyToken(c, token, jwtManager, blacklist)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
