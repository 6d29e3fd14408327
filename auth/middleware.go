package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studyshare-backend/common"
)

// CookieName is the cookie carrying the signed credential.
const CookieName = "token"

const (
	ctxUserID = "auth.userID"
	ctxEmail  = "auth.email"
)

// RequireAuth resolves the request's credential and aborts with 401
// when it is missing or invalid. The credential is read from the auth
// cookie first, then from a bearer Authorization header. On success
// the resolved identity is stored on the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := extractCredential(c)
		if credential == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": common.ErrMissingCredential.Error(),
			})
			return
		}

		claims, err := ParseToken(credential, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": common.ErrInvalidCredential.Error(),
			})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Next()
	}
}

func extractCredential(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return after
	}
	return ""
}

// UserID returns the authenticated user's identifier set by
// RequireAuth. Empty when the request is unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// Email returns the authenticated user's email claim.
func Email(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
