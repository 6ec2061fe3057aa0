package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenUserKey = "token_user_id"
	demoTokenKey = "demo_token"
)

// AuthContext inspects the bearer token without enforcing anything: the
// gateway passes tokens through to the upstream, which is the authority.
// Demo tokens mark the request as demo mode; real JWTs contribute the user
// id to the request log. Claims are read unverified; the signing key lives
// upstream.
func AuthContext() gin.HandlerFunc {
	parser := jwt.NewParser()
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.Next()
			return
		}

		if strings.HasPrefix(token, "demo_access_token_") {
			c.Set(demoTokenKey, true)
			c.Next()
			return
		}

		claims := jwt.MapClaims{}
		if _, _, err := parser.ParseUnverified(token, claims); err == nil {
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				c.Set(tokenUserKey, sub)
			} else if uid, found := claims["user_id"]; found {
				c.Set(tokenUserKey, fmt.Sprintf("%v", uid))
			}
		}
		c.Next()
	}
}

// GetTokenUserID returns the user id carried by the bearer JWT, if any.
func GetTokenUserID(c *gin.Context) string {
	if v, ok := c.Get(tokenUserKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsDemoToken reports whether the request carried a fabricated demo token.
func IsDemoToken(c *gin.Context) bool {
	if v, ok := c.Get(demoTokenKey); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
