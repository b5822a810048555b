package middleware

import (
	"strings"

	"premium-blog-api/config"
	"premium-blog-api/helper"
	"premium-blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = helper.NewHTTPHelper()

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

func setIdentity(c *gin.Context, claims *Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("token_jti", claims.ID)
	if claims.ExpiresAt != nil {
		c.Set("token_exp", claims.ExpiresAt.Time)
	}
}

// AuthMiddleware requires a valid, unrevoked Bearer token. Revocation is
// checked on every request so sign-out takes effect immediately.
func AuthMiddleware(tokens services.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		// Fail closed: if revocation state cannot be read, a signed-out
		// token must not slip through.
		revoked, err := tokens.IsRevoked(claims.ID)
		if err != nil {
			HTTPHelper.SendUpstreamError(c, "Unable to verify session, please retry", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		if revoked {
			HTTPHelper.SendUnauthorizedError(c, "Token has been revoked", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a valid token is present
// and lets the request through anonymously otherwise. Used on public read
// routes where entitlement widens what a viewer can see.
func OptionalAuthMiddleware(tokens services.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if revoked, err := tokens.IsRevoked(claims.ID); err == nil && revoked {
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}
