package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"diario/wellness-app/internal/auth"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

// jwtClaims defines the structure we expect in tokens minted by the
// external identity provider.
type jwtClaims struct {
	UserID      string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	PhotoURL    string `json:"picture"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware validating the identity
// provider's JWT and enforcing the email allow-list.
func AuthMiddleware(jwtSecret string, allowList auth.AllowList) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
				return
			}
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		if !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if !allowList.Allowed(claims.Email) {
			abortWithError(c, http.StatusForbidden, "This account is not authorized to use the app")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Next()
	}
}

// abortWithError sends a JSON error response and stops the handler chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// getUserIDFromContext returns the authenticated user's id set by
// AuthMiddleware.
func getUserIDFromContext(c *gin.Context) (string, error) {
	userID := c.GetString(ContextUserIDKey)
	if userID == "" {
		return "", errors.New("user id missing from request context")
	}
	return userID, nil
}
