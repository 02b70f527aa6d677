package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"chatline/backend/internal/config"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user ID in the gin context under "userID". Requests without a valid token
// are rejected with 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Authorization header missing or malformed")
			return
		}

		token, err := gojwt.Parse(parts[1], func(token *gojwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(gojwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		userIDFloat, ok := claims["sub"].(float64)
		if !ok {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("userID", uint(userIDFloat))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
