package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sumeetkoyande/myFans/utils"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.Trim(parts[1], "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

// setIdentity copies the token identity into the gin context. JSON numbers
// decode as float64, so the id is normalized back to uint here.
func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		c.Abort()
		return false
	}

	isCreator, _ := claims["is_creator"].(bool)
	email, _ := claims["email"].(string)

	c.Set("user_id", uint(rawID))
	c.Set("is_creator", isCreator)
	c.Set("email", email)
	return true
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		if !setIdentity(c, claims) {
			return
		}

		c.Next()
	}
}

// CreatorAuth is JWTAuth plus the creator role requirement.
func CreatorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		if !setIdentity(c, claims) {
			return
		}

		if !c.GetBool("is_creator") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: creator role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
