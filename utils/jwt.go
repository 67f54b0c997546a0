package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/sumeetkoyande/myFans/config"
	"github.com/sumeetkoyande/myFans/models"
)

// GenerateJWT signs an HS256 token carrying the account id, email and
// creator flag.
func GenerateJWT(user models.User, hours int) (string, error) {
	jwtSecret := []byte(config.Get().JWTSecret)

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"is_creator": user.IsCreator,
		"exp":        time.Now().Add(time.Hour * time.Duration(hours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func DecodeJWT(tokenString string) (jwt.MapClaims, error) {
	jwtSecret := []byte(config.Get().JWTSecret)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid or expired token")
}
