package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// GenerateToken issues a signed session token after OTP verification.
func GenerateToken(user User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   user.ID,
		"email":    user.Email,
		"userType": "doctor",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
