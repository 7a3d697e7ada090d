package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry извлекает время истечения access token без проверки подписи.
// Клиент не валидирует токены (это делает сервер), exp нужен только для
// отображения статуса. Токен без exp или не-JWT считается непрозрачным.
func TokenExpiry(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read expiration claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiration claim")
	}

	return exp.Time, nil
}
