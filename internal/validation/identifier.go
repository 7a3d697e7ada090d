package validation

import (
	"fmt"
	"regexp"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), точка и нижнее подчеркивание
// Длина: 3-64 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]{3,64}$`)

// EmailPattern грубая проверка формата email, точную валидацию делает сервер
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// OTPPattern одноразовый код: ровно 6 цифр
var OTPPattern = regexp.MustCompile(`^[0-9]{6}$`)

const (
	// MinIdentifierLen минимальная длина идентификатора
	MinIdentifierLen = 3
	// MaxIdentifierLen максимальная длина идентификатора
	MaxIdentifierLen = 64
)

// ValidateIdentifier проверяет идентификатор пользователя
// Допустим либо username, либо email — сервер принимает оба варианта
func ValidateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if len(identifier) < MinIdentifierLen {
		return fmt.Errorf("identifier must be at least %d characters long", MinIdentifierLen)
	}

	if len(identifier) > MaxIdentifierLen {
		return fmt.Errorf("identifier must not exceed %d characters", MaxIdentifierLen)
	}

	if !UsernamePattern.MatchString(identifier) && !EmailPattern.MatchString(identifier) {
		return fmt.Errorf("identifier must be a username (letters, numbers, '.', '_') or an email address")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Минимум 8 символов; остальные правила на стороне сервера
func ValidatePassword(password string) error {
	const minPasswordLen = 8

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}

	return nil
}

// ValidateOTP проверяет формат одноразового кода
func ValidateOTP(code string) error {
	if code == "" {
		return fmt.Errorf("code cannot be empty")
	}

	if !OTPPattern.MatchString(code) {
		return fmt.Errorf("code must be exactly 6 digits")
	}

	return nil
}
