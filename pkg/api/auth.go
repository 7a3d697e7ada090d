package api

import "encoding/json"

// Response представляет стандартный конверт ответа сервера
// Все эндпоинты портала отвечают в формате {success, data?, message?}
type Response struct {
	Success bool            `json:"success"`           // признак успешного ответа
	Message string          `json:"message,omitempty"` // сообщение об ошибке или статусе
	Data    json.RawMessage `json:"data,omitempty"`    // полезная нагрузка (опциональна)
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`            // идентификатор пользователя (email или username)
	Password string `json:"password"`            // пароль
	DeviceID string `json:"device_id,omitempty"` // стабильный ID установки клиента
}

// VerifyOTPRequest представляет запрос на подтверждение одноразового кода
type VerifyOTPRequest struct {
	Username string `json:"username"`            // идентификатор из исходного логина
	Code     string `json:"code"`                // одноразовый код
	DeviceID string `json:"device_id,omitempty"` // стабильный ID установки клиента
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"` // действующий refresh token
}

// TokenGrant represents the auth payload inside the response envelope.
// Either OTPRequired is set (login needs a second step, no tokens yet)
// or both tokens are present together with the profile.
type TokenGrant struct {
	AccessToken  string          `json:"access_token,omitempty"`  // короткоживущий access token
	RefreshToken string          `json:"refresh_token,omitempty"` // долгоживущий refresh token
	OTPRequired  bool            `json:"otp_required,omitempty"`  // сервер запросил OTP-подтверждение
	Profile      *StudentProfile `json:"profile,omitempty"`       // профиль аутентифицированного пользователя
}

// ErrorResponse представляет ответ с ошибкой вне конверта (старые эндпоинты)
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
