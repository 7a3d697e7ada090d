package auth

import "errors"

// Expected authentication outcomes. Returned as values and matched with
// errors.Is at the call site; unexpected transport failures are wrapped
// generically instead.
var (
	// ErrInvalidCredentials indicates a bad identifier/secret pair
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongRole indicates valid credentials for a role this client
	// does not serve; no session is created in that case
	ErrWrongRole = errors.New("account role is not permitted in this client")

	// ErrOTPInvalid indicates a wrong one-time code
	ErrOTPInvalid = errors.New("invalid one-time code")

	// ErrOTPExpired indicates an expired one-time code
	ErrOTPExpired = errors.New("one-time code expired")
)
