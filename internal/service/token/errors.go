package token

import "errors"

var (
	// ErrMissingToken indicates no token was supplied at all.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken covers "never existed", "already consumed" and
	// "expired and garbage-collected". The cases are deliberately merged so
	// a caller cannot probe which one occurred.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired indicates a present record past its TTL.
	ErrTokenExpired = errors.New("token expired")

	// ErrWrongTokenType indicates a token issued for a different flow.
	ErrWrongTokenType = errors.New("wrong token type")
)

// symbolic error codes surfaced as the error= redirect query parameter
const (
	CodeMissingToken       = "MissingToken"
	CodeInvalidToken       = "InvalidToken"
	CodeTokenExpired       = "TokenExpired"
	CodeWrongTokenType     = "WrongTokenType"
	CodeVerificationFailed = "VerificationFailed"
)

// ErrorCode maps a validation error to its symbolic code. Unrecognized
// errors (backend failures) map to VerificationFailed.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return CodeMissingToken
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrWrongTokenType):
		return CodeWrongTokenType
	default:
		return CodeVerificationFailed
	}
}
