// Package auth provides signed-token identity for API callers. The token
// scheme is pluggable: handlers depend on TokenIssuer/TokenVerifier, not on
// a concrete signing method.
package auth

import "time"

// TokenIssuer mints a token tied to a numeric user id.
type TokenIssuer interface {
	Issue(userID int64, validity time.Duration) (string, error)
}

// TokenVerifier checks a token's signature and expiry and returns the
// caller's user id. Failures are common.ErrInvalidToken or
// common.ErrTokenExpired.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
