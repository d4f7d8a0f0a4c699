// Package auth provides JWT token issuance/validation and password hashing
// for the API's authentication flow.
package auth

import "errors"

// Token and password errors returned by this package. The API layer maps
// these to HTTP status codes.
var (
	// ErrInvalidToken indicates the access token is malformed, has a bad
	// signature, or otherwise failed validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the access token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid indicates the token's not-before time is in the
	// future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrWrongTokenType indicates an access token was presented where a
	// refresh token was expected, or vice versa.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidRefreshToken indicates the refresh token is malformed or has
	// a bad signature.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken indicates the refresh token's expiry has passed.
	ErrExpiredRefreshToken = errors.New("refresh token expired")

	// ErrPasswordTooShort indicates a plaintext password below the minimum
	// length.
	ErrPasswordTooShort = errors.New("password too short")
)
