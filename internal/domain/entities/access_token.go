package entities

import "time"

// AccessTokenLifetime bounds how long a confirmation link stays usable.
const AccessTokenLifetime = time.Hour

// AccessTokenClaims are the bound claims of a confirmation access token.
//
// ExpiresAt is expressed in unix milliseconds. Nonce makes two tokens for the
// same transaction differ; it is not a single-use marker.
type AccessTokenClaims struct {
	TransactionID string  `json:"tid"`
	Amount        float64 `json:"amt"`
	ExpiresAt     int64   `json:"exp"`
	Nonce         string  `json:"nonce"`
}

// TokenValidation is the outcome of validating a token. When Valid is false
// the other fields are empty.
type TokenValidation struct {
	Valid         bool
	TransactionID string
	Amount        float64
}
