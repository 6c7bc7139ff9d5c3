package response

import (
	"checkout_verifier/internal/domain/entities"
	"time"
)

type VerifyPaymentResponse struct {
	Verified      bool       `json:"verified"`
	Token         string     `json:"token,omitempty"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transaction_id"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
}

func FromVerificationResult(r entities.VerificationResult) VerifyPaymentResponse {
	resp := VerifyPaymentResponse{
		Verified:      r.Verified,
		Token:         r.Token,
		Status:        string(r.Status),
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Method:        r.Method,
	}
	if r.Verified && !r.VerifiedAt.IsZero() {
		at := r.VerifiedAt
		resp.VerifiedAt = &at
	}
	return resp
}

// TokenResolutionResponse answers the confirmation page. A denied resolution
// serializes to {"valid":false,"verified":false} and nothing else.
type TokenResolutionResponse struct {
	Valid         bool       `json:"valid"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	Status        string     `json:"status,omitempty"`
	Verified      bool       `json:"verified"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func FromTokenResolution(r entities.TokenResolution) TokenResolutionResponse {
	if !r.Valid {
		return DeniedTokenResolution()
	}
	amount := r.Amount
	resp := TokenResolutionResponse{
		Valid:         true,
		TransactionID: r.TransactionID,
		Amount:        &amount,
		Status:        string(r.Status),
		Verified:      r.Verified,
	}
	if !r.UpdatedAt.IsZero() {
		at := r.UpdatedAt
		resp.UpdatedAt = &at
	}
	return resp
}

func DeniedTokenResolution() TokenResolutionResponse {
	return TokenResolutionResponse{Valid: false, Verified: false}
}
