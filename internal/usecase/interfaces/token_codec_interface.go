package interfaces

import "checkout_verifier/internal/domain/entities"

// ITokenCodec issues and validates stateless confirmation access tokens.
type ITokenCodec interface {
	Issue(transactionID string, amount float64) (string, error)
	Validate(token string) entities.TokenValidation
}

// IWebhookSignatureVerifier authenticates raw webhook bodies.
type IWebhookSignatureVerifier interface {
	Configured() bool
	Verify(body []byte, signature string) bool
}
