package entities

import "time"

// GatewayStatus is a normalized answer from the payment gateway.
// Amount is zero when the gateway did not report one.
type GatewayStatus struct {
	Status    PaymentStatus
	RawStatus string
	Amount    float64
}

// VerificationResult is returned by the declare-and-verify flow. Token is only
// set when Verified is true.
type VerificationResult struct {
	Verified      bool
	Token         string
	Status        PaymentStatus
	TransactionID string
	Method        string
	Amount        float64
	VerifiedAt    time.Time
}

// TokenResolution is returned by the consume-and-resolve flow.
type TokenResolution struct {
	Valid         bool
	TransactionID string
	Amount        float64
	Status        PaymentStatus
	Verified      bool
	UpdatedAt     time.Time
}
