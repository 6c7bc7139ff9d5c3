package request

import (
	"errors"
	"strings"
)

var ErrInvalidVerifyPaymentRequest = errors.New("invalid verify payment request")

// VerifyPaymentRequest is the checkout's declaration of a payment. Amount is
// a pointer so that a missing amount can be told apart from zero.
type VerifyPaymentRequest struct {
	TransactionID string   `json:"transaction_id"`
	Method        string   `json:"method"`
	Amount        *float64 `json:"amount"`
}

func (r VerifyPaymentRequest) Validate() error {
	if strings.TrimSpace(r.TransactionID) == "" || strings.TrimSpace(r.Method) == "" || r.Amount == nil {
		return ErrInvalidVerifyPaymentRequest
	}
	return nil
}
