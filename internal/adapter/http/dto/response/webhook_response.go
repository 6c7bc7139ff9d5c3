package response

import (
	"checkout_verifier/internal/domain/entities"
	"time"
)

type WebhookReceiptResponse struct {
	Received      bool      `json:"received"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	ProcessedAt   time.Time `json:"processed_at"`
}

func FromWebhookReceipt(r entities.WebhookReceipt) WebhookReceiptResponse {
	return WebhookReceiptResponse{
		Received:      true,
		TransactionID: r.TransactionID,
		Status:        string(r.Status),
		ProcessedAt:   r.ProcessedAt,
	}
}

// PaymentStatusResponse is the polled status of one transaction. When nothing
// is known it is just {"verified":false,"status":"pending"}.
type PaymentStatusResponse struct {
	TransactionID string     `json:"transaction_id,omitempty"`
	Status        string     `json:"status"`
	Verified      bool       `json:"verified"`
	Method        string     `json:"method,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	RawStatus     string     `json:"raw_status,omitempty"`
	WebhookEvent  string     `json:"webhook_event,omitempty"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentStatusResponse {
	if rec.IsEmpty() {
		return PaymentStatusResponse{Status: string(entities.PaymentStatusPending)}
	}
	amount := rec.Amount
	resp := PaymentStatusResponse{
		TransactionID: rec.TransactionID,
		Status:        string(rec.Status),
		Verified:      rec.Status == entities.PaymentStatusApproved,
		Method:        rec.Method,
		Amount:        &amount,
		RawStatus:     rec.RawStatus,
		WebhookEvent:  rec.WebhookEvent,
	}
	if !rec.UpdatedAt.IsZero() {
		at := rec.UpdatedAt
		resp.UpdatedAt = &at
	}
	return resp
}
