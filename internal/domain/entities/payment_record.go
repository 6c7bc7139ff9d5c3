package entities

import (
	"strings"
	"time"
)

// PaymentStatus is the closed set of states a transaction can be in.
//
// Gateways speak many dialects ("paid", "waiting_payment", "canceled"...);
// everything is normalized into one of these values before it is stored or
// used for a decision.

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefused  PaymentStatus = "refused"
	PaymentStatusExpired  PaymentStatus = "expired"
	PaymentStatusUnknown  PaymentStatus = "unknown"
)

// IsTerminal reports whether further gateway polling can change the status.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusRefused, PaymentStatusExpired:
		return true
	}
	return false
}

// RecordSource tells which path produced a PaymentRecord. Audit only.
type RecordSource string

const (
	RecordSourceWebhook RecordSource = "webhook"
	RecordSourceGateway RecordSource = "gateway"
	RecordSourceLocal   RecordSource = "local"
	RecordSourceCharge  RecordSource = "charge"
)

// PaymentRecordTTL is how long a record lives in the status store. After it
// expires the transaction reads as absent and must be re-resolved.
const PaymentRecordTTL = 48 * time.Hour

// PaymentRecord is the last known truth for one transaction.
//
// Records are always overwritten as a whole, never merged. RawStatus and
// WebhookEvent keep the provider vocabulary for debugging and are never used
// for decisions.
type PaymentRecord struct {
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method"`
	Amount        float64       `json:"amount"`
	UpdatedAt     time.Time     `json:"updated_at"`
	RawStatus     string        `json:"raw_status,omitempty"`
	WebhookEvent  string        `json:"webhook_event,omitempty"`
	Source        RecordSource  `json:"source,omitempty"`
}

// IsEmpty reports whether the record represents "not found".
func (r PaymentRecord) IsEmpty() bool {
	return r.TransactionID == ""
}

// localTransactionPrefixes mark ids minted by this system for payments that
// were never sent to a gateway (offline PIX fallback).
var localTransactionPrefixes = []string{"LOCAL_", "PIX_"}

func IsLocalTransactionID(id string) bool {
	for _, p := range localTransactionPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
