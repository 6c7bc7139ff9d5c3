package entities

import "time"

const PaymentEventApproved = "payment.approved"

// PaymentEvent is published when this instance observes a transaction moving
// into approved. Delivery is best effort.
type PaymentEvent struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method"`
	Amount        float64       `json:"amount"`
	Source        RecordSource  `json:"source"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
