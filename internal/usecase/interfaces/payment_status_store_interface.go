package interfaces

import (
	"checkout_verifier/internal/domain/entities"
	"context"
	"time"
)

// IPaymentStatusStore is the TTL-bounded map from transaction id to its last
// known PaymentRecord.
//
// Get returns an empty record (IsEmpty) with a nil error when nothing is
// stored or the record has expired. Set always overwrites the whole record and
// refreshes its TTL. There is no compare-and-swap: last write wins.

type IPaymentStatusStore interface {
	Get(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
	Set(ctx context.Context, transactionID string, record entities.PaymentRecord, ttl time.Duration) error
}
