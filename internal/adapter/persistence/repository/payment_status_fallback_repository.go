package repository

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"log"
	"time"
)

const defaultStoreTimeout = 5 * time.Second

// PaymentStatusFallbackRepository prefers a remote store and falls back to a
// secondary (usually in-memory) store whenever the primary errors or times
// out. It never returns an error itself.
//
// While the fallback is serving, consistency is weaker: records written to the
// fallback are visible only to this process and are lost on restart.

type PaymentStatusFallbackRepository struct {
	primary  interfaces.IPaymentStatusStore
	fallback interfaces.IPaymentStatusStore
	name     string
	timeout  time.Duration
}

var _ interfaces.IPaymentStatusStore = (*PaymentStatusFallbackRepository)(nil)

func NewPaymentStatusFallbackRepository(name string, primary, fallback interfaces.IPaymentStatusStore, timeout time.Duration) *PaymentStatusFallbackRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &PaymentStatusFallbackRepository{primary: primary, fallback: fallback, name: name, timeout: timeout}
}

func (r *PaymentStatusFallbackRepository) Get(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	if r.primary != nil {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		rec, err := r.primary.Get(cctx, transactionID)
		cancel()
		if err == nil {
			return rec, nil
		}
		log.Printf("[store][%s] get failed, falling back to memory transaction_id=%s err=%v", r.name, transactionID, err)
	}

	rec, err := r.fallback.Get(ctx, transactionID)
	if err != nil {
		log.Printf("[store][fallback] get failed transaction_id=%s err=%v", transactionID, err)
		return entities.PaymentRecord{}, nil
	}
	return rec, nil
}

func (r *PaymentStatusFallbackRepository) Set(ctx context.Context, transactionID string, record entities.PaymentRecord, ttl time.Duration) error {
	if r.primary != nil {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		err := r.primary.Set(cctx, transactionID, record, ttl)
		cancel()
		if err == nil {
			return nil
		}
		log.Printf("[store][%s] set failed, falling back to memory transaction_id=%s err=%v", r.name, transactionID, err)
	}

	if err := r.fallback.Set(ctx, transactionID, record, ttl); err != nil {
		log.Printf("[store][fallback] set failed transaction_id=%s err=%v", transactionID, err)
	}
	return nil
}
