package repository

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	record    entities.PaymentRecord
	expiresAt time.Time
}

// PaymentStatusMemoryRepository keeps records in process memory.
//
// It is NOT durable and NOT shared: every instance has its own copy and a
// restart loses everything. It exists as a fallback when no remote store is
// configured or reachable. Expiry is checked lazily on read.

type PaymentStatusMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

var _ interfaces.IPaymentStatusStore = (*PaymentStatusMemoryRepository)(nil)

func NewPaymentStatusMemoryRepository() *PaymentStatusMemoryRepository {
	return &PaymentStatusMemoryRepository{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (r *PaymentStatusMemoryRepository) Get(_ context.Context, transactionID string) (entities.PaymentRecord, error) {
	r.mu.RLock()
	entry, ok := r.items[transactionID]
	r.mu.RUnlock()
	if !ok {
		return entities.PaymentRecord{}, nil
	}

	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		r.mu.Lock()
		if current, ok := r.items[transactionID]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(r.items, transactionID)
		}
		r.mu.Unlock()
		return entities.PaymentRecord{}, nil
	}
	return entry.record, nil
}

func (r *PaymentStatusMemoryRepository) Set(_ context.Context, transactionID string, record entities.PaymentRecord, ttl time.Duration) error {
	entry := memoryEntry{record: record}
	entry.record.TransactionID = transactionID
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.items[transactionID] = entry
	r.mu.Unlock()
	return nil
}

// Len reports how many entries are held, expired ones included.
func (r *PaymentStatusMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
