package interfaces

import (
	"checkout_verifier/internal/domain/entities"
	"context"
)

// IPaymentEventPublisher forwards payment events to downstream consumers.
type IPaymentEventPublisher interface {
	Publish(ctx context.Context, event entities.PaymentEvent) error
}
