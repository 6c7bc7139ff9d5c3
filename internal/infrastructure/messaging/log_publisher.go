package messaging

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"log"
)

// LogPublisher writes events to the process log. Used when no broker is
// configured.
type LogPublisher struct{}

var _ interfaces.IPaymentEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, event entities.PaymentEvent) error {
	log.Printf("[payment][events] event type=%s transaction_id=%s status=%s method=%s amount=%s source=%s",
		event.Type, event.TransactionID, event.Status, event.Method, entities.FormatAmount(event.Amount), event.Source)
	return nil
}
