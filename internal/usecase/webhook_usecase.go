package usecase

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
	ErrInvalidTransactionID    = errors.New("invalid transaction_id")
)

// IWebhookUseCase ingests gateway push notifications and serves the polled
// status of a transaction.
type IWebhookUseCase interface {
	Ingest(ctx context.Context, body []byte, signature string) (entities.WebhookReceipt, error)
	GetStatus(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
}

type WebhookUseCase struct {
	store    interfaces.IPaymentStatusStore
	verifier interfaces.IWebhookSignatureVerifier
	events   interfaces.IPaymentEventPublisher
	metrics  interfaces.IPaymentMetrics
	now      func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	store interfaces.IPaymentStatusStore,
	verifier interfaces.IWebhookSignatureVerifier,
	events interfaces.IPaymentEventPublisher,
	metrics interfaces.IPaymentMetrics,
) *WebhookUseCase {
	return &WebhookUseCase{store: store, verifier: verifier, events: events, metrics: metrics, now: time.Now}
}

// Ingest authenticates and applies one notification. Only a bad signature or
// an unparseable body is an error: once the notification is understood it is
// acknowledged even if the store write fails, so the gateway does not retry
// forever.
func (u *WebhookUseCase) Ingest(ctx context.Context, body []byte, signature string) (entities.WebhookReceipt, error) {
	if u.verifier != nil && u.verifier.Configured() {
		if !u.verifier.Verify(body, signature) {
			log.Printf("[webhook][usecase] signature rejected body_len=%d signature_present=%t", len(body), signature != "")
			u.observe("rejected")
			return entities.WebhookReceipt{}, ErrInvalidWebhookSignature
		}
	} else {
		log.Printf("[webhook][usecase] webhook secret not configured; accepting unauthenticated payload")
	}

	n, err := entities.ParseWebhookNotification(body)
	if err != nil {
		log.Printf("[webhook][usecase] malformed payload body_len=%d", len(body))
		u.observe("malformed")
		return entities.WebhookReceipt{}, ErrInvalidWebhookPayload
	}

	now := u.now().UTC()
	status := entities.NormalizeGatewayStatus(n.RawStatus, n.Event)
	receipt := entities.WebhookReceipt{TransactionID: n.TransactionID, Status: status, ProcessedAt: now}

	if n.TransactionID == "" {
		log.Printf("[webhook][usecase] no transaction id in payload event=%s raw_status=%s", n.Event, n.RawStatus)
		u.observe("ignored")
		return receipt, nil
	}

	prev := readRecord(ctx, u.store, n.TransactionID)
	rec := entities.PaymentRecord{
		TransactionID: n.TransactionID,
		Status:        status,
		Method:        n.Method,
		Amount:        n.Amount,
		UpdatedAt:     now,
		RawStatus:     n.RawStatus,
		WebhookEvent:  n.Event,
		Source:        entities.RecordSourceWebhook,
	}
	if !writeRecord(ctx, u.store, rec) {
		u.observe("store_failed")
		return receipt, nil
	}
	publishApprovedTransition(ctx, u.events, prev, rec, u.now)

	log.Printf("[webhook][usecase] applied transaction_id=%s event=%s raw_status=%s status=%s", n.TransactionID, n.Event, n.RawStatus, status)
	u.observe("applied")
	return receipt, nil
}

func (u *WebhookUseCase) GetStatus(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.PaymentRecord{}, ErrInvalidTransactionID
	}
	return readRecord(ctx, u.store, transactionID), nil
}

func (u *WebhookUseCase) observe(outcome string) {
	if u.metrics != nil {
		u.metrics.ObserveWebhook(outcome)
	}
}
