package usecase

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidVerifyRequest = errors.New("invalid verify request")
	ErrInvalidToken         = errors.New("invalid token")
)

// Verification paths, used in logs and metrics.
const (
	verifyPathLocal   = "local"
	verifyPathStore   = "store"
	verifyPathGateway = "gateway"
	verifyPathNone    = "none"
	resolvePathToken  = "token"
)

// amountTolerance absorbs float noise when comparing declared and gateway amounts.
const amountTolerance = 0.005

// IVerificationUseCase decides whether a transaction is paid.
//
// Verify is the write path: the checkout declares a transaction and gets a
// token only when approval is confirmed. ResolveToken is the read path used
// by the confirmation page while it polls.
type IVerificationUseCase interface {
	Verify(ctx context.Context, transactionID, method string, amount float64) (entities.VerificationResult, error)
	ResolveToken(ctx context.Context, token string) (entities.TokenResolution, error)
}

type VerificationUseCase struct {
	store   interfaces.IPaymentStatusStore
	gateway interfaces.IGatewayStatusResolver
	tokens  interfaces.ITokenCodec
	webhook interfaces.IWebhookSignatureVerifier
	events  interfaces.IPaymentEventPublisher
	metrics interfaces.IPaymentMetrics
	now     func() time.Time
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(
	store interfaces.IPaymentStatusStore,
	gateway interfaces.IGatewayStatusResolver,
	tokens interfaces.ITokenCodec,
	webhook interfaces.IWebhookSignatureVerifier,
	events interfaces.IPaymentEventPublisher,
	metrics interfaces.IPaymentMetrics,
) *VerificationUseCase {
	return &VerificationUseCase{
		store:   store,
		gateway: gateway,
		tokens:  tokens,
		webhook: webhook,
		events:  events,
		metrics: metrics,
		now:     time.Now,
	}
}

func (u *VerificationUseCase) Verify(ctx context.Context, transactionID, method string, amount float64) (entities.VerificationResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	method = strings.TrimSpace(method)
	log.Printf("[verify][usecase] verify start transaction_id=%s method=%s", transactionID, method)
	if transactionID == "" || method == "" || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		log.Printf("[verify][usecase] invalid request transaction_id=%q method=%q", transactionID, method)
		return entities.VerificationResult{}, ErrInvalidVerifyRequest
	}

	if entities.IsLocalTransactionID(transactionID) {
		return u.verifyLocal(ctx, transactionID, method, amount)
	}

	stored := readRecord(ctx, u.store, transactionID)

	if !stored.IsEmpty() && u.storedStatusTrusted(stored) {
		if stored.Status == entities.PaymentStatusApproved {
			log.Printf("[verify][usecase] approved from store transaction_id=%s source=%s", transactionID, stored.Source)
			u.checkAmount(transactionID, stored.Amount, amount)
			return u.grant(verifyPathStore, stored, method, amount)
		}
		if stored.Status.IsTerminal() {
			log.Printf("[verify][usecase] terminal status from store transaction_id=%s status=%s", transactionID, stored.Status)
			u.observeVerification(verifyPathStore, string(stored.Status))
			return u.deny(stored.Status, transactionID, method, boundAmount(stored.Amount, amount)), nil
		}
	}

	gs, ok := u.resolveGateway(ctx, transactionID)
	if ok {
		rec := refreshedRecord(transactionID, stored, gs, method, amount, u.now().UTC())
		writeRecord(ctx, u.store, rec)
		u.publishTransition(ctx, stored, rec)

		if rec.Status == entities.PaymentStatusApproved {
			u.checkAmount(transactionID, gs.Amount, amount)
			return u.grant(verifyPathGateway, rec, method, amount)
		}
		log.Printf("[verify][usecase] not approved by gateway transaction_id=%s status=%s", transactionID, rec.Status)
		u.observeVerification(verifyPathGateway, string(rec.Status))
		return u.deny(rec.Status, transactionID, method, boundAmount(rec.Amount, amount)), nil
	}

	// Nothing authoritative answered. An approved record we could not trust is
	// reported as pending rather than approved.
	status := entities.PaymentStatusPending
	if !stored.IsEmpty() && stored.Status != entities.PaymentStatusApproved && stored.Status != entities.PaymentStatusUnknown {
		status = stored.Status
	}
	log.Printf("[verify][usecase] undetermined transaction_id=%s status=%s stored=%t", transactionID, status, !stored.IsEmpty())
	u.observeVerification(verifyPathNone, string(status))
	return u.deny(status, transactionID, method, boundAmount(stored.Amount, amount)), nil
}

// verifyLocal handles ids minted for the offline PIX flow. There is no
// gateway to ask, so the declaration itself is authoritative.
func (u *VerificationUseCase) verifyLocal(ctx context.Context, transactionID, method string, amount float64) (entities.VerificationResult, error) {
	prev := readRecord(ctx, u.store, transactionID)
	rec := entities.PaymentRecord{
		TransactionID: transactionID,
		Status:        entities.PaymentStatusApproved,
		Method:        method,
		Amount:        amount,
		UpdatedAt:     u.now().UTC(),
		RawStatus:     "local",
		Source:        entities.RecordSourceLocal,
	}
	writeRecord(ctx, u.store, rec)
	u.publishTransition(ctx, prev, rec)
	log.Printf("[verify][usecase] local declaration accepted transaction_id=%s", transactionID)
	return u.grant(verifyPathLocal, rec, method, amount)
}

// storedStatusTrusted reports whether a stored record may decide without a
// fresh gateway lookup. Webhook-fed records are only trusted when webhook
// signatures are checked.
func (u *VerificationUseCase) storedStatusTrusted(rec entities.PaymentRecord) bool {
	if rec.Source == entities.RecordSourceGateway {
		return true
	}
	return u.webhook != nil && u.webhook.Configured()
}

func (u *VerificationUseCase) grant(path string, rec entities.PaymentRecord, method string, declared float64) (entities.VerificationResult, error) {
	amount := boundAmount(rec.Amount, declared)
	token, err := u.tokens.Issue(rec.TransactionID, amount)
	if err != nil {
		log.Printf("[verify][usecase] token issue failed transaction_id=%s err=%v", rec.TransactionID, err)
		return entities.VerificationResult{}, err
	}
	u.observeVerification(path, string(entities.PaymentStatusApproved))
	log.Printf("[verify][usecase] verified transaction_id=%s path=%s", rec.TransactionID, path)

	if rec.Method != "" {
		method = rec.Method
	}
	return entities.VerificationResult{
		Verified:      true,
		Token:         token,
		Status:        entities.PaymentStatusApproved,
		TransactionID: rec.TransactionID,
		Method:        method,
		Amount:        amount,
		VerifiedAt:    u.now().UTC(),
	}, nil
}

func (u *VerificationUseCase) deny(status entities.PaymentStatus, transactionID, method string, amount float64) entities.VerificationResult {
	return entities.VerificationResult{
		Verified:      false,
		Status:        status,
		TransactionID: transactionID,
		Method:        method,
		Amount:        amount,
	}
}

func (u *VerificationUseCase) ResolveToken(ctx context.Context, token string) (entities.TokenResolution, error) {
	claims := u.tokens.Validate(strings.TrimSpace(token))
	if !claims.Valid {
		log.Printf("[verify][usecase] resolve denied: invalid token")
		u.observeVerification(resolvePathToken, "denied")
		return entities.TokenResolution{}, ErrInvalidToken
	}

	stored := readRecord(ctx, u.store, claims.TransactionID)
	res := entities.TokenResolution{
		Valid:         true,
		TransactionID: claims.TransactionID,
		Amount:        claims.Amount,
		Status:        entities.PaymentStatusPending,
		UpdatedAt:     stored.UpdatedAt,
	}
	if !stored.IsEmpty() && stored.Status != entities.PaymentStatusUnknown {
		res.Status = stored.Status
	}

	// Terminal states are final; only live states are worth a gateway call.
	if stored.IsEmpty() || !stored.Status.IsTerminal() {
		if gs, ok := u.resolveGateway(ctx, claims.TransactionID); ok {
			rec := refreshedRecord(claims.TransactionID, stored, gs, "", claims.Amount, u.now().UTC())
			writeRecord(ctx, u.store, rec)
			u.publishTransition(ctx, stored, rec)
			res.UpdatedAt = rec.UpdatedAt
			if rec.Status != entities.PaymentStatusUnknown {
				res.Status = rec.Status
			}
		}
	}

	res.Verified = res.Status == entities.PaymentStatusApproved
	u.observeVerification(resolvePathToken, string(res.Status))
	log.Printf("[verify][usecase] resolve transaction_id=%s status=%s verified=%t", res.TransactionID, res.Status, res.Verified)
	return res, nil
}

func (u *VerificationUseCase) resolveGateway(ctx context.Context, transactionID string) (entities.GatewayStatus, bool) {
	if u.gateway == nil {
		return entities.GatewayStatus{}, false
	}
	gs, ok := u.gateway.ResolveStatus(ctx, transactionID)
	if u.metrics != nil {
		if ok {
			u.metrics.ObserveGatewayResolution(string(gs.Status))
		} else {
			u.metrics.ObserveGatewayResolution("none")
		}
	}
	return gs, ok
}

func (u *VerificationUseCase) checkAmount(transactionID string, authoritative, declared float64) {
	if authoritative <= 0 || math.Abs(authoritative-declared) < amountTolerance {
		return
	}
	log.Printf("[verify][usecase] amount mismatch transaction_id=%s declared=%s gateway=%s",
		transactionID, entities.FormatAmount(declared), entities.FormatAmount(authoritative))
	if u.metrics != nil {
		u.metrics.ObserveAmountMismatch()
	}
}

func (u *VerificationUseCase) observeVerification(path, outcome string) {
	if u.metrics != nil {
		u.metrics.ObserveVerification(path, outcome)
	}
}

func (u *VerificationUseCase) publishTransition(ctx context.Context, prev, next entities.PaymentRecord) {
	publishApprovedTransition(ctx, u.events, prev, next, u.now)
}

// refreshedRecord builds the record written after a gateway lookup. Method
// and amount already known for the transaction are kept.
func refreshedRecord(transactionID string, prev entities.PaymentRecord, gs entities.GatewayStatus, method string, declared float64, now time.Time) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		TransactionID: transactionID,
		Status:        gs.Status,
		Method:        prev.Method,
		Amount:        prev.Amount,
		UpdatedAt:     now,
		RawStatus:     gs.RawStatus,
		WebhookEvent:  prev.WebhookEvent,
		Source:        entities.RecordSourceGateway,
	}
	if rec.Method == "" {
		rec.Method = method
	}
	if rec.Amount <= 0 {
		rec.Amount = boundAmount(gs.Amount, declared)
	}
	return rec
}

// boundAmount prefers an authoritative amount over the declared one.
func boundAmount(authoritative, declared float64) float64 {
	if authoritative > 0 {
		return authoritative
	}
	return declared
}

func readRecord(ctx context.Context, store interfaces.IPaymentStatusStore, transactionID string) entities.PaymentRecord {
	if store == nil {
		return entities.PaymentRecord{}
	}
	rec, err := store.Get(ctx, transactionID)
	if err != nil {
		log.Printf("[payment][usecase] status store read failed transaction_id=%s err=%v", transactionID, err)
		return entities.PaymentRecord{}
	}
	return rec
}

func writeRecord(ctx context.Context, store interfaces.IPaymentStatusStore, rec entities.PaymentRecord) bool {
	if store == nil {
		return false
	}
	if err := store.Set(ctx, rec.TransactionID, rec, entities.PaymentRecordTTL); err != nil {
		log.Printf("[payment][usecase] status store write failed transaction_id=%s err=%v", rec.TransactionID, err)
		return false
	}
	return true
}

// publishApprovedTransition emits payment.approved when a record moves into
// approved as seen by this instance. Failures are logged only.
func publishApprovedTransition(ctx context.Context, events interfaces.IPaymentEventPublisher, prev, next entities.PaymentRecord, now func() time.Time) {
	if events == nil || next.Status != entities.PaymentStatusApproved || prev.Status == entities.PaymentStatusApproved {
		return
	}
	event := entities.PaymentEvent{
		ID:            uuid.NewString(),
		Type:          entities.PaymentEventApproved,
		TransactionID: next.TransactionID,
		Status:        next.Status,
		Method:        next.Method,
		Amount:        next.Amount,
		Source:        next.Source,
		OccurredAt:    now().UTC(),
	}
	if err := events.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Printf("[payment][usecase] approved event publish failed transaction_id=%s err=%v", next.TransactionID, err)
	}
}
