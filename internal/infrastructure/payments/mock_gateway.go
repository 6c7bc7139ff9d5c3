package payments

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"log"
	"strconv"
	"time"
)

// MockGateway approves every non-local transaction and opens charges without
// a provider. Development only.
type MockGateway struct {
	pix *LocalPixGenerator
	now func() time.Time
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(pix *LocalPixGenerator) *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{pix: pix, now: time.Now}
}

func (g *MockGateway) ResolveStatus(_ context.Context, transactionID string) (entities.GatewayStatus, bool) {
	if transactionID == "" || entities.IsLocalTransactionID(transactionID) {
		return entities.GatewayStatus{}, false
	}
	log.Printf("[payment][gateway] mock lookup transaction_id=%s provider_status=approved", transactionID)
	return entities.GatewayStatus{Status: entities.PaymentStatusApproved, RawStatus: "approved"}, true
}

func (g *MockGateway) CreatePixCharge(_ context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	if req.Amount <= 0 {
		return entities.PixCharge{}, ErrInvalidPixAmount
	}
	now := g.now().UTC()
	id := "MOCK" + strconv.FormatInt(now.UnixNano(), 10)

	key, name, city := "mock@example.com", "MOCK", "SAO PAULO"
	if g.pix != nil && g.pix.key != "" {
		key, name, city = g.pix.key, g.pix.name, g.pix.city
	}
	qr := BuildPixBRCode(key, name, city, entities.FormatAmount(req.Amount), truncate(id, maxPixTxID))

	log.Printf("[payment][gateway] mock pix create success transaction_id=%s", id)
	return entities.PixCharge{
		TransactionID: id,
		QRCode:        qr,
		Status:        "waiting_payment",
		ExpiresAt:     now.Add(localPixExpiration),
		Provider:      "mock",
	}, nil
}
