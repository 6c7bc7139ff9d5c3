package interfaces

import (
	"checkout_verifier/internal/domain/entities"
	"context"
)

// IGatewayStatusResolver asks the external gateway for a transaction status.
//
// The boolean is false when the gateway cannot answer: credentials missing,
// a local transaction id, network failure, timeout, non-2xx or a body that is
// not JSON. Callers treat false as "cannot determine", never as refused.
type IGatewayStatusResolver interface {
	ResolveStatus(ctx context.Context, transactionID string) (entities.GatewayStatus, bool)
}

// IPixChargeGateway opens PIX charges on the external gateway.
type IPixChargeGateway interface {
	CreatePixCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error)
}

// IPaymentGateway abstracts external payment providers (InPagamentos, Mercado Pago).
type IPaymentGateway interface {
	IGatewayStatusResolver
	IPixChargeGateway
}
