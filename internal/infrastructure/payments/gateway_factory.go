package payments

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"log"
	"strings"
	"time"
)

const (
	ProviderInPagamentos = "inpagamentos"
	ProviderMercadoPago  = "mercadopago"
)

type GatewayOptions struct {
	Provider               string
	Mock                   bool
	Production             bool
	InPagamentosURL        string
	InPagamentosPublicKey  string
	InPagamentosSecretKey  string
	MercadoPagoAccessToken string
	Timeout                time.Duration
	LocalPix               *LocalPixGenerator
}

// NewGateway picks the provider adapter. A provider that cannot be built
// yields a DisabledGateway so verification degrades to store-only decisions.
func NewGateway(opts GatewayOptions) interfaces.IPaymentGateway {
	if opts.Mock {
		if opts.Production {
			log.Printf("[payment][gateway] mock mode ignored in production")
		} else {
			return NewMockGateway(opts.LocalPix)
		}
	}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case ProviderMercadoPago:
		gw, err := NewMercadoPagoGateway(opts.MercadoPagoAccessToken, opts.Timeout)
		if err != nil {
			log.Printf("[payment][gateway] mercadopago disabled err=%v", err)
			return DisabledGateway{}
		}
		return gw
	case "", ProviderInPagamentos:
		if opts.InPagamentosPublicKey == "" || opts.InPagamentosSecretKey == "" {
			log.Printf("[payment][gateway] inpagamentos credentials missing; gateway disabled")
			return DisabledGateway{}
		}
		return NewInPagamentosGateway(opts.InPagamentosURL, opts.InPagamentosPublicKey, opts.InPagamentosSecretKey, opts.Timeout)
	default:
		log.Printf("[payment][gateway] unknown provider=%s; gateway disabled", opts.Provider)
		return DisabledGateway{}
	}
}

// DisabledGateway never resolves and never charges.
type DisabledGateway struct{}

func (DisabledGateway) ResolveStatus(context.Context, string) (entities.GatewayStatus, bool) {
	return entities.GatewayStatus{}, false
}

func (DisabledGateway) CreatePixCharge(context.Context, entities.PixChargeRequest) (entities.PixCharge, error) {
	return entities.PixCharge{}, ErrPaymentGatewayNotConfigured
}
