package payments

import (
	"checkout_verifier/internal/domain/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewGateway(t *testing.T) {
	cases := []struct {
		name string
		opts GatewayOptions
		want any
	}{
		{name: "mock", opts: GatewayOptions{Mock: true}, want: &MockGateway{}},
		{name: "mock refused in production", opts: GatewayOptions{Mock: true, Production: true}, want: DisabledGateway{}},
		{name: "inpagamentos", opts: GatewayOptions{InPagamentosPublicKey: "pk", InPagamentosSecretKey: "sk"}, want: &InPagamentosGateway{}},
		{name: "inpagamentos without keys", opts: GatewayOptions{Provider: "inpagamentos"}, want: DisabledGateway{}},
		{name: "mercadopago", opts: GatewayOptions{Provider: "MercadoPago", MercadoPagoAccessToken: "TEST-token"}, want: &MercadoPagoGateway{}},
		{name: "mercadopago without token", opts: GatewayOptions{Provider: "mercadopago"}, want: DisabledGateway{}},
		{name: "unknown provider", opts: GatewayOptions{Provider: "stripe"}, want: DisabledGateway{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.opts.Timeout = time.Second
			assert.IsType(t, tc.want, NewGateway(tc.opts))
		})
	}
}

func TestMockGateway(t *testing.T) {
	gw := NewMockGateway(nil)

	st, ok := gw.ResolveStatus(context.Background(), "TX1")
	assert.True(t, ok)
	assert.Equal(t, entities.PaymentStatusApproved, st.Status)

	_, ok = gw.ResolveStatus(context.Background(), "PIX_1")
	assert.False(t, ok)

	charge, err := gw.CreatePixCharge(context.Background(), entities.PixChargeRequest{Amount: 10})
	assert.NoError(t, err)
	assert.Equal(t, "mock", charge.Provider)
	assert.NotEmpty(t, charge.QRCode)
}

func TestDisabledGateway(t *testing.T) {
	_, ok := DisabledGateway{}.ResolveStatus(context.Background(), "TX1")
	assert.False(t, ok)
	_, err := DisabledGateway{}.CreatePixCharge(context.Background(), entities.PixChargeRequest{Amount: 10})
	assert.ErrorIs(t, err, ErrPaymentGatewayNotConfigured)
}
