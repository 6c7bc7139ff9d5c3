package payments

import (
	"checkout_verifier/internal/domain/entities"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMercadoPagoAPI struct {
	getResp   *payment.Response
	getErr    error
	getIDs    []int
	createReq payment.Request
	createErr error
}

func (f *fakeMercadoPagoAPI) Create(_ context.Context, request payment.Request) (*payment.Response, error) {
	f.createReq = request
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &payment.Response{ID: 77, Status: "pending"}, nil
}

func (f *fakeMercadoPagoAPI) Get(_ context.Context, id int) (*payment.Response, error) {
	f.getIDs = append(f.getIDs, id)
	return f.getResp, f.getErr
}

func TestMercadoPagoGateway_ResolveStatus(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		api := &fakeMercadoPagoAPI{getResp: &payment.Response{ID: 123, Status: "approved"}}
		gw := newMercadoPagoGateway(api, time.Second)

		got, ok := gw.ResolveStatus(context.Background(), "123")
		require.True(t, ok)
		assert.Equal(t, entities.PaymentStatusApproved, got.Status)
		assert.Equal(t, "approved", got.RawStatus)
		assert.Equal(t, []int{123}, api.getIDs)
	})

	t.Run("cancelled maps to refused", func(t *testing.T) {
		api := &fakeMercadoPagoAPI{getResp: &payment.Response{ID: 9, Status: "cancelled"}}
		got, ok := newMercadoPagoGateway(api, time.Second).ResolveStatus(context.Background(), "9")
		require.True(t, ok)
		assert.Equal(t, entities.PaymentStatusRefused, got.Status)
	})

	t.Run("sdk error", func(t *testing.T) {
		api := &fakeMercadoPagoAPI{getErr: errors.New("502")}
		_, ok := newMercadoPagoGateway(api, time.Second).ResolveStatus(context.Background(), "9")
		assert.False(t, ok)
	})

	t.Run("non numeric and local ids skip the sdk", func(t *testing.T) {
		api := &fakeMercadoPagoAPI{}
		gw := newMercadoPagoGateway(api, time.Second)
		_, ok := gw.ResolveStatus(context.Background(), "TX9")
		assert.False(t, ok)
		_, ok = gw.ResolveStatus(context.Background(), "LOCAL_123")
		assert.False(t, ok)
		assert.Empty(t, api.getIDs)
	})
}

func TestMercadoPagoGateway_CreatePixCharge(t *testing.T) {
	t.Run("request mapping", func(t *testing.T) {
		api := &fakeMercadoPagoAPI{}
		gw := newMercadoPagoGateway(api, time.Second)

		_, err := gw.CreatePixCharge(context.Background(), entities.PixChargeRequest{Amount: 47.9, Email: "a@b.com"})
		// The fake response carries no point_of_interaction.
		assert.ErrorIs(t, err, ErrPaymentGatewayChargeFailed)

		raw, err := json.Marshal(api.createReq)
		require.NoError(t, err)
		var sent map[string]any
		require.NoError(t, json.Unmarshal(raw, &sent))
		assert.Equal(t, "pix", sent["payment_method_id"])
		assert.Equal(t, 47.9, sent["transaction_amount"])
	})

	t.Run("sdk error", func(t *testing.T) {
		api := &fakeMercadoPagoAPI{createErr: errors.New("boom")}
		_, err := newMercadoPagoGateway(api, time.Second).CreatePixCharge(context.Background(), entities.PixChargeRequest{Amount: 1})
		assert.ErrorIs(t, err, ErrPaymentGatewayChargeFailed)
	})
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", time.Second)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}
