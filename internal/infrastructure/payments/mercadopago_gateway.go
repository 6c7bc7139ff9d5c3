package payments

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// mercadoPagoPaymentAPI is the subset of payment.Client used here.
type mercadoPagoPaymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client  mercadoPagoPaymentAPI
	timeout time.Duration
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, timeout time.Duration) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGateway(payment.NewClient(cfg), timeout), nil
}

func newMercadoPagoGateway(client mercadoPagoPaymentAPI, timeout time.Duration) *MercadoPagoGateway {
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	return &MercadoPagoGateway{client: client, timeout: timeout}
}

// ResolveStatus looks a payment up by its numeric Mercado Pago id.
func (g *MercadoPagoGateway) ResolveStatus(ctx context.Context, transactionID string) (entities.GatewayStatus, bool) {
	if g == nil || g.client == nil {
		return entities.GatewayStatus{}, false
	}
	if entities.IsLocalTransactionID(transactionID) {
		return entities.GatewayStatus{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(transactionID))
	if err != nil {
		log.Printf("[payment][gateway] mercadopago lookup skipped non-numeric transaction_id=%s", transactionID)
		return entities.GatewayStatus{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago lookup failed transaction_id=%s err=%v", transactionID, err)
		return entities.GatewayStatus{}, false
	}
	if resp == nil {
		return entities.GatewayStatus{}, false
	}

	gs := entities.GatewayStatus{
		Status:    entities.NormalizeStatus(resp.Status),
		RawStatus: resp.Status,
	}
	// transaction_amount is already in major units.
	if fields, err := responseFields(resp); err == nil {
		if amount, ok := fields["transaction_amount"].(float64); ok {
			gs.Amount = amount
		}
	}
	log.Printf("[payment][gateway] mercadopago lookup success transaction_id=%s raw_status=%s status=%s", transactionID, resp.Status, gs.Status)
	return gs, true
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	if g == nil || g.client == nil {
		return entities.PixCharge{}, ErrPaymentGatewayNotConfigured
	}

	// Built as JSON so the SDK request struct tags decide the field mapping.
	body := map[string]any{
		"transaction_amount": req.Amount,
		"description":        defaultString(req.Description, "Pedido"),
		"payment_method_id":  "pix",
		"payer": map[string]any{
			"email":      defaultString(req.Email, "cliente@email.com"),
			"first_name": defaultString(req.Name, "Cliente"),
			"identification": map[string]any{
				"type":   "CPF",
				"number": digitsOnly(defaultString(req.Document, "00000000000")),
			},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return entities.PixCharge{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(raw, &mpReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.PixCharge{}, err
	}
	log.Printf("[payment][gateway] mercadopago pix create start amount=%s", entities.FormatAmount(req.Amount))

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.PixCharge{}, fmt.Errorf("%w: %v", ErrPaymentGatewayChargeFailed, err)
	}
	if resp == nil {
		return entities.PixCharge{}, fmt.Errorf("%w: empty response", ErrPaymentGatewayChargeFailed)
	}

	fields, err := responseFields(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.PixCharge{}, err
	}
	poi, _ := fields["point_of_interaction"].(map[string]any)
	txData, _ := poi["transaction_data"].(map[string]any)
	qr := stringField(txData, "qr_code")
	if qr == "" {
		log.Printf("[payment][gateway] mercadopago pix create missing qr code provider_payment_id=%d", resp.ID)
		return entities.PixCharge{}, fmt.Errorf("%w: no pix code in response", ErrPaymentGatewayChargeFailed)
	}

	charge := entities.PixCharge{
		TransactionID: strconv.Itoa(resp.ID),
		QRCode:        qr,
		Status:        resp.Status,
		ExpiresAt:     time.Now().UTC().Add(defaultPixExpiration),
		Provider:      "mercadopago",
	}
	if exp := stringField(fields, "date_of_expiration"); exp != "" {
		if t, err := time.Parse(time.RFC3339, exp); err == nil {
			charge.ExpiresAt = t
		}
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return charge, nil
}

func responseFields(resp *payment.Response) (map[string]any, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
