package payments

import (
	"bytes"
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultInPagamentosAPIURL = "https://api.inpagamentos.com/v1"
	defaultGatewayTimeout     = 8 * time.Second
	defaultPixExpiration      = 48 * time.Hour
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayChargeFailed  = errors.New("payment gateway charge failed")
)

// InPagamentosGateway talks to the InPagamentos REST API using Basic auth
// (public key : secret key). Amounts on the wire are integer cents.
type InPagamentosGateway struct {
	client     *resty.Client
	configured bool
}

var _ interfaces.IPaymentGateway = (*InPagamentosGateway)(nil)

func NewInPagamentosGateway(baseURL, publicKey, secretKey string, timeout time.Duration) *InPagamentosGateway {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultInPagamentosAPIURL
	}
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	configured := publicKey != "" && secretKey != ""
	if !configured {
		log.Printf("[payment][gateway] inpagamentos credentials missing; gateway lookups disabled")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetBasicAuth(publicKey, secretKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &InPagamentosGateway{client: client, configured: configured}
}

func (g *InPagamentosGateway) ResolveStatus(ctx context.Context, transactionID string) (entities.GatewayStatus, bool) {
	if g == nil || !g.configured {
		return entities.GatewayStatus{}, false
	}
	if transactionID == "" || entities.IsLocalTransactionID(transactionID) {
		return entities.GatewayStatus{}, false
	}

	resp, err := g.client.R().
		SetContext(ctx).
		Get("/transactions/" + url.PathEscape(transactionID))
	if err != nil {
		log.Printf("[payment][gateway] inpagamentos lookup failed transaction_id=%s err=%v", transactionID, err)
		return entities.GatewayStatus{}, false
	}
	if !resp.IsSuccess() {
		log.Printf("[payment][gateway] inpagamentos lookup non-2xx transaction_id=%s http_status=%d", transactionID, resp.StatusCode())
		return entities.GatewayStatus{}, false
	}

	data, ok := decodeGatewayObject(resp.Body())
	if !ok {
		log.Printf("[payment][gateway] inpagamentos lookup returned non-json transaction_id=%s", transactionID)
		return entities.GatewayStatus{}, false
	}

	raw := stringField(data, "status")
	gs := entities.GatewayStatus{
		Status:    entities.NormalizeStatus(raw),
		RawStatus: raw,
	}
	if amount, ok := entities.NormalizeAmount(data["amount"]); ok {
		gs.Amount = amount
	}
	log.Printf("[payment][gateway] inpagamentos lookup success transaction_id=%s raw_status=%s status=%s", transactionID, raw, gs.Status)
	return gs, true
}

func (g *InPagamentosGateway) CreatePixCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	if g == nil || !g.configured {
		return entities.PixCharge{}, ErrPaymentGatewayNotConfigured
	}

	cents := entities.ToMinorUnits(req.Amount)
	payload := map[string]any{
		"amount":        cents,
		"paymentMethod": "pix",
		"description":   req.Description,
		"customer": map[string]any{
			"name":  defaultString(req.Name, "Cliente"),
			"email": defaultString(req.Email, "cliente@email.com"),
			"document": map[string]any{
				"type":   "cpf",
				"number": digitsOnly(defaultString(req.Document, "00000000000")),
			},
		},
		"items": []map[string]any{
			{
				"title":     defaultString(req.Description, "Produto"),
				"quantity":  1,
				"unitPrice": cents,
				"tangible":  true,
			},
		},
	}
	log.Printf("[payment][gateway] inpagamentos pix create start amount_cents=%d", cents)

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/transactions")
	if err != nil {
		log.Printf("[payment][gateway] inpagamentos pix create failed err=%v", err)
		return entities.PixCharge{}, fmt.Errorf("%w: %v", ErrPaymentGatewayChargeFailed, err)
	}
	if !resp.IsSuccess() {
		log.Printf("[payment][gateway] inpagamentos pix create non-2xx http_status=%d", resp.StatusCode())
		return entities.PixCharge{}, fmt.Errorf("%w: http status %d", ErrPaymentGatewayChargeFailed, resp.StatusCode())
	}

	data, ok := decodeGatewayObject(resp.Body())
	if !ok {
		log.Printf("[payment][gateway] inpagamentos pix create returned non-json")
		return entities.PixCharge{}, fmt.Errorf("%w: response is not json", ErrPaymentGatewayChargeFailed)
	}

	qr := extractPixCode(data)
	if qr == "" {
		log.Printf("[payment][gateway] inpagamentos pix create missing qr code keys=%v", objectKeys(data))
		return entities.PixCharge{}, fmt.Errorf("%w: no pix code in response", ErrPaymentGatewayChargeFailed)
	}

	charge := entities.PixCharge{
		TransactionID: firstNonEmpty(stringField(data, "id"), stringField(data, "transaction_id")),
		QRCode:        qr,
		Status:        defaultString(stringField(data, "status"), "waiting_payment"),
		ExpiresAt:     time.Now().UTC().Add(defaultPixExpiration),
		Provider:      "inpagamentos",
	}
	pix, _ := data["pix"].(map[string]any)
	if exp := firstNonEmpty(stringField(pix, "expirationDate"), stringField(data, "expirationDate")); exp != "" {
		if t, err := time.Parse(time.RFC3339, exp); err == nil {
			charge.ExpiresAt = t
		}
	}
	if charge.TransactionID == "" {
		return entities.PixCharge{}, fmt.Errorf("%w: no transaction id in response", ErrPaymentGatewayChargeFailed)
	}
	log.Printf("[payment][gateway] inpagamentos pix create success transaction_id=%s status=%s", charge.TransactionID, charge.Status)
	return charge, nil
}

// decodeGatewayObject parses a JSON object and unwraps a nested "data" object
// when present. The gateway answers in both shapes.
func decodeGatewayObject(body []byte) (map[string]any, bool) {
	var root map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&root); err != nil || root == nil {
		return nil, false
	}
	if data, ok := root["data"].(map[string]any); ok {
		return data, true
	}
	return root, true
}

// pixCodeRules lists where the "copia e cola" payload may live, in order.
var pixCodeRules = []struct {
	nested string
	key    string
}{
	{nested: "pix", key: "qrcode"},
	{nested: "pix", key: "qrCode"},
	{nested: "pix", key: "emv"},
	{key: "qr_code"},
	{key: "qrcode"},
	{key: "emv"},
	{key: "pix_code"},
	{key: "brcode"},
	{key: "pixCopiaECola"},
}

func extractPixCode(data map[string]any) string {
	for _, rule := range pixCodeRules {
		src := data
		if rule.nested != "" {
			src, _ = data[rule.nested].(map[string]any)
		}
		if v := stringField(src, rule.key); v != "" {
			return v
		}
	}
	return ""
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}

func objectKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
