package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrMalformedWebhookPayload = errors.New("malformed webhook payload")

// WebhookNotification is what a gateway push tells us, before normalization.
type WebhookNotification struct {
	TransactionID string
	RawStatus     string
	Event         string
	Method        string
	Amount        float64
	HasAmount     bool
}

// WebhookReceipt is returned to the gateway once a notification is handled.
type WebhookReceipt struct {
	TransactionID string
	Status        PaymentStatus
	ProcessedAt   time.Time
}

// Field paths are tried in order; the first non-empty value wins. Gateways
// send the same notification either flat or nested under "data". In envelope
// payloads the root "id" names the event, so it is the last resort.
var (
	webhookTransactionIDPaths = [][]string{
		{"data", "id"}, {"data", "transaction_id"}, {"data", "transactionId"},
		{"transaction_id"}, {"transactionId"}, {"data", "object", "id"}, {"id"},
	}
	webhookStatusPaths = [][]string{
		{"data", "status"}, {"status"}, {"data", "object", "status"},
	}
	webhookEventPaths = [][]string{
		{"event"}, {"type"}, {"event_type"}, {"data", "event"},
	}
	webhookMethodPaths = [][]string{
		{"data", "paymentMethod"}, {"data", "payment_method"}, {"paymentMethod"}, {"payment_method"}, {"method"},
	}
	webhookAmountPaths = [][]string{
		{"data", "amount"}, {"amount"}, {"data", "paidAmount"}, {"data", "transaction_amount"}, {"transaction_amount"},
	}
)

// ParseWebhookNotification decodes a raw webhook body. Only a body that is not
// a JSON object is an error; missing fields are left empty.
func ParseWebhookNotification(body []byte) (WebhookNotification, error) {
	var root map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&root); err != nil || root == nil {
		return WebhookNotification{}, ErrMalformedWebhookPayload
	}

	n := WebhookNotification{
		TransactionID: firstText(root, webhookTransactionIDPaths),
		RawStatus:     firstText(root, webhookStatusPaths),
		Event:         firstText(root, webhookEventPaths),
		Method:        firstText(root, webhookMethodPaths),
	}
	for _, path := range webhookAmountPaths {
		if amount, ok := NormalizeAmount(lookupPath(root, path)); ok {
			n.Amount, n.HasAmount = amount, true
			break
		}
	}
	return n, nil
}

func firstText(root map[string]any, paths [][]string) string {
	for _, path := range paths {
		switch v := lookupPath(root, path).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func lookupPath(root map[string]any, path []string) any {
	var cur any = root
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}
