package repository

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	paymentKeyPrefix      = "pay:tx:"
	defaultKVStoreTimeout = 5 * time.Second
)

var ErrKVStoreNotConfigured = errors.New("kv store not configured")

// kvCommandResponse is the Upstash REST envelope: {"result": ...} on success,
// {"error": "..."} on failure.
type kvCommandResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// PaymentStatusKVRepository persists records in a Redis-compatible key-value
// service reachable over HTTP (Upstash REST API).
//
// Commands are POSTed as JSON arrays to the base URL, e.g.
// ["SET", "pay:tx:123", "<json>", "EX", "172800"]. The key TTL is the record
// retention.

type PaymentStatusKVRepository struct {
	client *resty.Client
}

var _ interfaces.IPaymentStatusStore = (*PaymentStatusKVRepository)(nil)

func NewPaymentStatusKVRepository(baseURL, token string, timeout time.Duration) (*PaymentStatusKVRepository, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || strings.TrimSpace(token) == "" {
		return nil, ErrKVStoreNotConfigured
	}
	if timeout <= 0 {
		timeout = defaultKVStoreTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json")

	return &PaymentStatusKVRepository{client: client}, nil
}

func (r *PaymentStatusKVRepository) Get(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	res, err := r.command(ctx, "GET", paymentKey(transactionID))
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(res) == 0 || string(res) == "null" {
		return entities.PaymentRecord{}, nil
	}

	// The stored value is a JSON document held as a Redis string.
	var stored string
	if err := json.Unmarshal(res, &stored); err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("kv get %s: unexpected result: %w", transactionID, err)
	}
	var rec entities.PaymentRecord
	if err := json.Unmarshal([]byte(stored), &rec); err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("kv get %s: decode record: %w", transactionID, err)
	}
	if rec.TransactionID == "" {
		rec.TransactionID = transactionID
	}
	return rec, nil
}

func (r *PaymentStatusKVRepository) Set(ctx context.Context, transactionID string, record entities.PaymentRecord, ttl time.Duration) error {
	record.TransactionID = transactionID
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("kv set %s: encode record: %w", transactionID, err)
	}

	args := []string{"SET", paymentKey(transactionID), string(b)}
	if secs := int64(ttl / time.Second); secs > 0 {
		args = append(args, "EX", strconv.FormatInt(secs, 10))
	}
	_, err = r.command(ctx, args...)
	return err
}

func (r *PaymentStatusKVRepository) command(ctx context.Context, args ...string) (json.RawMessage, error) {
	var out kvCommandResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(args).
		SetResult(&out).
		SetError(&out).
		Post("/")
	if err != nil {
		return nil, fmt.Errorf("kv %s: %w", args[0], err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("kv %s: status %d: %s", args[0], resp.StatusCode(), out.Error)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("kv %s: %s", args[0], out.Error)
	}
	return out.Result, nil
}

func paymentKey(transactionID string) string {
	return paymentKeyPrefix + transactionID
}
