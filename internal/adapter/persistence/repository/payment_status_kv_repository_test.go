package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"checkout_verifier/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstash emulates the Upstash REST command endpoint for GET and SET.
type fakeUpstash struct {
	mu       sync.Mutex
	values   map[string]string
	lastArgs []string
	token    string
	fail     bool
}

func (f *fakeUpstash) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Header.Get("Authorization") != "Bearer "+f.token {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
		return
	}
	if f.fail {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
		return
	}

	var args []string
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil || len(args) < 2 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad command"}`))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastArgs = args
	switch args[0] {
	case "GET":
		v, ok := f.values[args[1]]
		if !ok {
			_, _ = w.Write([]byte(`{"result":null}`))
			return
		}
		b, _ := json.Marshal(map[string]string{"result": v})
		_, _ = w.Write(b)
	case "SET":
		f.values[args[1]] = args[2]
		_, _ = w.Write([]byte(`{"result":"OK"}`))
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unsupported"}`))
	}
}

func TestNewPaymentStatusKVRepository_RequiresConfig(t *testing.T) {
	_, err := NewPaymentStatusKVRepository("", "token", 0)
	assert.ErrorIs(t, err, ErrKVStoreNotConfigured)
	_, err = NewPaymentStatusKVRepository("http://kv", " ", 0)
	assert.ErrorIs(t, err, ErrKVStoreNotConfigured)
}

func TestPaymentStatusKVRepository_SetGet(t *testing.T) {
	fake := &fakeUpstash{values: map[string]string{}, token: "kv-token"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	repo, err := NewPaymentStatusKVRepository(srv.URL+"/", "kv-token", time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := repo.Get(ctx, "TX1")
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty())

	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Set(ctx, "TX1", entities.PaymentRecord{
		Status:    entities.PaymentStatusRefused,
		Method:    "pix",
		Amount:    47.9,
		UpdatedAt: updated,
		RawStatus: "refused",
		Source:    entities.RecordSourceWebhook,
	}, entities.PaymentRecordTTL))

	fake.mu.Lock()
	assert.Equal(t, []string{"SET", "pay:tx:TX1", fake.lastArgs[2], "EX", "172800"}, fake.lastArgs)
	fake.mu.Unlock()

	rec, err = repo.Get(ctx, "TX1")
	require.NoError(t, err)
	assert.Equal(t, "TX1", rec.TransactionID)
	assert.Equal(t, entities.PaymentStatusRefused, rec.Status)
	assert.Equal(t, 47.9, rec.Amount)
	assert.True(t, rec.UpdatedAt.Equal(updated))
	assert.Equal(t, entities.RecordSourceWebhook, rec.Source)
}

func TestPaymentStatusKVRepository_Errors(t *testing.T) {
	fake := &fakeUpstash{values: map[string]string{}, token: "kv-token", fail: true}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	ctx := context.Background()

	repo, err := NewPaymentStatusKVRepository(srv.URL, "kv-token", time.Second)
	require.NoError(t, err)
	_, err = repo.Get(ctx, "TX1")
	assert.Error(t, err)
	assert.Error(t, repo.Set(ctx, "TX1", entities.PaymentRecord{}, time.Minute))

	unauthorized, err := NewPaymentStatusKVRepository(srv.URL, "wrong", time.Second)
	require.NoError(t, err)
	_, err = unauthorized.Get(ctx, "TX1")
	assert.Error(t, err)
}

func TestPaymentStatusKVRepository_CorruptValue(t *testing.T) {
	fake := &fakeUpstash{values: map[string]string{"pay:tx:TX1": "{not json"}, token: "kv-token"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	repo, err := NewPaymentStatusKVRepository(srv.URL, "kv-token", time.Second)
	require.NoError(t, err)
	_, err = repo.Get(context.Background(), "TX1")
	assert.Error(t, err)
}
