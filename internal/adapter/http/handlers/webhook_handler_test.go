package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout_verifier/internal/adapter/http/handlers/mocks"
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/webhook", h.ReceiveWebhook)
	r.GET("/v1/webhook", h.GetStatus)
	return r
}

func TestWebhookHandler_ReceiveWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"event":"transaction.paid","data":{"id":"TX1","status":"paid"}}`

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		processed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().Ingest(gomock.Any(), []byte(body), "sha256=abc").Return(entities.WebhookReceipt{
			TransactionID: "TX1",
			Status:        entities.PaymentStatusApproved,
			ProcessedAt:   processed,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(body))
		req.Header.Set("X-Hub-Signature-256", "sha256=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["received"] != true || got["transaction_id"] != "TX1" || got["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("first signature header wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), "first").Return(entities.WebhookReceipt{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(body))
		req.Header.Set("X-Postback-Signature", "last")
		req.Header.Set("X-Signature", "first")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), "").Return(entities.WebhookReceipt{}, usecase.ErrInvalidWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.WebhookReceipt{}, usecase.ErrInvalidWebhookPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.WebhookReceipt{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().GetStatus(gomock.Any(), "").Return(entities.PaymentRecord{}, usecase.ErrInvalidTransactionID)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhook", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().GetStatus(gomock.Any(), "TX404").Return(entities.PaymentRecord{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhook?transaction_id=TX404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"status":"pending","verified":false}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().GetStatus(gomock.Any(), "TX1").Return(entities.PaymentRecord{
			TransactionID: "TX1",
			Status:        entities.PaymentStatusApproved,
			Method:        "pix",
			Amount:        150,
			UpdatedAt:     time.Now(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhook?transaction_id=TX1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["verified"] != true || got["status"] != "approved" || got["amount"] != float64(150) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
