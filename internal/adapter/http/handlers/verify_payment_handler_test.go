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

func newVerifyRouter(h *VerifyPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/verify-payment", h.VerifyPayment)
	r.GET("/v1/verify-payment", h.ResolveToken)
	return r
}

func TestVerifyPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects malformed requests", func(t *testing.T) {
		cases := map[string]string{
			"bad json":        "{",
			"missing method":  `{"transaction_id":"TX1","amount":10}`,
			"missing id":      `{"method":"pix","amount":10}`,
			"missing amount":  `{"transaction_id":"TX1","method":"pix"}`,
			"amount not num":  `{"transaction_id":"TX1","method":"pix","amount":"ten"}`,
			"blank id spaces": `{"transaction_id":"  ","method":"pix","amount":10}`,
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIVerificationUseCase(ctrl)
				r := newVerifyRouter(NewVerifyPaymentHandler(uc))

				req := httptest.NewRequest(http.MethodPost, "/v1/verify-payment", bytes.NewBufferString(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
			})
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), "TX1", "pix", 150.0).Return(entities.VerificationResult{
			Verified:      true,
			Token:         "payload.mac",
			Status:        entities.PaymentStatusApproved,
			TransactionID: "TX1",
			Method:        "pix",
			Amount:        150,
			VerifiedAt:    time.Now(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/verify-payment", bytes.NewBufferString(`{"transaction_id":"TX1","method":"pix","amount":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["verified"] != true || got["token"] != "payload.mac" || got["verified_at"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("denied carries no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), "TX9", "card", 10.0).Return(entities.VerificationResult{
			Status:        entities.PaymentStatusRefused,
			TransactionID: "TX9",
			Method:        "card",
			Amount:        10,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/verify-payment", bytes.NewBufferString(`{"transaction_id":"TX9","method":"card","amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if _, ok := got["token"]; ok {
			t.Fatalf("denied response leaked a token: %s", w.Body.String())
		}
		if got["status"] != "refused" || got["verified"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error is generic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.VerificationResult{}, errors.New("secret detail"))

		req := httptest.NewRequest(http.MethodPost, "/v1/verify-payment", bytes.NewBufferString(`{"transaction_id":"TX1","method":"pix","amount":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("secret detail")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestVerifyPaymentHandler_ResolveToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	denied := `{"valid":false,"verified":false}`

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/verify-payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest || w.Body.String() != denied {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		uc.EXPECT().ResolveToken(gomock.Any(), "bad").Return(entities.TokenResolution{}, usecase.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/verify-payment?token=bad", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden || w.Body.String() != denied {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		uc.EXPECT().ResolveToken(gomock.Any(), "good").Return(entities.TokenResolution{
			Valid:         true,
			TransactionID: "TX1",
			Amount:        150,
			Status:        entities.PaymentStatusApproved,
			Verified:      true,
			UpdatedAt:     time.Now(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/verify-payment?token=good", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["valid"] != true || got["transaction_id"] != "TX1" || got["amount"] != float64(150) || got["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerifyPaymentHandler(uc))

		uc.EXPECT().ResolveToken(gomock.Any(), "x").Return(entities.TokenResolution{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/verify-payment?token=x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
