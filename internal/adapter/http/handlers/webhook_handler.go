package handlers

import (
	response "checkout_verifier/internal/adapter/http/dto/response"
	"checkout_verifier/internal/usecase"
	"checkout_verifier/pkg"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// signatureHeaders are checked in order; gateways disagree on the name.
var signatureHeaders = []string{
	"X-Signature",
	"X-Webhook-Signature",
	"X-Hub-Signature-256",
	"X-Inpagamentos-Signature",
	"X-Postback-Signature",
}

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// ReceiveWebhook godoc
// @Summary      Receive a gateway webhook
// @Description  Authenticates the raw body with HMAC-SHA256 and records the normalized status.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        X-Signature  header  string  false  "hex HMAC-SHA256 of the body"
// @Success      200  {object}  response.WebhookReceiptResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhook [post]
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	receipt, err := h.usecase.Ingest(c.Request.Context(), body, signatureFromHeaders(c.Request.Header))
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookReceipt(receipt))
}

// GetStatus godoc
// @Summary      Poll a transaction status
// @Tags         webhook
// @Produce      json
// @Param        transaction_id  query  string  true  "Transaction id"
// @Success      200  {object}  response.PaymentStatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /webhook [get]
func (h *WebhookHandler) GetStatus(c *gin.Context) {
	transactionID := c.Query("transaction_id")

	rec, err := h.usecase.GetStatus(c.Request.Context(), transactionID)
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func signatureFromHeaders(header http.Header) string {
	for _, name := range signatureHeaders {
		if v := strings.TrimSpace(header.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
