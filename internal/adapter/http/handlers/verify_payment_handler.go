package handlers

import (
	request "checkout_verifier/internal/adapter/http/dto/request"
	response "checkout_verifier/internal/adapter/http/dto/response"
	"checkout_verifier/internal/usecase"
	"checkout_verifier/pkg"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type VerifyPaymentHandler struct {
	usecase usecase.IVerificationUseCase
}

func NewVerifyPaymentHandler(uc usecase.IVerificationUseCase) *VerifyPaymentHandler {
	return &VerifyPaymentHandler{usecase: uc}
}

// VerifyPayment godoc
// @Summary      Verify a declared payment
// @Description  Returns a signed access token only when the payment is confirmed approved.
// @Tags         verify
// @Accept       json
// @Produce      json
// @Param        request  body  request.VerifyPaymentRequest  true  "Payment declaration"
// @Success      200  {object}  response.VerifyPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /verify-payment [post]
func (h *VerifyPaymentHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[verify][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("[verify][handler] invalid request transaction_id=%q", req.TransactionID)
		appErr := mapVerifyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Verify(c.Request.Context(), req.TransactionID, req.Method, *req.Amount)
	if err != nil {
		log.Printf("[verify][handler] verify failed transaction_id=%s err=%v", req.TransactionID, err)
		appErr := mapVerifyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVerificationResult(res))
}

// ResolveToken godoc
// @Summary      Resolve a confirmation access token
// @Description  Validates the token and returns the freshest known status. Invalid tokens get {"valid":false} only.
// @Tags         verify
// @Produce      json
// @Param        token  query  string  true  "Access token"
// @Success      200  {object}  response.TokenResolutionResponse
// @Failure      400  {object}  response.TokenResolutionResponse
// @Failure      403  {object}  response.TokenResolutionResponse
// @Router       /verify-payment [get]
func (h *VerifyPaymentHandler) ResolveToken(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		c.JSON(http.StatusBadRequest, response.DeniedTokenResolution())
		return
	}

	res, err := h.usecase.ResolveToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			c.JSON(http.StatusForbidden, response.DeniedTokenResolution())
			return
		}
		log.Printf("[verify][handler] resolve failed err=%v", err)
		appErr := mapVerifyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTokenResolution(res))
}

func mapVerifyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidVerifyPaymentRequest), errors.Is(err, usecase.ErrInvalidVerifyRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid token", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
