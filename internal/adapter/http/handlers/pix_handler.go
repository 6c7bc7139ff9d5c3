package handlers

import (
	request "checkout_verifier/internal/adapter/http/dto/request"
	response "checkout_verifier/internal/adapter/http/dto/response"
	"checkout_verifier/internal/usecase"
	"checkout_verifier/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PixHandler struct {
	usecase usecase.IPixUseCase
}

func NewPixHandler(uc usecase.IPixUseCase) *PixHandler {
	return &PixHandler{usecase: uc}
}

// CreatePixCharge godoc
// @Summary      Open a PIX charge
// @Description  Creates the charge on the gateway, falling back to a locally generated BR Code.
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        request  body  request.PixChargeRequest  true  "Charge"
// @Success      200  {object}  response.PixChargeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /pix [post]
func (h *PixHandler) CreatePixCharge(c *gin.Context) {
	var req request.PixChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[pix][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	charge, err := req.ToEntity()
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCharge(c.Request.Context(), charge)
	if err != nil {
		log.Printf("[pix][handler] create failed err=%v", err)
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPixCharge(created))
}

func mapPixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidPixChargeRequest), errors.Is(err, usecase.ErrInvalidPixRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPixUnavailable):
		return pkg.NewDomainErrorSimple("PIX_UNAVAILABLE", "PIX charge unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
