package usecase

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidPixRequest = errors.New("invalid pix request")
	ErrPixUnavailable    = errors.New("pix charge unavailable")
)

// IPixUseCase opens PIX charges for the checkout.
type IPixUseCase interface {
	CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error)
}

type PixUseCase struct {
	gateway interfaces.IPixChargeGateway
	local   interfaces.ILocalPixGenerator
	store   interfaces.IPaymentStatusStore
	now     func() time.Time
}

var _ IPixUseCase = (*PixUseCase)(nil)

func NewPixUseCase(gateway interfaces.IPixChargeGateway, local interfaces.ILocalPixGenerator, store interfaces.IPaymentStatusStore) *PixUseCase {
	return &PixUseCase{gateway: gateway, local: local, store: store, now: time.Now}
}

// CreateCharge asks the gateway first and falls back to a locally generated
// BR Code. The new transaction is recorded as pending unless a status for it
// already arrived.
func (u *PixUseCase) CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	req.Description = strings.TrimSpace(req.Description)
	log.Printf("[pix][usecase] create start amount=%s", entities.FormatAmount(req.Amount))
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 || req.Description == "" {
		log.Printf("[pix][usecase] invalid request")
		return entities.PixCharge{}, ErrInvalidPixRequest
	}

	charge, err := u.createOnGateway(ctx, req)
	if err != nil {
		log.Printf("[pix][usecase] gateway charge unavailable; using local fallback err=%v", err)
		if u.local == nil {
			return entities.PixCharge{}, ErrPixUnavailable
		}
		charge, err = u.local.Generate(req)
		if err != nil {
			log.Printf("[pix][usecase] local fallback failed err=%v", err)
			return entities.PixCharge{}, ErrPixUnavailable
		}
	}

	if existing := readRecord(ctx, u.store, charge.TransactionID); existing.IsEmpty() {
		writeRecord(ctx, u.store, entities.PaymentRecord{
			TransactionID: charge.TransactionID,
			Status:        entities.PaymentStatusPending,
			Method:        "pix",
			Amount:        req.Amount,
			UpdatedAt:     u.now().UTC(),
			RawStatus:     charge.Status,
			Source:        entities.RecordSourceCharge,
		})
	}

	log.Printf("[pix][usecase] create success transaction_id=%s provider=%s", charge.TransactionID, charge.Provider)
	return charge, nil
}

func (u *PixUseCase) createOnGateway(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	if u.gateway == nil {
		return entities.PixCharge{}, errors.New("payment gateway not configured")
	}
	return u.gateway.CreatePixCharge(ctx, req)
}
