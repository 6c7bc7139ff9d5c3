package response

import (
	"checkout_verifier/internal/domain/entities"
	"time"
)

type PixChargeResponse struct {
	Success        bool      `json:"success"`
	QRCode         string    `json:"qr_code"`
	TransactionID  string    `json:"transaction_id"`
	Status         string    `json:"status"`
	ExpirationDate time.Time `json:"expiration_date"`
	Provider       string    `json:"provider"`
}

func FromPixCharge(c entities.PixCharge) PixChargeResponse {
	return PixChargeResponse{
		Success:        true,
		QRCode:         c.QRCode,
		TransactionID:  c.TransactionID,
		Status:         c.Status,
		ExpirationDate: c.ExpiresAt,
		Provider:       c.Provider,
	}
}
