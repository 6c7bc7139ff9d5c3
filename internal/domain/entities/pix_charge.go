package entities

import "time"

// PixChargeRequest is what the checkout sends to open a PIX charge.
type PixChargeRequest struct {
	Amount      float64
	Description string
	Name        string
	Email       string
	Document    string
}

// PixCharge is an open PIX charge. QRCode holds the EMV "copia e cola"
// payload; rendering it as an image is the client's job.
type PixCharge struct {
	TransactionID string
	QRCode        string
	Status        string
	ExpiresAt     time.Time
	Provider      string
}

const (
	PixProviderLocal = "local"
)
