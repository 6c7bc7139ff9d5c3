package request

import (
	"checkout_verifier/internal/domain/entities"
	"errors"
	"strings"
)

var ErrInvalidPixChargeRequest = errors.New("invalid pix charge request")

type PixChargeRequest struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	CPF         string   `json:"cpf"`
}

func (r PixChargeRequest) ToEntity() (entities.PixChargeRequest, error) {
	if r.Amount == nil || strings.TrimSpace(r.Description) == "" {
		return entities.PixChargeRequest{}, ErrInvalidPixChargeRequest
	}
	return entities.PixChargeRequest{
		Amount:      *r.Amount,
		Description: strings.TrimSpace(r.Description),
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Document:    strings.TrimSpace(r.CPF),
	}, nil
}
