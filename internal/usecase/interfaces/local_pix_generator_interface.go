package interfaces

import "checkout_verifier/internal/domain/entities"

// ILocalPixGenerator builds an offline PIX charge when no gateway is usable.
type ILocalPixGenerator interface {
	Generate(req entities.PixChargeRequest) (entities.PixCharge, error)
}
