// Package fees computes the net advance amount from a gross deposit.
package fees

import (
	dErrors "fastlp/pkg/domain-errors"

	"fastlp/internal/advancer/models"
)

// Schedule is the fee configuration applied to every advance: a flat fee plus
// a variable share of the gross amount in basis points.
type Schedule struct {
	Denom       string
	FlatFee     uint64
	VariableBps uint64
}

// Fee returns the total fee charged on gross.
func (s Schedule) Fee(gross uint64) uint64 {
	return s.FlatFee + gross*s.VariableBps/10_000
}

// ComputeAdvanceAmount derives the fee-adjusted amount actually borrowed and
// forwarded. Deterministic and side-effect free. Errors only when the gross
// amount does not clear the fee floor.
func ComputeAdvanceAmount(gross uint64, schedule Schedule) (models.AdvanceAmount, error) {
	fee := schedule.Fee(gross)
	if gross <= fee {
		return models.AdvanceAmount{}, dErrors.Newf(dErrors.CodeValidation,
			"gross amount %d does not clear fee %d", gross, fee)
	}
	return models.AdvanceAmount{Denom: schedule.Denom, Value: gross - fee}, nil
}
