package extract

import (
	"math"

	"rfp-management-api/internal/entity"
)

// Delivery days assumed when neither the proposal nor the RFP states any,
// biasing the score downward for unknowns.
const defaultDeliveryDays = 90

// Score ranks a proposal against the RFP it answers: lower price and faster
// delivery raise the score, each warranty month adds a flat bonus. A missing
// price — and, deliberately, a price of exactly zero — yields 0.0. The rfp
// may be nil when the proposal was never linked to one.
//
// The result is rounded to two decimals, half away from zero.
func Score(proposal *ProposalFields, rfp *entity.Rfp) float64 {
	if proposal == nil || proposal.TotalPrice == nil || *proposal.TotalPrice == 0 {
		return 0.0
	}

	priceScore := math.Max(0.0, 1000000.0/(*proposal.TotalPrice+1.0))

	days := defaultDeliveryDays
	switch {
	case proposal.DeliveryDays != nil:
		days = *proposal.DeliveryDays
	case rfp != nil && rfp.DeliveryDays != nil:
		days = *rfp.DeliveryDays
	}
	deliveryScore := math.Max(0.0, 100.0/(float64(days)+1.0))

	warranty := 0
	if proposal.WarrantyMonths != nil {
		warranty = *proposal.WarrantyMonths
	}

	return math.Round((priceScore+deliveryScore+float64(warranty)*2.0)*100) / 100
}
