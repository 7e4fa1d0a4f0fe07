package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfp-management-api/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestScore_ReferenceScenario(t *testing.T) {
	proposal := &ProposalFields{
		TotalPrice:     floatPtr(45000),
		DeliveryDays:   intPtr(25),
		WarrantyMonths: intPtr(12),
	}
	rfp := &entity.Rfp{
		Budget:         floatPtr(50000),
		DeliveryDays:   intPtr(30),
		WarrantyMonths: intPtr(12),
	}

	// 1000000/45001 + 100/26 + 12*2, rounded to two decimals.
	assert.Equal(t, 50.07, Score(proposal, rfp))
}

func TestScore_MissingPriceScoresZero(t *testing.T) {
	assert.Equal(t, 0.0, Score(&ProposalFields{}, &entity.Rfp{}))
	assert.Equal(t, 0.0, Score(nil, &entity.Rfp{}))
	assert.Equal(t, 0.0, Score(&ProposalFields{DeliveryDays: intPtr(1), WarrantyMonths: intPtr(36)}, nil))
}

func TestScore_ZeroPriceScoresZero(t *testing.T) {
	// A price of exactly zero is treated the same as no price at all.
	assert.Equal(t, 0.0, Score(&ProposalFields{TotalPrice: floatPtr(0)}, &entity.Rfp{}))
}

func TestScore_LowerPriceScoresHigher(t *testing.T) {
	cheap := &ProposalFields{TotalPrice: floatPtr(40000), DeliveryDays: intPtr(25)}
	pricey := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(25)}

	assert.Greater(t, Score(cheap, nil), Score(pricey, nil))
}

func TestScore_FasterDeliveryScoresHigher(t *testing.T) {
	fast := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(10)}
	slow := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(60)}

	assert.Greater(t, Score(fast, nil), Score(slow, nil))
}

func TestScore_LongerWarrantyScoresHigher(t *testing.T) {
	long := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(25), WarrantyMonths: intPtr(24)}
	short := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(25), WarrantyMonths: intPtr(12)}

	// Each warranty month is worth a flat 2 points.
	assert.InDelta(t, 24.0, Score(long, nil)-Score(short, nil), 0.011)
}

func TestScore_DeliveryFallsBackToRFP(t *testing.T) {
	proposal := &ProposalFields{TotalPrice: floatPtr(45000)}
	rfp := &entity.Rfp{DeliveryDays: intPtr(25)}

	stated := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(25)}

	assert.Equal(t, Score(stated, nil), Score(proposal, rfp))
}

func TestScore_UnknownDeliveryAssumesNinetyDays(t *testing.T) {
	proposal := &ProposalFields{TotalPrice: floatPtr(45000)}
	assumed := &ProposalFields{TotalPrice: floatPtr(45000), DeliveryDays: intPtr(90)}

	assert.Equal(t, Score(assumed, nil), Score(proposal, &entity.Rfp{}))
	assert.Equal(t, Score(assumed, nil), Score(proposal, nil))
}

func TestScore_RoundedToTwoDecimals(t *testing.T) {
	proposal := &ProposalFields{TotalPrice: floatPtr(3), DeliveryDays: intPtr(2)}

	// 1000000/4 + 100/3 = 250033.333...
	score := Score(proposal, nil)
	require.Equal(t, 250033.33, score)
}
