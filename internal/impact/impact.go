package impact

import (
	"github.com/shopspring/decimal"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// Multipliers for the derived impact figures. Weights are kilograms.
var (
	peoplePerKg = decimal.NewFromInt(4)
	co2PerKg    = decimal.RequireFromString("2.5")
	gramsPerKg  = decimal.NewFromInt(1000)
)

// DonorStats is the impact snapshot shown on the donor dashboard.
type DonorStats struct {
	TotalDonations int             `json:"totalDonations"`
	TotalWeightKg  decimal.Decimal `json:"totalWeight"`
	PeopleHelped   int64           `json:"peopleHelped"`
	CO2SavedKg     decimal.Decimal `json:"co2Saved"`
}

// SeekerStats is the impact snapshot shown on the seeker dashboard.
type SeekerStats struct {
	TotalRequests   int             `json:"totalRequests"`
	TotalReceivedKg decimal.Decimal `json:"totalReceived"`
	PeopleServed    int64           `json:"peopleServed"`
	ActiveRequests  int             `json:"activeRequests"`
}

// ComputeDonorStats derives the donor snapshot from the full donation
// collection. An empty collection yields an all-zero snapshot.
func ComputeDonorStats(donations []models.Donation) DonorStats {
	weight := decimal.Zero
	for _, d := range donations {
		weight = weight.Add(toKilograms(d.Quantity, d.Unit))
	}
	return DonorStats{
		TotalDonations: len(donations),
		TotalWeightKg:  roundWeight(weight),
		PeopleHelped:   weight.Mul(peoplePerKg).Floor().IntPart(),
		CO2SavedKg:     roundWeight(weight.Mul(co2PerKg)),
	}
}

// ComputeSeekerStats derives the seeker snapshot from the full request
// collection. Only completed requests count toward received weight.
func ComputeSeekerStats(requests []models.Request) SeekerStats {
	received := decimal.Zero
	active := 0
	for _, r := range requests {
		if r.Status == enums.RequestStatusCompleted {
			received = received.Add(toKilograms(r.Quantity, r.Unit))
		}
		if r.Status.IsActive() {
			active++
		}
	}
	return SeekerStats{
		TotalRequests:   len(requests),
		TotalReceivedKg: roundWeight(received),
		PeopleServed:    received.Mul(peoplePerKg).Floor().IntPart(),
		ActiveRequests:  active,
	}
}

// toKilograms normalizes a quantity to kilograms. Grams divide by 1000;
// pounds carry their numeric value through unchanged, matching the display
// semantics the dashboards always had. Units are validated at create time so
// only the canonical three ever reach this point.
func toKilograms(quantity decimal.Decimal, unit enums.QuantityUnit) decimal.Decimal {
	if unit == enums.UnitGram {
		return quantity.Div(gramsPerKg)
	}
	return quantity
}

// roundWeight applies the display rounding of one decimal place, half away
// from zero.
func roundWeight(value decimal.Decimal) decimal.Decimal {
	return value.Round(1)
}
