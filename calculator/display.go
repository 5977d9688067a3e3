package calculator

import "fmt"

// Display holds profile and result values converted into the units the
// user entered them in. It is always derived from the metric values on
// read; nothing is stored in two unit systems.
type Display struct {
	Units         UnitSystem        `json:"units"`
	Height        string            `json:"height"`
	WeightUnit    string            `json:"weight_unit"`
	CurrentWeight float64           `json:"current_weight"`
	TargetWeight  float64           `json:"target_weight"`
	WeeklyChange  float64           `json:"weekly_change"`
	Projection    []ProjectionPoint `json:"projected_data"`
}

// DisplayValues converts p and r for presentation in units. Imperial
// weights are rounded to one decimal; heights use feet and inches.
// WeeklyChange is the expected weight lost per week (negative when gaining).
func DisplayValues(p UserProfile, r Result, units UnitSystem) Display {
	weeklyKg := r.WeeklyDeficit / caloriesPerKg
	projection := make([]ProjectionPoint, len(r.Projection))
	copy(projection, r.Projection)

	if units != Imperial {
		return Display{
			Units:         Metric,
			Height:        fmt.Sprintf("%.0f cm", p.HeightCm),
			WeightUnit:    "kg",
			CurrentWeight: p.CurrentWeightKg,
			TargetWeight:  p.TargetWeightKg,
			WeeklyChange:  roundTo2(weeklyKg),
			Projection:    projection,
		}
	}

	feet, inches := CmToFeet(p.HeightCm)
	for i := range projection {
		projection[i].WeightKg = roundTo1(KgToLbs(projection[i].WeightKg))
	}
	return Display{
		Units:         Imperial,
		Height:        fmt.Sprintf("%d'%d\"", feet, inches),
		WeightUnit:    "lbs",
		CurrentWeight: roundTo1(KgToLbs(p.CurrentWeightKg)),
		TargetWeight:  roundTo1(KgToLbs(p.TargetWeightKg)),
		WeeklyChange:  roundTo2(KgToLbs(weeklyKg)),
		Projection:    projection,
	}
}
