package calculator

import (
	"strings"
	"time"
)

// UnitSystem is the measurement system a form was filled in with.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// Form carries raw calculator inputs as a user typed them, in either unit
// system. Only the fields of the selected system are read. Pointer fields
// distinguish "not provided" from zero.
type Form struct {
	Units         UnitSystem `json:"units"`
	Gender        string     `json:"gender"`
	Age           int        `json:"age"`
	ActivityLevel string     `json:"activity_level"`
	GoalType      string     `json:"goal_type"`
	TargetDate    string     `json:"target_date"` // YYYY-MM-DD

	// Metric
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	TargetWeightKg *float64 `json:"target_weight_kg"`
	WeeklyRateKg   *float64 `json:"weekly_rate_kg"`

	// Imperial
	HeightFeet      *float64 `json:"height_feet"`
	HeightInches    *float64 `json:"height_inches"`
	WeightLbs       *float64 `json:"weight_lbs"`
	TargetWeightLbs *float64 `json:"target_weight_lbs"`
	WeeklyRateLbs   *float64 `json:"weekly_rate_lbs"`
}

// Profile normalizes the form into a metric UserProfile and validates it.
// An empty Units value is treated as metric.
func (f Form) Profile() (UserProfile, error) {
	p := UserProfile{
		Gender:        Gender(strings.ToLower(strings.TrimSpace(f.Gender))),
		Age:           f.Age,
		ActivityLevel: ActivityLevel(strings.ToLower(strings.TrimSpace(f.ActivityLevel))),
		GoalType:      GoalType(strings.ToLower(strings.TrimSpace(f.GoalType))),
	}

	switch f.System() {
	case Metric:
		if f.HeightCm == nil {
			return UserProfile{}, invalidField("height_cm", "is required")
		}
		if f.WeightKg == nil {
			return UserProfile{}, invalidField("weight_kg", "is required")
		}
		if f.TargetWeightKg == nil {
			return UserProfile{}, invalidField("target_weight_kg", "is required")
		}
		p.HeightCm = *f.HeightCm
		p.CurrentWeightKg = *f.WeightKg
		p.TargetWeightKg = *f.TargetWeightKg
		if p.GoalType == GoalWeeklyRate && f.WeeklyRateKg != nil {
			rate := *f.WeeklyRateKg
			p.WeeklyRateKg = &rate
		}
	case Imperial:
		if f.HeightFeet == nil {
			return UserProfile{}, invalidField("height_feet", "is required")
		}
		if f.WeightLbs == nil {
			return UserProfile{}, invalidField("weight_lbs", "is required")
		}
		if f.TargetWeightLbs == nil {
			return UserProfile{}, invalidField("target_weight_lbs", "is required")
		}
		var inches float64
		if f.HeightInches != nil {
			inches = *f.HeightInches
		}
		p.HeightCm = FeetToCm(*f.HeightFeet, inches)
		p.CurrentWeightKg = LbsToKg(*f.WeightLbs)
		p.TargetWeightKg = LbsToKg(*f.TargetWeightLbs)
		if p.GoalType == GoalWeeklyRate && f.WeeklyRateLbs != nil {
			rate := LbsToKg(*f.WeeklyRateLbs)
			p.WeeklyRateKg = &rate
		}
	default:
		return UserProfile{}, invalidField("units", "must be one of: metric, imperial")
	}

	if p.GoalType == GoalTargetDate && strings.TrimSpace(f.TargetDate) != "" {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(f.TargetDate))
		if err != nil {
			return UserProfile{}, invalidField("target_date", "invalid date %q, expected YYYY-MM-DD", f.TargetDate)
		}
		p.TargetDate = &t
	}

	if err := p.Validate(); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

// System returns the normalized unit system, defaulting to metric.
func (f Form) System() UnitSystem {
	u := UnitSystem(strings.ToLower(strings.TrimSpace(string(f.Units))))
	if u == "" {
		return Metric
	}
	return u
}
