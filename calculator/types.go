// Package calculator estimates daily calorie targets and a weight-change
// timeline from a user's body profile. Everything here is a pure function
// of its inputs; the current date is always passed in by the caller.
package calculator

import "time"

// Gender selects the Mifflin-St Jeor offset and the minimum safe intake.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// GoalType selects which goal field on UserProfile is authoritative.
type GoalType string

const (
	GoalTargetDate GoalType = "target_date"
	GoalWeeklyRate GoalType = "weekly_rate"
)

const (
	// caloriesPerKg is the approximate energy in one kg of body fat.
	caloriesPerKg = 7700

	minSafeCaloriesMale   = 1500
	minSafeCaloriesFemale = 1200

	projectionIntervals = 10
)

// UserProfile is the metric, already-normalized input to Calculate.
// TargetDate is read only for GoalTargetDate and WeeklyRateKg only for
// GoalWeeklyRate; the other one is ignored even when set.
type UserProfile struct {
	Gender          Gender
	Age             int
	HeightCm        float64
	CurrentWeightKg float64
	TargetWeightKg  float64
	ActivityLevel   ActivityLevel
	GoalType        GoalType

	TargetDate *time.Time
	// WeeklyRateKg is kg lost per week; negative values mean kg gained.
	WeeklyRateKg *float64
}

// ProjectionPoint is one sample of the linear weight projection.
type ProjectionPoint struct {
	Day       int     `json:"day"`
	WeightKg  float64 `json:"weight"`
	DateLabel string  `json:"date_str"`
}

// Result is everything derived from a single UserProfile.
type Result struct {
	BMR            float64           `json:"bmr"`
	TDEE           float64           `json:"tdee"`
	DailyCalories  float64           `json:"daily_calories"`
	DaysToGoal     int               `json:"days_to_goal"`
	CompletionDate time.Time         `json:"-"`
	WeeklyDeficit  float64           `json:"weekly_deficit"`
	Projection     []ProjectionPoint `json:"projected_data"`
	Warning        string            `json:"warning,omitempty"`
}

// IsLoss reports whether the profile describes a weight-loss goal.
func (p UserProfile) IsLoss() bool {
	return p.CurrentWeightKg > p.TargetWeightKg
}

// minSafeCalories returns the daily intake floor for the given gender.
func minSafeCalories(g Gender) float64 {
	if g == Male {
		return minSafeCaloriesMale
	}
	return minSafeCaloriesFemale
}
