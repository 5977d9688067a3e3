package calculator

import (
	"fmt"
	"math"
	"time"
)

// ceilEpsilon absorbs float noise so an exact quotient such as 77000/550
// is not bumped to the next whole day.
const ceilEpsilon = 1e-9

// maxTimelineDays bounds a plan. Longer timelines come from a vanishing
// rate or absurd weights and are rejected rather than wrapped around.
const maxTimelineDays = math.MaxInt32

// Validate checks that every field Calculate reads is present and sane.
func (p UserProfile) Validate() error {
	if p.Gender != Male && p.Gender != Female {
		return invalidField("gender", "must be one of: male, female")
	}
	if p.Age <= 0 {
		return invalidField("age", "must be a positive number of years")
	}
	if !positive(p.HeightCm) {
		return invalidField("height", "must be a positive number")
	}
	if !positive(p.CurrentWeightKg) {
		return invalidField("current_weight", "must be a positive number")
	}
	if !positive(p.TargetWeightKg) {
		return invalidField("target_weight", "must be a positive number")
	}
	if _, ok := p.ActivityLevel.Multiplier(); !ok {
		return invalidField("activity_level",
			"must be one of: sedentary, lightly_active, moderately_active, very_active, extra_active")
	}
	switch p.GoalType {
	case GoalTargetDate:
		if p.TargetDate == nil || p.TargetDate.IsZero() {
			return &ValidationError{Field: "target_date", Err: ErrMissingTargetDate}
		}
	case GoalWeeklyRate:
		if p.WeeklyRateKg == nil {
			return &ValidationError{Field: "weekly_rate", Err: ErrMissingWeeklyRate}
		}
		if !finite(*p.WeeklyRateKg) {
			return invalidField("weekly_rate", "must be a finite number")
		}
	default:
		return invalidField("goal_type", "must be one of: target_date, weekly_rate")
	}
	return nil
}

// Calculate computes BMR, TDEE, the daily calorie target, the timeline and
// the projection series for p. today is truncated to its calendar date and
// used for every relative date, so equal inputs always give equal results.
//
// BMR uses Mifflin-St Jeor. Loss goals are clamped to a gender-specific
// minimum intake; when that happens Warning is set and the timeline is
// stretched to the fastest pace the floor allows.
func Calculate(p UserProfile, today time.Time) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	today = dateOnly(today)

	bmr := 10*p.CurrentWeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == Male {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, _ := p.ActivityLevel.Multiplier()
	tdee := bmr * mult

	// Positive when losing, negative when gaining.
	totalCalories := (p.CurrentWeightKg - p.TargetWeightKg) * caloriesPerKg
	if !finite(totalCalories) {
		return Result{}, invalidField("current_weight", "is out of range")
	}
	if !finite(tdee) {
		return Result{}, invalidField("height", "is out of range")
	}

	days, dailyDeficit, completion, err := resolveTimeline(p, totalCalories, today)
	if err != nil {
		return Result{}, err
	}

	// The deficit is subtracted for a loss and becomes a surplus otherwise,
	// whatever sign the timeline produced.
	signedDeficit := math.Abs(dailyDeficit)
	if !p.IsLoss() && signedDeficit != 0 {
		signedDeficit = -signedDeficit
	}
	dailyCalories := tdee - signedDeficit

	var warning string
	floor := minSafeCalories(p.Gender)
	if p.IsLoss() && dailyCalories < floor {
		if totalCalories <= 0 {
			return Result{}, fmt.Errorf("%w: loss goal with %.1f kcal to burn", ErrInvariant, totalCalories)
		}
		maxSafeDeficit := tdee - floor
		if maxSafeDeficit <= 0 {
			return Result{}, fmt.Errorf("%w: TDEE %.0f kcal is not above the %.0f kcal minimum",
				ErrNoSafeDeficit, tdee, floor)
		}
		warning = fmt.Sprintf("Warning: your goal requires a dangerously low intake (%.0f kcal). "+
			"The minimum safe intake is %.0f kcal, so the timeline was extended.",
			math.Round(dailyCalories), floor)
		dailyCalories = floor
		signedDeficit = maxSafeDeficit
		days, err = ceilDays(math.Abs(totalCalories)/maxSafeDeficit, "target_weight")
		if err != nil {
			return Result{}, err
		}
		completion = today.AddDate(0, 0, days)
	}

	return Result{
		BMR:            bmr,
		TDEE:           tdee,
		DailyCalories:  dailyCalories,
		DaysToGoal:     days,
		CompletionDate: completion,
		WeeklyDeficit:  signedDeficit * 7,
		Projection:     project(p, days, today),
		Warning:        warning,
	}, nil
}

// resolveTimeline returns days-to-goal, the raw daily deficit and the
// completion date for the profile's goal type.
func resolveTimeline(p UserProfile, totalCalories float64, today time.Time) (int, float64, time.Time, error) {
	switch p.GoalType {
	case GoalTargetDate:
		target := dateOnly(*p.TargetDate)
		if target.Before(today) {
			return 0, 0, time.Time{}, &ValidationError{
				Field: "target_date",
				Msg:   fmt.Sprintf("%s is in the past", target.Format("2006-01-02")),
				Err:   ErrInvalidGoal,
			}
		}
		days, err := ceilDays(target.Sub(today).Hours()/24, "target_date")
		if err != nil {
			return 0, 0, time.Time{}, err
		}
		return days, totalCalories / float64(days), target, nil

	case GoalWeeklyRate:
		rate := *p.WeeklyRateKg
		if rate == 0 {
			return 0, 0, time.Time{}, &ValidationError{Field: "weekly_rate", Msg: "must not be zero", Err: ErrInvalidGoal}
		}
		// Maintenance: nothing to burn, the rate is irrelevant.
		if totalCalories == 0 {
			return 1, 0, today.AddDate(0, 0, 1), nil
		}
		if (rate > 0) != (totalCalories > 0) {
			return 0, 0, time.Time{}, &ValidationError{
				Field: "weekly_rate",
				Msg: fmt.Sprintf("%.2f kg/week moves away from the target weight (%.1f kg -> %.1f kg)",
					rate, p.CurrentWeightKg, p.TargetWeightKg),
				Err: ErrInvalidGoal,
			}
		}
		dailyDeficit := rate * caloriesPerKg / 7
		days, err := ceilDays(totalCalories/dailyDeficit, "weekly_rate")
		if err != nil {
			return 0, 0, time.Time{}, err
		}
		return days, dailyDeficit, today.AddDate(0, 0, days), nil
	}
	return 0, 0, time.Time{}, invalidField("goal_type", "unknown goal type %q", p.GoalType)
}

// project samples the straight line from current to target weight at
// projectionIntervals+1 points. When days < projectionIntervals the tail
// points share the final day offset.
func project(p UserProfile, days int, today time.Time) []ProjectionPoint {
	interval := int(math.Ceil(float64(days) / projectionIntervals))
	diff := p.CurrentWeightKg - p.TargetWeightKg

	points := make([]ProjectionPoint, 0, projectionIntervals+1)
	for i := 0; i <= projectionIntervals; i++ {
		offset := min(i*interval, days)
		progress := float64(offset) / float64(days)
		points = append(points, ProjectionPoint{
			Day:       offset,
			WeightKg:  roundTo1(p.CurrentWeightKg - diff*progress),
			DateLabel: today.AddDate(0, 0, offset).Format("02/01"),
		})
	}
	// Rounding must never move the endpoints off the real weights.
	points[0].WeightKg = p.CurrentWeightKg
	points[len(points)-1].WeightKg = p.TargetWeightKg
	return points
}

// ceilDays rounds a fractional day count up, with a minimum of one day.
// A count that is not finite or exceeds maxTimelineDays is an invalid goal,
// reported against field.
func ceilDays(v float64, field string) (int, error) {
	if !finite(v) || v > maxTimelineDays {
		return 0, &ValidationError{
			Field: field,
			Msg:   "gives a timeline too long to plan",
			Err:   ErrInvalidGoal,
		}
	}
	days := int(math.Ceil(v - ceilEpsilon))
	if days < 1 {
		return 1, nil
	}
	return days, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// positive is false for NaN as well as for zero, negatives and +Inf.
func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

// dateOnly drops the clock, keeping t's calendar date at midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
