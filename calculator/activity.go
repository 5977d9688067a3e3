package calculator

// ActivityLevel is one of the five supported TDEE activity buckets.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtraActive      ActivityLevel = "extra_active"
)

// ActivityInfo describes an activity level for pickers and help text.
type ActivityInfo struct {
	Level      ActivityLevel `json:"level"`
	Multiplier float64       `json:"multiplier"`
	Label      string        `json:"label"`
}

// activityTable is the single source of truth for valid activity levels,
// their TDEE multipliers and display labels. Order is least to most active.
var activityTable = []ActivityInfo{
	{Sedentary, 1.2, "Sedentary (little or no exercise)"},
	{LightlyActive, 1.375, "Lightly active (light exercise 1-3 days/week)"},
	{ModeratelyActive, 1.55, "Moderately active (exercise 3-5 days/week)"},
	{VeryActive, 1.725, "Very active (hard exercise 6-7 days/week)"},
	{ExtraActive, 1.9, "Extra active (physical job or training twice a day)"},
}

// ActivityLevels returns a copy of the activity catalogue.
func ActivityLevels() []ActivityInfo {
	out := make([]ActivityInfo, len(activityTable))
	copy(out, activityTable)
	return out
}

// Multiplier returns the TDEE multiplier for the level, or ok=false for an
// unknown level.
func (a ActivityLevel) Multiplier() (float64, bool) {
	for _, info := range activityTable {
		if info.Level == a {
			return info.Multiplier, true
		}
	}
	return 0, false
}
