package calculator

import "testing"

func TestDisplayValues_Imperial(t *testing.T) {
	p := weeklyProfile(80, 70, 0.5)
	r, err := Calculate(p, refToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := DisplayValues(p, r, Imperial)
	if d.Height != `5'9"` {
		t.Errorf("Height = %q, want 5'9\"", d.Height)
	}
	if d.WeightUnit != "lbs" || d.CurrentWeight != 176.4 || d.TargetWeight != 154.3 {
		t.Errorf("unexpected imperial weights: %+v", d)
	}
	if d.WeeklyChange != 1.1 {
		t.Errorf("WeeklyChange = %v, want 1.1 lbs", d.WeeklyChange)
	}
	if d.Projection[0].WeightKg != 176.4 || d.Projection[10].WeightKg != 154.3 {
		t.Errorf("projection not converted: first %v, last %v", d.Projection[0].WeightKg, d.Projection[10].WeightKg)
	}
	// The result itself must stay metric.
	if r.Projection[0].WeightKg != 80 {
		t.Errorf("DisplayValues mutated the result projection: %v", r.Projection[0].WeightKg)
	}
}

func TestDisplayValues_Metric(t *testing.T) {
	p := weeklyProfile(80, 70, 0.5)
	r, err := Calculate(p, refToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := DisplayValues(p, r, Metric)
	if d.Height != "175 cm" || d.WeightUnit != "kg" || d.CurrentWeight != 80 {
		t.Errorf("unexpected metric display: %+v", d)
	}
	if d.WeeklyChange != 0.5 {
		t.Errorf("WeeklyChange = %v, want 0.5", d.WeeklyChange)
	}
}

func TestActivityLevels(t *testing.T) {
	levels := ActivityLevels()
	if len(levels) != 5 {
		t.Fatalf("len(ActivityLevels()) = %d, want 5", len(levels))
	}
	want := map[ActivityLevel]float64{
		Sedentary: 1.2, LightlyActive: 1.375, ModeratelyActive: 1.55, VeryActive: 1.725, ExtraActive: 1.9,
	}
	for _, info := range levels {
		if want[info.Level] != info.Multiplier {
			t.Errorf("%s multiplier = %v, want %v", info.Level, info.Multiplier, want[info.Level])
		}
		if info.Label == "" {
			t.Errorf("%s has no label", info.Level)
		}
	}
	levels[0].Multiplier = 99
	if m, _ := Sedentary.Multiplier(); m != 1.2 {
		t.Errorf("ActivityLevels returned a shared slice; multiplier now %v", m)
	}
}
