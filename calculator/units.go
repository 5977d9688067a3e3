package calculator

import "math"

const (
	lbsPerKg      = 2.20462
	inchesPerCm   = 0.393701
	cmPerInch     = 2.54
	inchesPerFoot = 12
)

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) float64 { return kg * lbsPerKg }

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 { return lbs / lbsPerKg }

// CmToFeet splits a height in centimeters into whole feet and rounded inches.
// When the inches round up to 12 the extra foot is carried, so 182.5cm is
// reported as 6'0" rather than 5'12".
func CmToFeet(cm float64) (feet, inches int) {
	totalInches := cm * inchesPerCm
	feet = int(math.Floor(totalInches / inchesPerFoot))
	inches = int(math.Round(totalInches - float64(feet*inchesPerFoot)))
	if inches == inchesPerFoot {
		feet++
		inches = 0
	}
	return feet, inches
}

// FeetToCm converts a feet + inches height to centimeters.
func FeetToCm(feet, inches float64) float64 {
	return (feet*inchesPerFoot + inches) * cmPerInch
}

// roundTo1 rounds to one decimal place (half away from zero).
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
