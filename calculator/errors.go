package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile marks a profile field that is missing or out of range.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrInvalidGoal marks a goal that cannot produce a timeline, such as a
	// zero weekly rate or a rate pointing away from the target weight.
	ErrInvalidGoal = errors.New("invalid goal configuration")
	// ErrMissingTargetDate is returned for a target_date goal without a date.
	ErrMissingTargetDate = errors.New("target_date goal requires a target date")
	// ErrMissingWeeklyRate is returned for a weekly_rate goal without a rate.
	ErrMissingWeeklyRate = errors.New("weekly_rate goal requires a weekly rate")
	// ErrNoSafeDeficit is returned when TDEE is already at or below the
	// minimum safe intake, so no loss pace can respect the floor.
	ErrNoSafeDeficit = errors.New("no safe calorie deficit available")
	// ErrInvariant signals an internal inconsistency in the calculation.
	ErrInvariant = errors.New("calculation invariant violated")
)

// ValidationError describes a rejected input field. Err is one of the
// sentinel errors above so callers can match with errors.Is.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalidField(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...), Err: ErrInvalidProfile}
}
