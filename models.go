package main

import (
	"time"

	"lg/fitcalc-go-api/advice"
	"lg/fitcalc-go-api/calculator"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON. Responses
// only; request dates are parsed by calculator.Form.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

/* ─── Response shapes ────────────────────────────────────────────────── */

// calculationResult is calculator.Result with the completion date rendered
// as a plain calendar date.
type calculationResult struct {
	calculator.Result
	CompletionDate DateOnly `json:"completion_date"`
}

func newCalculationResult(r calculator.Result) calculationResult {
	return calculationResult{Result: r, CompletionDate: DateOnly{r.CompletionDate}}
}

// calculateResponse is the response shape for POST /api/calculate.
// Result is always metric; Display holds the same values in the units the
// form was submitted in.
type calculateResponse struct {
	Result  calculationResult  `json:"result"`
	Display calculator.Display `json:"display"`
}

// adviceResponse is the response shape for POST /api/advice. The result is
// echoed so the client can check which plan the advice was written for.
type adviceResponse struct {
	Advice advice.Advice     `json:"advice"`
	Result calculationResult `json:"result"`
}
