package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/fitcalc-go-api/calculator"
)

// health handles GET /api/health.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "advice_enabled": h.advisor != nil})
}

// getActivityLevels returns the activity catalogue for form pickers.
// GET /api/activity-levels.
func (h *Handler) getActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, calculator.ActivityLevels())
}

// calculate handles POST /api/calculate. The body is a calculator.Form in
// either unit system; the response carries the metric result plus display
// values in the submitted units.
func (h *Handler) calculate(c *gin.Context) {
	form, profile, result, ok := h.runCalculation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, calculateResponse{
		Result:  newCalculationResult(result),
		Display: calculator.DisplayValues(profile, result, form.System()),
	})
}

// runCalculation binds the form, normalizes it and runs the calculator.
// On failure it has already written the error response and returns ok=false.
func (h *Handler) runCalculation(c *gin.Context) (calculator.Form, calculator.UserProfile, calculator.Result, bool) {
	var form calculator.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return form, calculator.UserProfile{}, calculator.Result{}, false
	}

	profile, err := form.Profile()
	if err != nil {
		calculationError(c, err)
		return form, calculator.UserProfile{}, calculator.Result{}, false
	}

	result, err := calculator.Calculate(profile, h.today())
	if err != nil {
		calculationError(c, err)
		return form, profile, calculator.Result{}, false
	}
	return form, profile, result, true
}

// calculationError maps calculator errors to status codes. Input problems
// are 400, goals with no safe pace are 422, anything else is logged as 500.
func calculationError(c *gin.Context, err error) {
	var ve *calculator.ValidationError
	switch {
	case errors.As(err, &ve):
		apiError(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, calculator.ErrNoSafeDeficit):
		apiError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[calculate] unexpected error: %v", err)
		apiError(c, http.StatusInternalServerError, "calculation failed")
	}
}
