package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// getAdvice handles POST /api/advice.
// Accepts the same form as /api/calculate, recomputes the plan and asks the
// configured model for a tip, meal plan and macro split. A model failure is
// reported as 502 and never changes the calculated result.
func (h *Handler) getAdvice(c *gin.Context) {
	_, profile, result, ok := h.runCalculation(c)
	if !ok {
		return
	}

	if h.advisor == nil {
		apiError(c, http.StatusServiceUnavailable, "advice service not configured")
		return
	}

	adv, err := h.advisor.Advise(c.Request.Context(), profile, result)
	if err != nil {
		log.Printf("[advice] request %s failed: %v", c.GetString("request_id"), err)
		apiError(c, http.StatusBadGateway, "advice unavailable")
		return
	}

	c.JSON(http.StatusOK, adviceResponse{
		Advice: adv,
		Result: newCalculationResult(result),
	})
}
