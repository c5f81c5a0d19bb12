// README: Combined planner handler (flight search feeding the itinerary).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/modules/itinerary"
	"tripsmith/internal/service"
)

type PlanHandler struct {
	planner *service.TravelPlanner
	timeout time.Duration
}

func NewPlanHandler(planner *service.TravelPlanner, timeout time.Duration) *PlanHandler {
	return &PlanHandler{planner: planner, timeout: timeout}
}

// Plan handles POST /api/plan.
func (h *PlanHandler) Plan(c *gin.Context) {
	var params itinerary.ItineraryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, http.StatusBadRequest, "validation", "invalid json")
		return
	}

	req, err := itinerary.NewItineraryRequest(params)
	if err != nil {
		writeToolError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	res, err := h.planner.Plan(ctx, req)
	if err != nil {
		writeToolError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
