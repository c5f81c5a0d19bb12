// README: Tool handlers (list registered tools, invoke one with a JSON body).
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/tools"
)

type ToolHandler struct {
	registry *tools.Registry
	timeout  time.Duration
}

func NewToolHandler(registry *tools.Registry, timeout time.Duration) *ToolHandler {
	return &ToolHandler{registry: registry, timeout: timeout}
}

// List handles GET /api/tools.
func (h *ToolHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"tools": h.registry.List()})
}

// Call handles POST /api/tools/:name.
func (h *ToolHandler) Call(c *gin.Context) {
	name := c.Param("name")
	if _, ok := h.registry.Get(name); !ok {
		writeError(c, http.StatusNotFound, "unknown_tool", "unknown tool: "+name)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, "validation", "unreadable body")
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		writeError(c, http.StatusBadRequest, "validation", "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	out, err := h.registry.Call(ctx, name, body)
	if err != nil {
		log.Printf("[HTTP] tool %s failed after %s: %v", name, time.Since(start).Round(time.Millisecond), err)
		writeToolError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, out)
}
