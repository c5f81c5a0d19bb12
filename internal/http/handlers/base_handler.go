// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/tools"
	"tripsmith/internal/types"
)

// StatusClientClosedRequest is reported when the caller goes away mid-call.
const StatusClientClosedRequest = 499

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, kind, msg string) {
	writeJSON(c, status, errorResponse{Error: msg, Kind: kind})
}

// writeToolError maps the tool error taxonomy onto HTTP statuses.
func writeToolError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		writeError(c, http.StatusNotFound, "unknown_tool", err.Error())
	case types.IsValidation(err):
		writeError(c, http.StatusBadRequest, "validation", err.Error())
	case types.IsConfiguration(err):
		writeError(c, http.StatusServiceUnavailable, "configuration", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "timeout", "upstream call timed out")
	case errors.Is(err, context.Canceled):
		writeError(c, StatusClientClosedRequest, "canceled", "request canceled")
	case types.IsUpstream(err):
		writeError(c, http.StatusBadGateway, "upstream", err.Error())
	case types.IsResource(err):
		writeError(c, http.StatusInternalServerError, "resource", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
