package main

import (
	"context"
	"errors"
	"os"

	"tripsmith/internal/tools"
	"tripsmith/internal/types"
)

// Exit codes let scripts tell failure modes apart.
const (
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or tool input
	ExitUsage = 2

	// ExitConfig indicates a missing or malformed setting
	ExitConfig = 3

	// ExitUpstream indicates the search or completion provider failed
	ExitUpstream = 4

	// ExitResource indicates the itinerary template could not be read
	ExitResource = 5

	// ExitTimeout indicates the call was cancelled or ran out of time
	ExitTimeout = 6
)

func exitCodeFor(err error) int {
	switch {
	case types.IsValidation(err), errors.Is(err, tools.ErrUnknownTool):
		return ExitUsage
	case types.IsConfiguration(err):
		return ExitConfig
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ExitTimeout
	case types.IsUpstream(err):
		return ExitUpstream
	case types.IsResource(err):
		return ExitResource
	default:
		return ExitGeneral
	}
}

func exitWithCode(code int) {
	os.Exit(code)
}
