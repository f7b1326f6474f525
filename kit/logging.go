package kit

import (
	"context"
	"log/slog"
	"time"

	"github.com/raineponce/textmill/idgen"
)

// Logging returns a Middleware that assigns a request ID to each call,
// enriches the context with it, and logs the call outcome with duration.
func Logging(tool string, logger *slog.Logger, newID idgen.Generator) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			reqID := newID()
			ctx = WithRequestID(ctx, reqID)

			start := time.Now()
			resp, err := next(ctx, req)
			elapsed := time.Since(start)

			if err != nil {
				logger.Error("tool call failed",
					"tool", tool, "request_id", reqID,
					"transport", GetTransport(ctx),
					"duration_ms", elapsed.Milliseconds(), "error", err)
				return nil, err
			}
			logger.Debug("tool call ok",
				"tool", tool, "request_id", reqID,
				"transport", GetTransport(ctx),
				"duration_ms", elapsed.Milliseconds())
			return resp, nil
		}
	}
}
