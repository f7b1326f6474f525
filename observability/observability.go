// Package observability records tool invocations in SQLite for later
// inspection. Recording is best-effort: a failing store logs a warning
// through slog and never blocks or fails the tool call itself.
package observability

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/raineponce/textmill/idgen"
	"github.com/raineponce/textmill/kit"
)

// Schema creates the invocation log table.
const Schema = `
CREATE TABLE IF NOT EXISTS tool_invocations (
	invocation_id TEXT PRIMARY KEY,
	tool          TEXT NOT NULL,
	request_id    TEXT NOT NULL DEFAULT '',
	transport     TEXT NOT NULL DEFAULT '',
	session_id    TEXT NOT NULL DEFAULT '',
	duration_ms   INTEGER NOT NULL,
	success       INTEGER NOT NULL DEFAULT 1,
	error         TEXT NOT NULL DEFAULT '',
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tool_invocations_tool ON tool_invocations(tool, created_at);
`

// Invocation describes one tool call.
type Invocation struct {
	Tool       string
	RequestID  string
	Transport  string
	SessionID  string
	DurationMs int64
	Success    bool
	Error      string
}

// ToolLogger writes invocation rows to a SQLite database.
type ToolLogger struct {
	db    *sql.DB
	newID idgen.Generator
}

// ToolLoggerOption configures a ToolLogger.
type ToolLoggerOption func(*ToolLogger)

// WithIDGenerator sets a custom ID generator for invocation IDs.
func WithIDGenerator(gen idgen.Generator) ToolLoggerOption {
	return func(l *ToolLogger) { l.newID = gen }
}

// NewToolLogger creates a logger backed by the given database.
func NewToolLogger(db *sql.DB, opts ...ToolLoggerOption) *ToolLogger {
	l := &ToolLogger{
		db:    db,
		newID: idgen.Prefixed("inv_", idgen.Default),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Init creates the invocation log table.
func (l *ToolLogger) Init() error {
	_, err := l.db.Exec(Schema)
	return err
}

// Log records one invocation. Errors are slog-logged, not propagated.
func (l *ToolLogger) Log(ctx context.Context, inv Invocation) {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO tool_invocations (
			invocation_id, tool, request_id, transport, session_id,
			duration_ms, success, error, created_at
		) VALUES (?,?,?,?,?,?,?,?,?)`,
		l.newID(), inv.Tool, inv.RequestID, inv.Transport, inv.SessionID,
		inv.DurationMs, inv.Success, inv.Error, time.Now().Unix())
	if err != nil {
		slog.Warn("invocation log failed", "error", err, "tool", inv.Tool)
	}
}

// Cleanup deletes invocation rows older than the retention window.
// Returns the number of rows removed.
func (l *ToolLogger) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).Unix()
	res, err := l.db.ExecContext(ctx,
		`DELETE FROM tool_invocations WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Middleware returns a kit.Middleware recording every call to the named
// tool, reading request/session identity from the enriched context.
func (l *ToolLogger) Middleware(tool string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			inv := Invocation{
				Tool:       tool,
				RequestID:  kit.GetRequestID(ctx),
				Transport:  kit.GetTransport(ctx),
				SessionID:  kit.GetSessionID(ctx),
				DurationMs: time.Since(start).Milliseconds(),
				Success:    err == nil,
			}
			if err != nil {
				inv.Error = err.Error()
			}
			l.Log(ctx, inv)

			return resp, err
		}
	}
}
