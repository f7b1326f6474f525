// Package textops implements the textmill conversion core: plain-text to
// HTML, title slugification, and HTML to Markdown with file persistence.
//
// The converters are pure functions over strings. They never fail for
// well-formed string input of any content; unsupported markup degrades to
// stripped text rather than raising an error. Only the persistence step
// (SaveMarkdown's file write) can return an I/O error.
//
// Usage:
//
//	svc := textops.New(textops.Config{OutputDir: "out"})
//	html, _ := svc.FormatForHTML("# Title\n\nBody text")
//	res, err := svc.SaveMarkdown(ctx, "<h1>T</h1>", "T")
package textops

import (
	"fmt"
	"log/slog"

	"github.com/raineponce/textmill/idgen"
	"github.com/raineponce/textmill/kit"
	"github.com/raineponce/textmill/observability"
)

// Service exposes the conversion operations with logging, input caps and
// optional invocation auditing around the pure converter functions.
type Service struct {
	cfg    Config
	logger *slog.Logger
	newID  idgen.Generator
	audit  *observability.ToolLogger
}

// Option configures a Service.
type Option func(*Service)

// WithAudit enables invocation auditing through the given logger.
func WithAudit(l *observability.ToolLogger) Option {
	return func(s *Service) { s.audit = l }
}

// WithIDGenerator sets a custom ID generator for request IDs.
func WithIDGenerator(gen idgen.Generator) Option {
	return func(s *Service) { s.newID = gen }
}

// New creates a Service with the given configuration.
func New(cfg Config, opts ...Option) *Service {
	cfg.defaults()
	s := &Service{
		cfg:    cfg,
		logger: cfg.Logger,
		newID:  idgen.Prefixed("req_", idgen.NanoID(12)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FormatForHTML converts plain text to HTML.
func (s *Service) FormatForHTML(text string) (string, error) {
	if err := s.checkSize(len(text)); err != nil {
		return "", err
	}
	s.logger.Debug("formatting text as html", "bytes", len(text))
	return ToHTML(text), nil
}

// SlugifyTitle converts a human title to a URL-safe slug.
func (s *Service) SlugifyTitle(title string) (string, error) {
	if err := s.checkSize(len(title)); err != nil {
		return "", err
	}
	return Slugify(title), nil
}

func (s *Service) checkSize(n int) error {
	if n > s.cfg.MaxInputSize {
		return fmt.Errorf("input too large: %d bytes (max %d)", n, s.cfg.MaxInputSize)
	}
	return nil
}

// instrument wraps a tool endpoint with the request-ID/logging middleware
// and, when configured, the audit recorder.
func (s *Service) instrument(tool string, endpoint kit.Endpoint) kit.Endpoint {
	mw := []kit.Middleware{kit.Logging(tool, s.logger, s.newID)}
	if s.audit != nil {
		mw = append(mw, s.audit.Middleware(tool))
	}
	return kit.Chain(mw...)(endpoint)
}
