package textops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raineponce/textmill/pathsafe"
)

// SaveResult describes a completed Markdown conversion and write.
type SaveResult struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Markdown string `json:"markdown"`
	Preview  string `json:"preview"`
}

// ConfirmationText renders the human-readable message returned to the
// caller: filename, resolved path, and a preview of the content.
func (r *SaveResult) ConfirmationText() string {
	return fmt.Sprintf("Converted HTML to Markdown and saved as %s (%s).\n\nPreview:\n%s",
		r.Filename, r.Path, r.Preview)
}

// SaveMarkdown converts html to Markdown and writes it to
// {slugify(title)}.md under the configured output directory, fully
// overwriting any prior content at that path. A title that slugifies to
// empty yields a bare ".md" filename; that is accepted, not an error.
// Only the file write can fail, and that failure is returned as-is.
func (s *Service) SaveMarkdown(ctx context.Context, html, title string) (*SaveResult, error) {
	if err := s.checkSize(len(html)); err != nil {
		return nil, err
	}

	md := ToMarkdown(html)
	filename := Slugify(title) + ".md"

	if err := pathsafe.ValidateFilename(filename); err != nil {
		return nil, err
	}
	path, err := pathsafe.SafePath(s.cfg.OutputDir, filename)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", filename, err)
	}
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	s.logger.Info("markdown saved", "file", filename, "path", abs, "bytes", len(md))

	return &SaveResult{
		Filename: filename,
		Path:     abs,
		Markdown: md,
		Preview:  preview(md, s.cfg.PreviewLen),
	}, nil
}

// preview truncates s to at most n runes, marking the cut with an ellipsis.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
