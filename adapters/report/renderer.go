package report

import (
	"context"
	"fmt"
	"io"

	"bizstats/domain/run"
	"bizstats/internal/config"
	"bizstats/internal/errors"
	"bizstats/ports"
)

// NewRenderer returns the renderer for a configured format name
func NewRenderer(format string) (ports.ReportRenderer, error) {
	switch format {
	case config.FormatText, "":
		return NewTextRenderer(), nil
	case config.FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case config.FormatHTML:
		return NewHTMLRenderer(), nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown report format %q", format))
	}
}

// batchRenderer is implemented by renderers that lay out several runs as
// one document
type batchRenderer interface {
	RenderAll(ctx context.Context, w io.Writer, reports []*run.Report) error
}

// RenderAll writes every report with r, as a single document when the
// renderer supports it
func RenderAll(ctx context.Context, r ports.ReportRenderer, w io.Writer, reports []*run.Report) error {
	if br, ok := r.(batchRenderer); ok {
		return br.RenderAll(ctx, w, reports)
	}
	for _, rep := range reports {
		if err := r.Render(ctx, w, rep); err != nil {
			return err
		}
	}
	return nil
}
