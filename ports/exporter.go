package ports

import (
	"context"
	"io"

	"bizstats/domain/run"
)

// ReportRenderer writes a finished run in a human-readable format
type ReportRenderer interface {
	Render(ctx context.Context, w io.Writer, report *run.Report) error
}

// ReportExporter writes one or more finished runs to a file artefact
type ReportExporter interface {
	Export(ctx context.Context, path string, reports []*run.Report) error
}
