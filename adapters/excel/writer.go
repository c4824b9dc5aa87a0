package excel

import (
	"context"
	"fmt"
	"time"

	"bizstats/domain/run"
	"bizstats/internal"
	"bizstats/internal/errors"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

var summaryHeaders = []interface{}{
	"Scenario", "Run ID", "Family", "N", "Seed", "Estimate",
	"CI Lower", "CI Upper", "Confidence", "Statistic", "Test", "DF",
	"Null", "p-value", "Alpha", "Reject H0", "Outcome", "Decision", "Sample SHA-256",
}

// WorkbookExporter writes runs to an .xlsx workbook: a summary sheet with one
// row per run and a sheet of raw observations per scenario
type WorkbookExporter struct {
	logger *internal.Logger
}

// NewWorkbookExporter creates an Excel exporter
func NewWorkbookExporter(logger *internal.Logger) *WorkbookExporter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &WorkbookExporter{logger: logger}
}

// Export writes the workbook to path, replacing any existing file
func (e *WorkbookExporter) Export(ctx context.Context, path string, reports []*run.Report) error {
	startTime := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return errors.ExportError(path, err)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeaders); err != nil {
		return errors.ExportError(path, err)
	}

	for i, r := range reports {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.ExportError(path, err)
		}
		row := summaryRow(r)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.ExportError(path, err)
		}
		if err := writeSampleSheet(f, r); err != nil {
			return errors.ExportError(path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportError(path, err)
	}

	e.logger.Info("[WorkbookExporter] wrote %d runs to %s in %.2fms",
		len(reports), path, float64(time.Since(startTime).Nanoseconds())/1e6)
	return nil
}

func summaryRow(r *run.Report) []interface{} {
	return []interface{}{
		r.Scenario.Key.String(),
		r.RunID.String(),
		string(r.Scenario.Family),
		r.Summary.N,
		r.Scenario.Seed,
		r.Interval.Estimate,
		r.Interval.Lower,
		r.Interval.Upper,
		r.Interval.Level,
		r.Test.Statistic,
		string(r.Test.Kind),
		r.Test.DF,
		r.Test.Null,
		r.Test.PValue,
		r.Test.Alpha,
		r.Test.Reject,
		string(r.Decision.Outcome),
		r.Decision.Headline,
		r.Fingerprint.SampleHash.String(),
	}
}

// writeSampleSheet lists every observation under a sheet named after the scenario
func writeSampleSheet(f *excelize.File, r *run.Report) error {
	sheet := r.Scenario.Key.String()
	if idx, _ := f.GetSheetIndex(sheet); idx != -1 {
		return fmt.Errorf("scenario %s exported twice", sheet)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Index", r.Scenario.SampleLabel}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range r.Sample.Values() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, v}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
