// Package export renders reconciliation reports for human consumption.
// It produces bytes only; file lifecycle belongs to the caller.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// Service produces XLSX bytes for reconciliation reports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReportXLSX returns an XLSX workbook (as bytes) for one report: a summary
// block followed by one row per line item.
func (s *Service) ReportXLSX(report *entity.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Reconciliation"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Summary block
	write(1, 1, "Report ID")
	write(2, 1, report.ID.String())
	write(1, 2, "Generated")
	write(2, 2, report.GeneratedAt.UTC().Format(time.RFC3339))
	write(1, 3, "Items")
	write(2, 3, len(report.Items))
	write(1, 4, "Matched")
	write(2, 4, report.MatchedCount)
	write(1, 5, "Match %")
	write(2, 5, fmt.Sprintf("%.1f", report.MatchPct))
	write(1, 6, "Status")
	write(2, 6, string(report.Status))

	headers := []string{
		"Invoice Item",
		"Quantity",
		"Rate",
		"Amount",
		"Matched Material",
		"Supplier",
		"Algorithm",
		"Score",
		"Confidence",
		"DB Price",
		"Difference",
		"Difference %",
		"Price Status",
	}
	const headerRow = 8
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, item := range report.Items {
		write(1, row, item.Item.RawName)
		writeOpt(f, sheet, 2, row, item.Item.Quantity)
		writeOpt(f, sheet, 3, row, item.Item.Rate)
		writeOpt(f, sheet, 4, row, item.Item.Amount)
		if item.Match.Matched {
			write(5, row, item.Match.Candidate.Name)
			write(6, row, item.Match.Candidate.Supplier)
			write(7, row, string(item.Match.Algorithm))
			write(8, row, fmt.Sprintf("%.1f", item.Match.Score))
			write(9, row, string(item.Match.Tier))
			write(10, row, item.Match.Candidate.Price)
		} else {
			write(5, row, "NOT MATCHED")
			write(9, row, string(item.Match.Tier))
		}
		if item.Price != nil {
			write(11, row, fmt.Sprintf("%.2f", item.Price.Difference))
			write(12, row, fmt.Sprintf("%.1f", item.Price.DifferencePct))
			write(13, row, string(item.Price.Severity))
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 36) // item
	_ = f.SetColWidth(sheet, "E", "E", 36) // material
	_ = f.SetColWidth(sheet, "F", "F", 22) // supplier
	_ = f.SetColWidth(sheet, "G", "I", 12) // match details
	_ = f.SetColWidth(sheet, "J", "M", 13) // price details

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"report_id", report.ID.String(),
		"rows", len(report.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeOpt(f *excelize.File, sheet string, col, row int, v *float64) {
	if v == nil {
		return
	}
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, *v)
}
