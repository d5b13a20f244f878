package refdb

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// CSVLoader reads the reference set from a CSV export. The first row is the
// header; column names are matched case-insensitively against the alias
// lists, everything else rides along as attributes.
type CSVLoader struct {
	Path   string
	Logger *slog.Logger
}

func NewCSVLoader(path string, logger *slog.Logger) *CSVLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVLoader{Path: path, Logger: logger}
}

func (l *CSVLoader) Load(ctx context.Context) ([]entity.Material, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open reference csv: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // exports are ragged often enough
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var materials []entity.Material
	skipped := 0
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		row := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		m, ok := materialFromRow(row)
		if !ok {
			skipped++
			l.Logger.Warn("refdb.csv.skip_row", "line", line)
			continue
		}
		materials = append(materials, m)
	}

	l.Logger.Info("refdb.csv.loaded", "path", l.Path, "materials", len(materials), "skipped", skipped)
	return materials, nil
}
