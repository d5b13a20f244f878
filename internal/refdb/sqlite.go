package refdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// SQLiteLoader loads materials from a local SQLite file, the offline fallback
// when no Postgres reference database is reachable.
type SQLiteLoader struct {
	Path   string
	Table  string
	Logger *slog.Logger
}

func NewSQLiteLoader(path, table string, logger *slog.Logger) (*SQLiteLoader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if table == "" {
		table = "materials"
	}
	if !reIdentifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLiteLoader{Path: path, Table: table, Logger: logger}, nil
}

func (l *SQLiteLoader) Load(ctx context.Context) ([]entity.Material, error) {
	db, err := sql.Open("sqlite", l.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", l.Path, err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %s`, l.Table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", l.Table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var materials []entity.Material
	skipped := 0
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		m, ok := materialFromRow(row)
		if !ok {
			skipped++
			continue
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", l.Table, err)
	}

	l.Logger.Info("refdb.sqlite.loaded", "path", l.Path, "table", l.Table, "materials", len(materials), "skipped", skipped)
	return materials, nil
}
