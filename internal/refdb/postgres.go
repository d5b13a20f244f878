package refdb

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// PoolConfig mirrors the knobs we expose for the pgx pool.
type PoolConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// OpenPool creates a pgx pool against the reference database.
func OpenPool(ctx context.Context, cfg PoolConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.Info("connecting to reference database")
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse reference database DSN", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "invoice-reconciler"

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to reference database", "error", err)
		return nil, err
	}
	logger.Info("successfully connected to reference database")
	return pool, nil
}

// HealthCheck pings the pool to catch DSN issues early.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return pool.Ping(ctx)
}

var reIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresLoader loads materials from a table in the reference database.
// It selects all columns so extension fields survive as attributes without
// schema coupling.
type PostgresLoader struct {
	Pool   *pgxpool.Pool
	Table  string
	Logger *slog.Logger
}

func NewPostgresLoader(pool *pgxpool.Pool, table string, logger *slog.Logger) (*PostgresLoader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if table == "" {
		table = "materials"
	}
	if !reIdentifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &PostgresLoader{Pool: pool, Table: table, Logger: logger}, nil
}

func (l *PostgresLoader) Load(ctx context.Context) ([]entity.Material, error) {
	rows, err := l.Pool.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, l.Table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", l.Table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var materials []entity.Material
	skipped := 0
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
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

	l.Logger.Info("refdb.postgres.loaded", "table", l.Table, "materials", len(materials), "skipped", skipped)
	return materials, nil
}
