package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joseph-ayodele/invoice-reconciler/internal/common"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/export"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
	"github.com/joseph-ayodele/invoice-reconciler/internal/price"
	"github.com/joseph-ayodele/invoice-reconciler/internal/reconcile"
	"github.com/joseph-ayodele/invoice-reconciler/internal/refdb"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		itemsPath  = flag.String("items", "", "parsed line items JSON file (required)")
		refCSV     = flag.String("ref", "", "reference materials CSV file")
		dbDSN      = flag.String("db", "", "reference database DSN (postgres://... or a SQLite file path)")
		table      = flag.String("table", "", "reference table name (default: materials, or REF_DB_TABLE)")
		configPath = flag.String("config", "", "matcher config JSON file (thresholds, bands, vocabulary)")
		out        = flag.String("out", "", "output XLSX report path")
		asJSON     = flag.Bool("json", false, "print the report as JSON to stdout")
	)
	flag.Parse()

	if *itemsPath == "" {
		printError("Error: --items is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *refCSV == "" && *dbDSN == "" {
		*dbDSN = cfg.Database.DSN
	}
	if *refCSV == "" && *dbDSN == "" {
		printError("Error: one of --ref or --db is required (or set REF_DB_URL)\n")
		os.Exit(1)
	}

	matcherCfg := match.Config{
		SubstringThreshold: cfg.Matcher.SubstringThreshold,
		FuzzyThreshold:     cfg.Matcher.FuzzyThreshold,
		SemanticThreshold:  cfg.Matcher.SemanticThreshold,
		ConfidenceFloor:    cfg.Matcher.ConfidenceFloor,
	}
	bands := price.Bands{
		Minor:       cfg.Price.MinorPct,
		Small:       cfg.Price.SmallPct,
		Moderate:    cfg.Price.ModeratePct,
		Significant: cfg.Price.SignificantPct,
	}
	vocab := match.Vocabulary{}
	if *configPath != "" {
		fileCfg, err := reconcile.LoadConfigFile(*configPath)
		if err != nil {
			printError("Error: loading config file: %v\n", err)
			os.Exit(1)
		}
		matcherCfg = overlayMatcher(matcherCfg, fileCfg.MatcherConfig())
		bands = overlayBands(bands, fileCfg.Bands())
		vocab = fileCfg.Vocabulary
	}

	items, err := loadItems(*itemsPath)
	if err != nil {
		printError("Error: loading line items: %v\n", err)
		os.Exit(1)
	}

	materials, err := loadMaterials(ctx, logger, cfg, *refCSV, *dbDSN, *table)
	if err != nil {
		printError("Error: loading reference materials: %v\n", err)
		os.Exit(1)
	}

	svc := reconcile.NewService(logger,
		match.New(matcherCfg, vocab, logger),
		price.NewValidator(bands),
	)
	report, err := svc.Reconcile(ctx, items, materials)
	if err != nil {
		printError("Error: reconcile: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		data, err := export.NewService(logger).ReportXLSX(report)
		if err != nil {
			printError("Error: exporting report: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			printError("Error: writing %s: %v\n", *out, err)
			os.Exit(1)
		}
		logger.Info("report written", "path", *out)
	}
	if *asJSON || *out == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			printError("Error: encoding report: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadItems(path string) ([]entity.LineItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []entity.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}

func loadMaterials(ctx context.Context, logger *slog.Logger, cfg *common.Config, refCSV, dbDSN, table string) ([]entity.Material, error) {
	if table == "" {
		table = cfg.Database.Table
	}
	switch {
	case refCSV != "":
		return refdb.NewCSVLoader(refCSV, logger).Load(ctx)
	case strings.HasPrefix(dbDSN, "postgres://") || strings.HasPrefix(dbDSN, "postgresql://"):
		pool, err := refdb.OpenPool(ctx, refdb.PoolConfig{
			DSN:             dbDSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		loader, err := refdb.NewPostgresLoader(pool, table, logger)
		if err != nil {
			return nil, err
		}
		return loader.Load(ctx)
	default:
		loader, err := refdb.NewSQLiteLoader(dbDSN, table, logger)
		if err != nil {
			return nil, err
		}
		return loader.Load(ctx)
	}
}

func overlayMatcher(base, over match.Config) match.Config {
	if over.SubstringThreshold > 0 {
		base.SubstringThreshold = over.SubstringThreshold
	}
	if over.FuzzyThreshold > 0 {
		base.FuzzyThreshold = over.FuzzyThreshold
	}
	if over.SemanticThreshold > 0 {
		base.SemanticThreshold = over.SemanticThreshold
	}
	if over.ConfidenceFloor > 0 {
		base.ConfidenceFloor = over.ConfidenceFloor
	}
	return base
}

func overlayBands(base, over price.Bands) price.Bands {
	if over.Minor > 0 {
		base.Minor = over.Minor
	}
	if over.Small > 0 {
		base.Small = over.Small
	}
	if over.Moderate > 0 {
		base.Moderate = over.Moderate
	}
	if over.Significant > 0 {
		base.Significant = over.Significant
	}
	return base
}
