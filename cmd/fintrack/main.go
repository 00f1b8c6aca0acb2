package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"fintrack/internal/config"
	"fintrack/internal/domain"
	"fintrack/internal/engine"
	"fintrack/internal/gateway"
	"fintrack/internal/logger"
	"fintrack/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to the YAML configuration file")
	envPath := flag.String("env", "", "Optional .env file with FINTRACK_* overrides")
	inputDir := flag.String("input", "", "Input directory (overrides paths.input_dir)")
	outputPath := flag.String("out", "", "Output CSV file (overrides paths.output_dir/files.output_file)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logger.New(*debug)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx = logger.WithContext(ctx, log)

	err := run(ctx, *configPath, *envPath, *inputDir, *outputPath)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("fintrack failed")
	}
}

func run(ctx context.Context, configPath, envPath, inputDir, outputPath string) error {
	log := logger.FromContext(ctx)

	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	if inputDir != "" {
		cfg.Paths.InputDir = inputDir
	}
	if outputPath != "" {
		cfg.Paths.OutputDir = filepath.Dir(outputPath)
		cfg.Files.OutputFile = filepath.Base(outputPath)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	eng := engine.New(cfg.Categories.Rules, engineOpts...)
	parsers := map[string]usecase.StatementParser{
		"pdf":  usecase.NewFragmentStatementParser(gateway.NewPDFFragmentReader(), eng),
		"csv":  usecase.NewTabularStatementParser(gateway.NewCSVStatementReader(';'), eng),
		"xlsx": usecase.NewTabularStatementParser(gateway.NewXLSXStatementReader(), eng),
	}
	if _, ok := parsers[cfg.Files.Filetype]; !ok {
		return fmt.Errorf("%s: %w", cfg.Files.Filetype, domain.ErrUnsupportedFileType)
	}

	var store usecase.LedgerStore
	if cfg.Paths.LedgerDB != "" {
		sqliteStore, err := gateway.OpenSQLiteLedgerStore(cfg.Paths.LedgerDB)
		if err != nil {
			return fmt.Errorf("could not open ledger database: %w", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
	}
	importUseCase := usecase.NewImportUseCase(parsers, store)

	// --- Execute the Usecase ---
	files, err := gateway.DiscoverFiles(cfg.Paths.InputDir, cfg.Files.Filetype)
	if err != nil {
		return fmt.Errorf("could not list input files: %w", err)
	}
	log.Info().Int("files", len(files)).Str("dir", cfg.Paths.InputDir).Msg("starting import")

	acc, err := importUseCase.LoadLedger(ctx)
	if err != nil {
		return err
	}
	ledger, err := importUseCase.Import(ctx, files, acc)
	if err != nil {
		return fmt.Errorf("import aborted: %w", err)
	}

	summary := ledger.Summarize()
	if len(ledger.Transactions) == 0 {
		log.Warn().Msg("no transactions found to save")
	} else {
		out := filepath.Join(cfg.Paths.OutputDir, cfg.Files.OutputFile)
		if err := gateway.NewCSVTransactionWriter().WriteTransactions(out, ledger.Transactions); err != nil {
			return fmt.Errorf("could not save transactions: %w", err)
		}
		summary.OutputPath = out
		log.Info().Str("path", out).Int("transactions", len(ledger.Transactions)).Msg("all transactions saved")
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(struct {
		Summary domain.Summary      `json:"summary"`
		Files   []domain.FileResult `json:"files"`
	}{summary, ledger.Files}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON summary: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
