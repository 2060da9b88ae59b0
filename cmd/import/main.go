package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shenikar/santiago_crash_dashboard/internal/repository"
	"github.com/shenikar/santiago_crash_dashboard/internal/service"
	"github.com/shenikar/santiago_crash_dashboard/pkg/logger"
	"github.com/shenikar/santiago_crash_dashboard/pkg/postgres"
)

type importOptions struct {
	csvPath     string
	databaseURL string
	encoding    string
	latColumn   string
	lonColumn   string
	migrations  string
	logLevel    string
	skipMigrate bool
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the accidents CSV into PostgreSQL",
		Long: "Applies migrations and replaces the contents of table accidents with the rows of the CSV file.\n" +
			"The dashboard reads this table when DATASET_SOURCE=postgres.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.csvPath, "csv", envOr("DATASET_PATH", "data/AtropellosGS2015.csv"), "path to the accidents CSV")
	f.StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN")
	f.StringVar(&opts.encoding, "encoding", envOr("DATASET_ENCODING", "utf-8"), "CSV encoding: utf-8 or latin1")
	f.StringVar(&opts.latColumn, "lat-column", envOr("DATASET_LAT_COLUMN", "X"), "CSV column read as latitude")
	f.StringVar(&opts.lonColumn, "lon-column", envOr("DATASET_LON_COLUMN", "Y"), "CSV column read as longitude")
	f.StringVar(&opts.migrations, "migrations", "file://migrations", "golang-migrate source URL")
	f.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "info"), "log level")
	f.BoolVar(&opts.skipMigrate, "skip-migrations", false, "do not apply migrations before import")
	return cmd
}

func runImport(ctx context.Context, opts *importOptions) error {
	if opts.databaseURL == "" {
		return fmt.Errorf("--database-url (or DATABASE_URL) is required")
	}
	if opts.csvPath == "" {
		return fmt.Errorf("--csv is required")
	}

	log := logger.NewWithOutput(opts.logLevel, os.Stderr)

	// Файл читается до подключения к базе: битый CSV не должен очистить таблицу
	source := repository.NewCSVAccidentSourceFromPath(opts.csvPath, opts.encoding, opts.latColumn, opts.lonColumn, log)
	records, err := service.LoadDataset(ctx, source, log)
	if err != nil {
		return err
	}

	if !opts.skipMigrate {
		if err := postgres.RunMigrations(opts.databaseURL, opts.migrations, log); err != nil {
			return err
		}
	}

	dbpool, err := postgres.NewPostgresDB(ctx, opts.databaseURL)
	if err != nil {
		return err
	}
	defer dbpool.Close()

	copied, err := repository.NewPostgresAccidentSource(dbpool, log).ReplaceAll(ctx, records)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	log.WithFields(logrus.Fields{
		"csv":    opts.csvPath,
		"copied": copied,
	}).Info("Accidents imported")
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newImportCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
