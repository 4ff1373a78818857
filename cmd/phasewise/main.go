package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/phasewise/internal/cli"
	"github.com/alexanderramin/phasewise/internal/config"
	"github.com/alexanderramin/phasewise/internal/db"
	"github.com/alexanderramin/phasewise/internal/intelligence"
	"github.com/alexanderramin/phasewise/internal/llm"
	"github.com/alexanderramin/phasewise/internal/logger"
	"github.com/alexanderramin/phasewise/internal/service"
	"github.com/mattn/go-isatty"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	// Open database. An explicit PHASEWISE_DB wins over the keyring DSN.
	_, explicit := os.LookupEnv("PHASEWISE_DB")
	location := cfg.ResolveDB(explicit)
	dialect := db.SQLite
	var database *sql.DB
	if config.IsPostgresDSN(location) {
		dialect = db.Postgres
		database, err = db.OpenPostgres(location)
	} else {
		database, err = db.OpenDB(location)
	}
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", "dialect", dialect)

	// The model-backed agent is used only when an LLM is configured; otherwise
	// plans come from the rule-based generator.
	var agent intelligence.ScheduleAgent
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(logger.Or())
		}
		agent = intelligence.NewScheduleAgent(llm.NewOllamaClient(llmCfg, observer), logger.Or())
	}

	app := &cli.App{
		Plans: service.NewPlanService(agent, dialect, database, db.NewUnitOfWork(database),
			service.NewLogUseCaseObserver(logger.Or())),
		Config:  cfg,
		UserID:  cfg.UserID,
		Version: version,
	}
	app.IsInteractive = func() bool {
		in, out := os.Stdin.Fd(), os.Stdout.Fd()
		return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
			(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
	}

	return cli.NewRootCmd(app).Execute()
}
