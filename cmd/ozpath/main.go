package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/ozpath/internal/cli"
	"github.com/alexanderramin/ozpath/internal/config"
	"github.com/alexanderramin/ozpath/internal/db"
	"github.com/alexanderramin/ozpath/internal/kv"
	"github.com/alexanderramin/ozpath/internal/llm"
	"github.com/alexanderramin/ozpath/internal/repository"
	"github.com/alexanderramin/ozpath/internal/service"
	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/bcrypt"
)

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

	sink := cfg.LogSink()
	if sink != nil {
		defer sink.Close()
	}
	logger := config.NewLogger(sink)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := kv.NewSQLiteStore(database)
	tx := kv.NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))

	var decode repository.DecodeObserver
	if logger != nil {
		decode = repository.DecodeObserverFunc(func(key string, err error) {
			logger.Warn("kv_decode_failed", slog.String("key", key), slog.String("error", err.Error()))
		})
	}
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Auth: service.NewAuthService(store, tx, service.AuthConfig{
			BcryptCost: bcrypt.DefaultCost,
			Decode:     decode,
		}, observer),
		Plan:  service.NewActionPlanService(tx, decode, observer),
		Store: store,
	}

	// Forms and the chat view need a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	var llmObserver llm.Observer = llm.NoopObserver{}
	if sink != nil {
		llmObserver = llm.NewLogObserver(sink)
	}
	app.UseAI(cfg.LLM(), llmObserver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
