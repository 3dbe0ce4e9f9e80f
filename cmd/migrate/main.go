package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gatekeeper/config"
	"gatekeeper/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:     apply every pending migration
// - down:   roll back the most recent migration
// - status: print the state of every migration

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	apply, ok := map[string]func(context.Context, *sql.DB) error{
		"up":     migrations.Up,
		"down":   migrations.Down,
		"status": migrations.Status,
	}[command]
	if !ok {
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect to postgres")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	return apply(ctx, sqlDB)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <command>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up      Apply every pending migration")
	fmt.Fprintln(os.Stderr, "  down    Roll back the most recent migration")
	fmt.Fprintln(os.Stderr, "  status  Print the state of every migration")
}
