package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/config"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	schemaFlag := pflag.String("schema", "", "schema to create the tables in (defaults to DB_SCHEMA)")
	pflag.Parse()

	databaseURL, schema, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}
	if *schemaFlag != "" {
		schema = *schemaFlag
	}

	logger, err := log.New("dev")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	ctx := log.WithLogger(context.Background(), logger)

	dbConn, err := db.NewConnection(databaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.ApplyMigrations(ctx, dbConn, schema); err != nil {
		return err
	}

	log.Info(ctx, "✅ Database initialized", zap.String("schema", schema))
	return nil
}
