package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/config"
	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/db"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/services/auth"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to create admin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	username := pflag.StringP("username", "u", "admin", "admin username")
	email := pflag.StringP("email", "e", "admin@company.com", "admin email")
	password := pflag.StringP("password", "p", "", "admin password (required)")
	role := pflag.String("role", models.AdminRoleDefault, "admin role")
	pflag.Parse()

	if *password == "" {
		return errors.New("--password is required")
	}

	databaseURL, schema, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
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

	passwordHash, err := auth.HashPassword(*password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		ID:           core.NewID(core.AdminIDPrefix),
		Username:     *username,
		Email:        *email,
		PasswordHash: passwordHash,
		Role:         *role,
	}

	adminsRepo := db.NewPostgresAdminsRepository(dbConn, schema)
	if err := adminsRepo.CreateAdmin(ctx, admin); err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("an admin with username %q or email %q already exists", *username, *email)
		}
		return err
	}

	log.Info(ctx, "✅ Admin created", zap.String("id", admin.ID), zap.String("username", admin.Username))
	return nil
}
