package main

import (
	"context"
	"fmt"

	"qrap/internal/db"
	"qrap/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var initdbCommand = &cli.Command{
	Name:  "initdb",
	Usage: "Create the report and measurement tables if they do not exist",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		if err := store.CreateTables(ctx, pool); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}

		logrus.Info("Tables are in place")

		return nil
	},
}
