package main

import (
	"context"
	"fmt"

	"qrap/internal/db"
	"qrap/internal/seed"
	"qrap/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample reports",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of reports to insert",
			Value:   8,
		},
	},
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

		reportsRepo := store.NewReportRepository(pool)

		logrus.Info("Seeding reports...")
		rows, err := seed.Reports(ctx, reportsRepo, c.Int("count"))
		if err != nil {
			return fmt.Errorf("failed to seed reports: %w", err)
		}

		pp.Println(rows)
		logrus.Infof("Seeded %d reports", len(rows))

		return nil
	},
}
