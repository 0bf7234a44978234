package main

import (
	"context"
	"fmt"

	"feedindia/internal/db"
	"feedindia/internal/seed"
	"feedindia/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Create the schema and seed the database with fixture data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
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

		if err := db.EnsureSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}

		donations, accounts := postgresStores(pool, store.TransitionPolicyFor(cfg.StrictStatusTransitions))

		logrus.Info("Seeding accounts and donations...")
		if err := seed.SeedPostgres(ctx, accounts, donations); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}

		logrus.Info("Fixtures seeded successfully")

		return nil
	},
}
