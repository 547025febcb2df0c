package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-board/internal/catalogue"
	"github.com/jonathan/job-board/internal/config"
	"github.com/jonathan/job-board/internal/db"
)

var migrateSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Long:  `Create the job board tables if they do not exist, optionally seeding the skill vocabulary.`,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "Seed the skill catalogue after migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Println("Schema is up to date")

	if migrateSeed {
		if err := seedCatalogue(ctx, database); err != nil {
			return err
		}
	}
	return nil
}

// seedCatalogue loads the built-in skill vocabulary into the skills table.
// Upserts are independent, so a few workers share the list.
func seedCatalogue(ctx context.Context, database *db.DB) error {
	store := database.Skills()
	entries := catalogue.SeedEntries()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, entry := range entries {
		g.Go(func() error {
			return store.UpsertEntry(gctx, entry)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Printf("Seeded %d skills", len(entries))
	return nil
}
