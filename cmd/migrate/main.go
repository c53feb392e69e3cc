// main.go
//
// A relational sales-management data service with one-time migration from the legacy key-value store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of salesdb.
// salesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// salesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with salesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/localnerve/salesdb/internal/config"
	"github.com/localnerve/salesdb/internal/database"
	"github.com/localnerve/salesdb/internal/legacy"
	"github.com/localnerve/salesdb/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type migrateOptions struct {
	EnvFile   string
	StorePath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &migrateOptions{}

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Operate the one-time legacy key-value store migration",
		Long: `migrate imports the mobile app's legacy key-value dump into the relational
store, reports whether the import already ran, and can clear the completion
flag so a corrected dump can be imported again.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.EnvFile, "env-file", "f", "", "Env file to load before reading configuration")
	rootCmd.PersistentFlags().StringVarP(&opts.StorePath, "store", "s", "", "Path to the legacy dump (overrides LEGACY_STORE_PATH)")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the legacy import has completed",
		RunE: func(c *cobra.Command, args []string) error {
			return withDatabase(opts, func(db *gorm.DB, _ legacy.Store) error {
				if services.CheckMigrationStatus(db) {
					fmt.Println("migrated")
				} else {
					fmt.Println("pending")
				}
				return nil
			})
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Import the legacy dump (no-op when already completed)",
		RunE: func(c *cobra.Command, args []string) error {
			return withDatabase(opts, func(db *gorm.DB, store legacy.Store) error {
				result := services.MigrateFromLegacyStore(db, store)
				output, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(output))
				if !result.Success {
					return fmt.Errorf("migration failed: %s", result.Error)
				}
				return nil
			})
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the completion flag so the next run re-imports",
		RunE: func(c *cobra.Command, args []string) error {
			return withDatabase(opts, func(db *gorm.DB, _ legacy.Store) error {
				if !services.ResetMigration(db) {
					return fmt.Errorf("failed to clear the completion flag")
				}
				fmt.Println("reset")
				return nil
			})
		},
	}

	rootCmd.AddCommand(statusCmd, runCmd, resetCmd)
	return rootCmd
}

// withDatabase loads configuration, opens the database and the legacy dump,
// and hands both to fn.
func withDatabase(opts *migrateOptions, fn func(db *gorm.DB, store legacy.Store) error) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.StorePath != "" {
		cfg.LegacyStorePath = opts.StorePath
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	store, err := legacy.NewFileStore(cfg.LegacyStorePath)
	if err != nil {
		return err
	}

	return fn(db, store)
}
