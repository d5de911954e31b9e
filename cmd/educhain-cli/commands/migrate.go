// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/educhain-dev/educhain/database"
	"github.com/educhain-dev/educhain/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run the database migrations",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint

			pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
			defer pool.Close()
			db := database.NewGormDB(pool)

			if err := database.RunMigrationsWithDB(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				slog.Error("could not read migration version", "err", err)
				return
			}

			slog.Info("migrations applied", "version", version, "dirty", dirty)
		},
	}

	return &migrate
}
