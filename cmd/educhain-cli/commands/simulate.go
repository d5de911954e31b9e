// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/educhain-dev/educhain/database"
	"github.com/educhain-dev/educhain/database/repositories"
	"github.com/educhain-dev/educhain/services"
	"github.com/educhain-dev/educhain/shared"
	"github.com/spf13/cobra"
)

func NewSimulateCommand() *cobra.Command {
	simulate := cobra.Command{
		Use:   "simulate",
		Short: "Feed simulated GPS updates into the ledger of an in-transit supply",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint

			batchID, _ := cmd.Flags().GetString("batch-id")
			if batchID == "" {
				slog.Error("batch-id is required")
				return
			}

			pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
			defer pool.Close()
			db := database.NewGormDB(pool)

			broker, err := database.NewPostgreSQLBroker(pool)
			if err != nil {
				slog.Error("could not create broker", "err", err)
				return
			}

			supplyRepository := repositories.NewSupplyRepository(db)
			transactionRepository := repositories.NewTransactionRepository(db)

			locationService := services.NewLocationUpdateService(supplyRepository, transactionRepository, services.NewBlockHashService(), broker)
			simulator := services.NewGPSSimulatorService(supplyRepository, locationService)

			supply, err := supplyRepository.ReadByBatchID(batchID)
			if err != nil {
				slog.Error("could not read supply", "batchId", batchID, "err", err)
				return
			}

			if err := simulator.Start(supply.ID); err != nil {
				slog.Error("could not start simulation", "batchId", batchID, "err", err)
				return
			}

			slog.Info("simulation running, press ctrl+c to stop", "batchId", batchID)

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			<-sigs

			simulator.Stop(supply.ID)
			slog.Info("simulation stopped", "batchId", batchID)
		},
	}

	simulate.Flags().String("batch-id", "", "batch id of the supply to simulate")

	return &simulate
}
