// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"github.com/educhain-dev/educhain/shared"
	"github.com/labstack/echo/v4"
)

type SimulatorController struct {
	supplyRepository shared.SupplyRepository
	simulatorService shared.SimulatorService
}

func NewSimulatorController(supplyRepository shared.SupplyRepository, simulatorService shared.SimulatorService) *SimulatorController {
	return &SimulatorController{
		supplyRepository: supplyRepository,
		simulatorService: simulatorService,
	}
}

func (controller *SimulatorController) Start(ctx shared.Context) error {
	supply, err := controller.supplyRepository.ReadByBatchID(shared.SanitizeParam(ctx.Param("batchID")))
	if err != nil {
		return err
	}

	if err := controller.simulatorService.Start(supply.ID); err != nil {
		return err
	}

	return ctx.JSON(200, map[string]any{
		"batchId": supply.BatchID,
		"running": true,
	})
}

func (controller *SimulatorController) Stop(ctx shared.Context) error {
	supply, err := controller.supplyRepository.ReadByBatchID(shared.SanitizeParam(ctx.Param("batchID")))
	if err != nil {
		return err
	}

	if !controller.simulatorService.Stop(supply.ID) {
		return echo.NewHTTPError(404, "no simulation is running for this supply")
	}

	return ctx.JSON(200, map[string]any{
		"batchId": supply.BatchID,
		"running": false,
	})
}

func (controller *SimulatorController) Running(ctx shared.Context) error {
	return ctx.JSON(200, controller.simulatorService.Running())
}
