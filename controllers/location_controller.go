// Copyright (C) 2025 EduChain Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package controllers

import (
	"errors"
	"fmt"

	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/transformer"
	"github.com/educhain-dev/educhain/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type LocationController struct {
	supplyRepository      shared.SupplyRepository
	transactionRepository shared.TransactionRepository
	locationService       shared.LocationService
}

func NewLocationController(supplyRepository shared.SupplyRepository, transactionRepository shared.TransactionRepository, locationService shared.LocationService) *LocationController {
	return &LocationController{
		supplyRepository:      supplyRepository,
		transactionRepository: transactionRepository,
		locationService:       locationService,
	}
}

func (controller *LocationController) UpdateLocation(ctx shared.Context) error {
	batchID := shared.SanitizeParam(ctx.Param("batchID"))

	var req dtos.LocationUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	entry, err := controller.locationService.UpdateLocation(ctx.Request().Context(), batchID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.TransactionModelToDTO(entry))
}

// History returns all GPS samples of a supply, oldest first.
func (controller *LocationController) History(ctx shared.Context) error {
	supply, err := controller.supplyRepository.ReadByBatchID(shared.SanitizeParam(ctx.Param("batchID")))
	if err != nil {
		return err
	}

	entries, err := controller.transactionRepository.ListGPSUpdates(supply.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list gps updates").WithInternal(err)
	}

	return ctx.JSON(200, transformer.TransactionModelsToDTOs(entries))
}

// Latest returns the most recent GPS sample, or 404 if none was recorded yet.
func (controller *LocationController) Latest(ctx shared.Context) error {
	supply, err := controller.supplyRepository.ReadByBatchID(shared.SanitizeParam(ctx.Param("batchID")))
	if err != nil {
		return err
	}

	entry, err := controller.transactionRepository.LatestGPSUpdate(supply.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.TransactionModelToDTO(entry))
}

// LiveMap feeds the dashboard map: every in-transit supply together with its
// latest known position.
func (controller *LocationController) LiveMap(ctx shared.Context) error {
	supplies, err := controller.supplyRepository.ListInTransit()
	if err != nil {
		return echo.NewHTTPError(500, "could not list in-transit supplies").WithInternal(err)
	}

	type position struct {
		Supply   dtos.SupplyDTO       `json:"supply"`
		Location *dtos.TransactionDTO `json:"location,omitempty"`
	}

	positions := make([]position, 0, len(supplies))
	for _, supply := range supplies {
		pos := position{Supply: transformer.SupplyModelToDTO(supply)}

		entry, err := controller.transactionRepository.LatestGPSUpdate(supply.ID)
		if err == nil {
			pos.Location = utils.Ptr(transformer.TransactionModelToDTO(entry))
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(500, "could not read latest gps update").WithInternal(err)
		}

		positions = append(positions, pos)
	}

	return ctx.JSON(200, positions)
}
