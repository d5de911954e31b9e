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
	"fmt"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/transformer"
	"github.com/labstack/echo/v4"
)

type SupplyController struct {
	supplyRepository shared.SupplyRepository
	supplyService    shared.SupplyService
}

func NewSupplyController(supplyRepository shared.SupplyRepository, supplyService shared.SupplyService) *SupplyController {
	return &SupplyController{
		supplyRepository: supplyRepository,
		supplyService:    supplyService,
	}
}

func (controller *SupplyController) Create(ctx shared.Context) error {
	var req dtos.SupplyCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	supply, err := controller.supplyService.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SupplyModelToDTO(supply))
}

func (controller *SupplyController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx)
	search := ctx.QueryParam("search")

	var status *dtos.SupplyStatus
	if s := dtos.SupplyStatus(ctx.QueryParam("status")); s != "" {
		if !s.Valid() {
			return echo.NewHTTPError(400, fmt.Sprintf("unknown status filter: %s", s))
		}
		status = &s
	}

	supplies, err := controller.supplyRepository.ListPaged(pageInfo, search, status)
	if err != nil {
		return echo.NewHTTPError(500, "could not list supplies").WithInternal(err)
	}

	return ctx.JSON(200, supplies.Map(func(supply models.Supply) any {
		return transformer.SupplyModelToDTO(supply)
	}))
}

// Read returns the supply together with its full ledger chain, oldest entry
// first.
func (controller *SupplyController) Read(ctx shared.Context) error {
	batchID := shared.SanitizeParam(ctx.Param("batchID"))

	supply, chain, err := controller.supplyService.ReadByBatchID(batchID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, map[string]any{
		"supply": transformer.SupplyModelToDTO(supply),
		"chain":  transformer.TransactionModelsToDTOs(chain),
	})
}

func (controller *SupplyController) Transition(ctx shared.Context) error {
	batchID := shared.SanitizeParam(ctx.Param("batchID"))

	var req dtos.SupplyTransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	supply, err := controller.supplyService.Transition(ctx.Request().Context(), batchID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SupplyModelToDTO(supply))
}

// Verify is the public QR code endpoint. An unknown hash is answered with a
// neutral not-authentic response instead of an error.
func (controller *SupplyController) Verify(ctx shared.Context) error {
	blockHash := shared.SanitizeParam(ctx.Param("blockHash"))
	if blockHash == "" {
		return echo.NewHTTPError(400, "block hash is required")
	}

	resp, err := controller.supplyService.Verify(blockHash)
	if err != nil {
		return err
	}

	return ctx.JSON(200, resp)
}
