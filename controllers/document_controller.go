// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/transformer"
	"github.com/labstack/echo/v4"
)

type DocumentController struct {
	supplyRepository   shared.SupplyRepository
	documentRepository shared.DocumentRepository
}

func NewDocumentController(supplyRepository shared.SupplyRepository, documentRepository shared.DocumentRepository) *DocumentController {
	return &DocumentController{
		supplyRepository:   supplyRepository,
		documentRepository: documentRepository,
	}
}

// Create attaches document metadata to a supply. The blob itself is uploaded
// to object storage by the client beforehand.
func (controller *DocumentController) Create(ctx shared.Context) error {
	supply, err := controller.supplyRepository.ReadByBatchID(shared.SanitizeParam(ctx.Param("batchID")))
	if err != nil {
		return err
	}

	var req dtos.DocumentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	document := models.Document{
		SupplyID:     supply.ID,
		Name:         req.Name,
		DocumentType: req.DocumentType,
		StoragePath:  req.StoragePath,
		ContentType:  req.ContentType,
		SizeBytes:    req.SizeBytes,
		UploadedBy:   req.UploadedBy,
	}

	if err := controller.documentRepository.Create(nil, &document); err != nil {
		return echo.NewHTTPError(500, "could not create document").WithInternal(err)
	}

	return ctx.JSON(200, transformer.DocumentModelToDTO(document))
}

func (controller *DocumentController) List(ctx shared.Context) error {
	supply, err := controller.supplyRepository.ReadByBatchID(shared.SanitizeParam(ctx.Param("batchID")))
	if err != nil {
		return err
	}

	documents, err := controller.documentRepository.ListBySupplyID(supply.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list documents").WithInternal(err)
	}

	return ctx.JSON(200, transformer.DocumentModelsToDTOs(documents))
}
