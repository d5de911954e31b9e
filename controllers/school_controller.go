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

type SchoolController struct {
	schoolRepository shared.SchoolRepository
}

func NewSchoolController(schoolRepository shared.SchoolRepository) *SchoolController {
	return &SchoolController{
		schoolRepository: schoolRepository,
	}
}

func (controller *SchoolController) Create(ctx shared.Context) error {
	var req dtos.SchoolCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	school := models.School{
		Name:           req.Name,
		State:          req.State,
		District:       req.District,
		Address:        req.Address,
		EducationBoard: req.EducationBoard,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ContactEmail:   req.ContactEmail,
	}

	if err := controller.schoolRepository.Create(nil, &school); err != nil {
		return echo.NewHTTPError(500, "could not create school").WithInternal(err)
	}

	return ctx.JSON(200, transformer.SchoolModelToDTO(school))
}

func (controller *SchoolController) List(ctx shared.Context) error {
	schools, err := controller.schoolRepository.ListPaged(shared.GetPageInfo(ctx), ctx.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(500, "could not list schools").WithInternal(err)
	}

	return ctx.JSON(200, schools.Map(func(school models.School) any {
		return transformer.SchoolModelToDTO(school)
	}))
}

func (controller *SchoolController) Read(ctx shared.Context) error {
	school, err := controller.schoolRepository.ReadBySlug(shared.SanitizeParam(ctx.Param("schoolSlug")))
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.SchoolModelToDTO(school))
}
