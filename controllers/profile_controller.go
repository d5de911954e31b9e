// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/educhain-dev/educhain/transformer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	profileRepository shared.ProfileRepository
}

func NewProfileController(profileRepository shared.ProfileRepository) *ProfileController {
	return &ProfileController{
		profileRepository: profileRepository,
	}
}

func (controller *ProfileController) Create(ctx shared.Context) error {
	var req dtos.ProfileCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	profile := models.Profile{
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         dtos.UserRole(req.Role),
		Organization: req.Organization,
		Phone:        req.Phone,
		SchoolID:     req.SchoolID,
	}

	if err := controller.profileRepository.Create(nil, &profile); err != nil {
		return echo.NewHTTPError(500, "could not create profile").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ProfileModelToDTO(profile))
}

func (controller *ProfileController) Read(ctx shared.Context) error {
	profileID, err := uuid.Parse(ctx.Param("profileID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid profile id").WithInternal(err)
	}

	profile, err := controller.profileRepository.Read(profileID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ProfileModelToDTO(profile))
}

func (controller *ProfileController) Update(ctx shared.Context) error {
	profileID, err := uuid.Parse(ctx.Param("profileID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid profile id").WithInternal(err)
	}

	profile, err := controller.profileRepository.Read(profileID)
	if err != nil {
		return err
	}

	body := ctx.Request().Body
	defer body.Close()

	var patch dtos.ProfilePatchRequest
	if err := json.NewDecoder(body).Decode(&patch); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if !patch.IsEmpty() {
		transformer.ApplyPatchToModel(&profile, patch)
		if err := controller.profileRepository.Update(nil, &profile); err != nil {
			return echo.NewHTTPError(500, "could not update profile").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ProfileModelToDTO(profile))
}
