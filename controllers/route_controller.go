// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"fmt"

	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/shared"
	"github.com/labstack/echo/v4"
)

// RouteController proxies geocoding and routing requests so the Mapbox token
// never leaves the backend.
type RouteController struct {
	routeService shared.RouteService
}

func NewRouteController(routeService shared.RouteService) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

func (controller *RouteController) Geocode(ctx shared.Context) error {
	var req dtos.GeocodeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	resp, err := controller.routeService.Geocode(ctx.Request().Context(), req.Location)
	if err != nil {
		return echo.NewHTTPError(502, "could not geocode location").WithInternal(err)
	}

	return ctx.JSON(200, resp)
}

func (controller *RouteController) Route(ctx shared.Context) error {
	var req dtos.RouteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	resp, err := controller.routeService.Route(ctx.Request().Context(), req.FromLocation, req.ToLocation)
	if err != nil {
		return echo.NewHTTPError(502, "could not calculate route").WithInternal(err)
	}

	return ctx.JSON(200, resp)
}
