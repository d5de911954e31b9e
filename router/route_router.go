// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/educhain-dev/educhain/controllers"
	"github.com/labstack/echo/v4"
)

type RouteRouter struct {
	*echo.Group
}

func NewRouteRouter(apiV1Router APIV1Router, routeController *controllers.RouteController) RouteRouter {
	routeRouter := apiV1Router.Group.Group("/routes")

	routeRouter.POST("/geocode/", routeController.Geocode)
	routeRouter.POST("/calculate/", routeController.Route)

	return RouteRouter{
		Group: routeRouter,
	}
}
