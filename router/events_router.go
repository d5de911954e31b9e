// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/educhain-dev/educhain/controllers"
	"github.com/labstack/echo/v4"
)

type EventsRouter struct {
	*echo.Group
}

func NewEventsRouter(apiV1Router APIV1Router, eventsController *controllers.EventsController) EventsRouter {
	eventsRouter := apiV1Router.Group.Group("/events")

	eventsRouter.GET("/transactions/", eventsController.Transactions)
	eventsRouter.GET("/gps/", eventsController.GPSUpdates)

	return EventsRouter{
		Group: eventsRouter,
	}
}
