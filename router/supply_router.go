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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/educhain-dev/educhain/controllers"
	"github.com/labstack/echo/v4"
)

type SupplyRouter struct {
	*echo.Group
}

func NewSupplyRouter(apiV1Router APIV1Router,
	supplyController *controllers.SupplyController,
	locationController *controllers.LocationController,
	simulatorController *controllers.SimulatorController,
	documentController *controllers.DocumentController,
) SupplyRouter {
	supplyRouter := apiV1Router.Group.Group("/supplies")

	supplyRouter.POST("/", supplyController.Create)
	supplyRouter.GET("/", supplyController.List)

	// live map feed, every in-transit supply with its latest position
	supplyRouter.GET("/live/", locationController.LiveMap)

	supplyRouter.GET("/:batchID/", supplyController.Read)
	supplyRouter.POST("/:batchID/transition/", supplyController.Transition)

	supplyRouter.POST("/:batchID/location/", locationController.UpdateLocation)
	supplyRouter.GET("/:batchID/location/", locationController.History)
	supplyRouter.GET("/:batchID/location/latest/", locationController.Latest)

	supplyRouter.POST("/:batchID/simulator/start/", simulatorController.Start)
	supplyRouter.POST("/:batchID/simulator/stop/", simulatorController.Stop)

	supplyRouter.POST("/:batchID/documents/", documentController.Create)
	supplyRouter.GET("/:batchID/documents/", documentController.List)

	return SupplyRouter{
		Group: supplyRouter,
	}
}
