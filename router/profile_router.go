// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/educhain-dev/educhain/controllers"
	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	*echo.Group
}

func NewProfileRouter(apiV1Router APIV1Router, profileController *controllers.ProfileController) ProfileRouter {
	profileRouter := apiV1Router.Group.Group("/profiles")

	profileRouter.POST("/", profileController.Create)
	profileRouter.GET("/:profileID/", profileController.Read)
	profileRouter.PATCH("/:profileID/", profileController.Update)

	return ProfileRouter{
		Group: profileRouter,
	}
}
