// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package router

import (
	"github.com/educhain-dev/educhain/controllers"
	"github.com/labstack/echo/v4"
)

type SchoolRouter struct {
	*echo.Group
}

func NewSchoolRouter(apiV1Router APIV1Router, schoolController *controllers.SchoolController) SchoolRouter {
	schoolRouter := apiV1Router.Group.Group("/schools")

	schoolRouter.POST("/", schoolController.Create)
	schoolRouter.GET("/", schoolController.List)
	schoolRouter.GET("/:schoolSlug/", schoolController.Read)

	return SchoolRouter{
		Group: schoolRouter,
	}
}
