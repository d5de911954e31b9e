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

package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/educhain-dev/educhain/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// httpError maps the domain errors to status codes. Everything unknown stays
// a 500.
func httpError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found").WithInternal(err)
	case errors.Is(err, shared.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, "invalid status transition").WithInternal(err)
	case errors.Is(err, shared.ErrChainIntegrity):
		return echo.NewHTTPError(http.StatusConflict, "ledger chain head moved, retry the request").WithInternal(err)
	case errors.Is(err, shared.ErrSupplyNotInTransit):
		return echo.NewHTTPError(http.StatusConflict, "supply is not in transit").WithInternal(err)
	case errors.Is(err, shared.ErrInvalidCoordinate):
		return echo.NewHTTPError(http.StatusBadRequest, "coordinates are out of range").WithInternal(err)
	case errors.Is(err, shared.ErrHashComputation):
		return echo.NewHTTPError(http.StatusInternalServerError, "could not compute block hash").WithInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
	}
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		he := httpError(err)

		message := he.Message
		if m, ok := message.(string); ok {
			message = echo.Map{"message": m}
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(he.Code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}

		if err := ctx.JSON(he.Code, message); err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

var E *echo.Echo

func Server() *echo.Echo {
	E = echo.New()
	E.HideBanner = true
	E.Logger.SetLevel(99)
	registerMiddlewares(E)
	return E
}
