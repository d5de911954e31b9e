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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/educhain-dev/educhain/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Will be filled at build time
var (
	Version   string
	Commit    string
	BuildDate string
)

// StartedAt is used by the info endpoint to report the process uptime.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo instance with all middlewares registered and
// binds its lifetime to the fx application.
func NewServer(lc fx.Lifecycle) (Server, *echo.Echo) {
	e := middlewares.Server()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}, e
}
