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

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/educhain-dev/educhain/cmd/educhain/api"
	"github.com/educhain-dev/educhain/controllers"
	"github.com/educhain-dev/educhain/database"
	"github.com/educhain-dev/educhain/database/repositories"
	"github.com/educhain-dev/educhain/router"
	"github.com/educhain-dev/educhain/services"
	"github.com/educhain-dev/educhain/shared"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(fx.Annotate(database.NewPostgreSQLBroker, fx.As(new(shared.PubSubBroker)))),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(supplyRouter router.SupplyRouter) {}),
		fx.Invoke(func(schoolRouter router.SchoolRouter) {}),
		fx.Invoke(func(profileRouter router.ProfileRouter) {}),
		fx.Invoke(func(routeRouter router.RouteRouter) {}),
		fx.Invoke(func(eventsRouter router.EventsRouter) {}),
		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     api.Version,

		Debug: environment == "dev",

		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
