package services

import (
	"github.com/educhain-dev/educhain/mapbox"
	"github.com/educhain-dev/educhain/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(mapbox.NewClient),
	fx.Provide(fx.Annotate(NewBlockHashService, fx.As(new(shared.BlockHashGenerator)))),
	fx.Provide(fx.Annotate(NewSupplyService, fx.As(new(shared.SupplyService)))),
	fx.Provide(fx.Annotate(NewLocationUpdateService, fx.As(new(shared.LocationService)))),
	fx.Provide(fx.Annotate(NewGPSSimulatorService, fx.As(new(shared.SimulatorService)))),
	fx.Provide(fx.Annotate(NewMapRouteService, fx.As(new(shared.RouteService)))),
)
