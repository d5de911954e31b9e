package router

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSupplyRouter),
	fx.Provide(NewSchoolRouter),
	fx.Provide(NewProfileRouter),
	fx.Provide(NewRouteRouter),
	fx.Provide(NewEventsRouter),
)
