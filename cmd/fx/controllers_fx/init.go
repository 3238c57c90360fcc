package controllers_fx

import (
	"go.uber.org/fx"
	"sweetspott/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewShowcaseController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSubmissionController))
