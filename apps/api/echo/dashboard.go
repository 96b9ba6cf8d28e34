package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kokoro/core"
	"github.com/trezcool/kokoro/core/dashboard"
	"github.com/trezcool/kokoro/core/emotion"
)

type dashboardApi struct {
	svc      *dashboard.Service
	conf     *core.Config
	validate *validator.Validate
}

func registerDashboardAPI(g *echo.Group, svc *dashboard.Service, conf *core.Config, validate *validator.Validate) {
	api := dashboardApi{
		svc:      svc,
		conf:     conf,
		validate: validate,
	}

	dg := g.Group("/dashboard")
	dg.POST("/generate", api.generate) // seed: replace the stored dataset
	dg.GET("/stats", api.stats)        // read: latest aggregate views
	dg.GET("/records", api.records)    // read: latest raw dataset
}

// Handlers

func (api *dashboardApi) generate(ctx echo.Context) error {
	var data emotion.GenerationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerationRequest")
	}
	cfg, err := data.Validate(api.validate, api.conf.Demo)
	if err != nil {
		return err
	}

	ds, err := api.svc.Generate(cfg)
	if err != nil {
		return errors.Wrap(err, "generating dataset")
	}
	return ctx.JSON(http.StatusCreated, ds.Stats)
}

func (api *dashboardApi) stats(ctx echo.Context) error {
	views, err := api.svc.Stats()
	if err != nil {
		if errors.Cause(err) == dashboard.ErrNoDataset {
			return errHttpNotFound
		}
		return errors.Wrap(err, "reading stats")
	}
	return ctx.JSON(http.StatusOK, views)
}

func (api *dashboardApi) records(ctx echo.Context) error {
	ds, err := api.svc.Latest()
	if err != nil {
		if errors.Cause(err) == dashboard.ErrNoDataset {
			return errHttpNotFound
		}
		return errors.Wrap(err, "reading dataset")
	}
	return ctx.JSON(http.StatusOK, ds)
}
