package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/gql"
	"github.com/shopops-cloud/shopops/api/middleware"
	"github.com/shopops-cloud/shopops/api/rest/bind"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/policy"
	"github.com/shopops-cloud/shopops/pkg/env"
)

// Start launches the shop API.
func Start(manager *auth.Manager, pol *policy.Policy) error {
	return router(manager, pol).Start(fmt.Sprintf(":%v", env.Variables().Port))
}

func router(manager *auth.Manager, pol *policy.Policy) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// health
	e.GET("/health", Health)

	// metrics
	prometheus.NewPrometheus("shopops", nil).Use(e)

	// public routes: login, registration, quote intake
	bind.Public(e)

	authed := middleware.Auth(manager, pol)

	// admin area
	bind.Internal(e.Group("/internal", authed))

	// GraphQL reads the same admin-area data as the REST routes,
	// so it sits behind the same gate.
	g := e.Group("/gql", authed)
	g.GET("", gql.Handler())
	g.POST("", gql.Handler())

	return e
}
