// Package gql exposes the read-only GraphQL endpoint. The schema
// lives in the schema subpackage; mutations go through REST.
package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/gql/schema"
)

// Handler wraps the GraphQL schema and makes it injectable into the
// echo HTTP framework. GraphiQL is served on GET for ad-hoc queries
// against the shop data.
func Handler() echo.HandlerFunc {
	compiled, err := graphql.NewSchema(schema.New())
	if err != nil {
		panic(err)
	}

	return echo.WrapHandler(
		handler.New(
			&handler.Config{
				Schema:   &compiled,
				Pretty:   true,
				GraphiQL: true,
			},
		),
	)
}
