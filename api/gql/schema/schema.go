// Package schema defines the read-only GraphQL view over jobs,
// companies and parts. Mutations go through the REST API.
package schema

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	companysvc "github.com/shopops-cloud/shopops/api/rest/service/company"
	jobsvc "github.com/shopops-cloud/shopops/api/rest/service/job"
	partsvc "github.com/shopops-cloud/shopops/api/rest/service/part"
)

// New instantiates a fresh GraphQL schema for the shop API.
func New() graphql.SchemaConfig {
	return graphql.SchemaConfig{
		Query: graphql.NewObject(
			graphql.ObjectConfig{
				Name:   "Query",
				Fields: fields(),
			},
		),
	}
}

var companyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Company",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.String},
		"code":     &graphql.Field{Type: graphql.String},
		"name":     &graphql.Field{Type: graphql.String},
		"address1": &graphql.Field{Type: graphql.String},
		"address2": &graphql.Field{Type: graphql.String},
	},
})

var partType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Part",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"number":      &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"rev":         &graphql.Field{Type: graphql.String},
	},
})

var jobType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Job",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.String},
		"job_number":     &graphql.Field{Type: graphql.Int},
		"company_id":     &graphql.Field{Type: graphql.String},
		"attention":      &graphql.Field{Type: graphql.String},
		"po_number":      &graphql.Field{Type: graphql.String},
		"invoice_number": &graphql.Field{Type: graphql.Int},
		"invoice_status": &graphql.Field{Type: graphql.String},
		"subtotal":       &graphql.Field{Type: graphql.Float},
		"total_cost":     &graphql.Field{Type: graphql.Float},
		"starred":        &graphql.Field{Type: graphql.Boolean},
	},
})

func fields() graphql.Fields {
	return graphql.Fields{
		"job": &graphql.Field{
			Type: jobType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := uuid.Parse(p.Args["id"].(string))
				if err != nil {
					return nil, err
				}
				return jobsvc.Service(p.Context).Get(id)
			},
		},
		"jobs": &graphql.Field{
			Type: graphql.NewList(jobType),
			Args: graphql.FieldConfigArgument{
				"company_id": &graphql.ArgumentConfig{Type: graphql.String},
				"limit":      &graphql.ArgumentConfig{Type: graphql.Int},
				"offset":     &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				req := &jobsvc.ListRequest{}
				if companyID, ok := p.Args["company_id"].(string); ok {
					req.CompanyID = companyID
				}
				if limit, ok := p.Args["limit"].(int); ok {
					req.Limit = uint64(limit)
				}
				if offset, ok := p.Args["offset"].(int); ok {
					req.Offset = uint64(offset)
				}
				jobs, _, err := jobsvc.Service(p.Context).List(req)
				return jobs, err
			},
		},
		"companies": &graphql.Field{
			Type: graphql.NewList(companyType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				companies, _, err := companysvc.Service(p.Context).List(&companysvc.ListRequest{})
				return companies, err
			},
		},
		"parts": &graphql.Field{
			Type: graphql.NewList(partType),
			Args: graphql.FieldConfigArgument{
				"number": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				req := &partsvc.ListRequest{}
				if number, ok := p.Args["number"].(string); ok {
					req.Number = number
				}
				parts, _, err := partsvc.Service(p.Context).List(req)
				return parts, err
			},
		},
	}
}
