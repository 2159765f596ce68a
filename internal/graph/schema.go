// Package graph assembles the CRM's GraphQL schema: object types bound
// to the gorm models, relay-style filterable connections on the root
// query, and the write operations on the root mutation.
package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

func NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    newQuery(),
		Mutation: newMutation(),
	})
}

// NewHandler returns the HTTP handler served at /graphql.
func NewHandler(schema *graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
