package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/relay"

	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/models"
)

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Customer).ID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Customer).Name, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Customer).Email, nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Customer).Phone, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Customer).CreatedAt, nil
			},
		},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product).ID, nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product).Name, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(decimalScalar),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product).Price, nil
			},
		},
		"stock": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product).Stock, nil
			},
		},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).ID, nil
			},
		},
		"customer": &graphql.Field{
			Type: customerType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).Customer, nil
			},
		},
		"products": &graphql.Field{
			Type: graphql.NewList(productType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).Products, nil
			},
		},
		"totalAmount": &graphql.Field{
			Type: graphql.NewNonNull(decimalScalar),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).TotalAmount, nil
			},
		},
		"orderDate": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).OrderDate, nil
			},
		},
	},
})

var customerInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"email": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"phone": &graphql.InputObjectFieldConfig{
			Type: graphql.String,
		},
	},
})

var customerConnection = relay.ConnectionDefinitions(relay.ConnectionConfig{
	Name:     "Customer",
	NodeType: customerType,
})

var productConnection = relay.ConnectionDefinitions(relay.ConnectionConfig{
	Name:     "Product",
	NodeType: productType,
})

var orderConnection = relay.ConnectionDefinitions(relay.ConnectionConfig{
	Name:     "Order",
	NodeType: orderType,
})

// connectionArgs merges entity filter arguments with the relay
// pagination arguments (first/last/before/after).
func connectionArgs(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{}
	for name, arg := range relay.ConnectionArgs {
		args[name] = arg
	}
	for name, arg := range extra {
		args[name] = arg
	}
	return args
}
