package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/relay"
	"github.com/shopspring/decimal"

	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/db"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/filters"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/models"
)

func newQuery() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"allCustomers": &graphql.Field{
				Type: customerConnection.ConnectionType,
				Args: connectionArgs(graphql.FieldConfigArgument{
					"name":         &graphql.ArgumentConfig{Type: graphql.String},
					"email":        &graphql.ArgumentConfig{Type: graphql.String},
					"phonePattern": &graphql.ArgumentConfig{Type: graphql.String},
					"createdAtGte": &graphql.ArgumentConfig{Type: graphql.DateTime},
					"createdAtLte": &graphql.ArgumentConfig{Type: graphql.DateTime},
				}),
				Resolve: resolveAllCustomers,
			},
			"allProducts": &graphql.Field{
				Type: productConnection.ConnectionType,
				Args: connectionArgs(graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"priceGte": &graphql.ArgumentConfig{Type: decimalScalar},
					"priceLte": &graphql.ArgumentConfig{Type: decimalScalar},
					"stockGte": &graphql.ArgumentConfig{Type: graphql.Int},
					"stockLte": &graphql.ArgumentConfig{Type: graphql.Int},
				}),
				Resolve: resolveAllProducts,
			},
			"allOrders": &graphql.Field{
				Type: orderConnection.ConnectionType,
				Args: connectionArgs(graphql.FieldConfigArgument{
					"totalAmountGte": &graphql.ArgumentConfig{Type: decimalScalar},
					"totalAmountLte": &graphql.ArgumentConfig{Type: decimalScalar},
					"orderDateGte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"orderDateLte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
					"customerName":   &graphql.ArgumentConfig{Type: graphql.String},
					"productName":    &graphql.ArgumentConfig{Type: graphql.String},
				}),
				Resolve: resolveAllOrders,
			},
		},
	})
}

func resolveAllCustomers(p graphql.ResolveParams) (interface{}, error) {
	filter := filters.CustomerFilter{
		Name:         argString(p.Args, "name"),
		Email:        argString(p.Args, "email"),
		PhonePattern: argString(p.Args, "phonePattern"),
		CreatedAtGte: argTime(p.Args, "createdAtGte"),
		CreatedAtLte: argTime(p.Args, "createdAtLte"),
	}

	var customers []models.Customer
	if err := filter.Apply(db.DB).Find(&customers).Error; err != nil {
		return nil, err
	}

	nodes := make([]interface{}, len(customers))
	for i, c := range customers {
		nodes[i] = c
	}
	return relay.ConnectionFromArray(nodes, relay.NewConnectionArguments(p.Args)), nil
}

func resolveAllProducts(p graphql.ResolveParams) (interface{}, error) {
	filter := filters.ProductFilter{
		Name:     argString(p.Args, "name"),
		PriceGte: argDecimal(p.Args, "priceGte"),
		PriceLte: argDecimal(p.Args, "priceLte"),
		StockGte: argInt(p.Args, "stockGte"),
		StockLte: argInt(p.Args, "stockLte"),
	}

	var products []models.Product
	if err := filter.Apply(db.DB).Find(&products).Error; err != nil {
		return nil, err
	}

	nodes := make([]interface{}, len(products))
	for i, prod := range products {
		nodes[i] = prod
	}
	return relay.ConnectionFromArray(nodes, relay.NewConnectionArguments(p.Args)), nil
}

func resolveAllOrders(p graphql.ResolveParams) (interface{}, error) {
	filter := filters.OrderFilter{
		TotalAmountGte: argDecimal(p.Args, "totalAmountGte"),
		TotalAmountLte: argDecimal(p.Args, "totalAmountLte"),
		OrderDateGte:   argTime(p.Args, "orderDateGte"),
		OrderDateLte:   argTime(p.Args, "orderDateLte"),
		CustomerName:   argString(p.Args, "customerName"),
		ProductName:    argString(p.Args, "productName"),
	}

	var orders []models.Order
	query := filter.Apply(db.DB.Model(&models.Order{})).
		Preload("Customer").
		Preload("Products")
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}

	nodes := make([]interface{}, len(orders))
	for i, o := range orders {
		nodes[i] = o
	}
	return relay.ConnectionFromArray(nodes, relay.NewConnectionArguments(p.Args)), nil
}

// --- argument helpers ---

func argString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argTime(args map[string]interface{}, key string) *time.Time {
	if v, ok := args[key].(time.Time); ok {
		return &v
	}
	return nil
}

func argDecimal(args map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := args[key].(decimal.Decimal); ok {
		return &v
	}
	return nil
}

func argInt(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}
