package graph

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/db"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/models"
)

// Accepted phone formats: "+<10-15 digits>" or "NNN-NNN-NNNN".
var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

var createCustomerPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateCustomerPayload",
	Fields: graphql.Fields{
		"customer": &graphql.Field{Type: customerType},
		"message":  &graphql.Field{Type: graphql.String},
	},
})

var bulkCreateCustomersPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateCustomersPayload",
	Fields: graphql.Fields{
		"customers": &graphql.Field{Type: graphql.NewList(customerType)},
		"errors":    &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

var createProductPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateProductPayload",
	Fields: graphql.Fields{
		"product": &graphql.Field{Type: productType},
	},
})

var createOrderPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderPayload",
	Fields: graphql.Fields{
		"order": &graphql.Field{Type: orderType},
	},
})

var updateLowStockProductsPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "UpdateLowStockProductsPayload",
	Fields: graphql.Fields{
		"products": &graphql.Field{Type: graphql.NewList(productType)},
		"message":  &graphql.Field{Type: graphql.String},
	},
})

func newMutation() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayload,
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: resolveCreateCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInput))),
					},
				},
				Resolve: resolveBulkCreateCustomers,
			},
			"createProduct": &graphql.Field{
				Type: createProductPayload,
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price": &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalScalar)},
					"stock": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: resolveCreateProduct,
			},
			"createOrder": &graphql.Field{
				Type: createOrderPayload,
				Args: graphql.FieldConfigArgument{
					"customerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"productIds": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
					},
				},
				Resolve: resolveCreateOrder,
			},
			"updateLowStockProducts": &graphql.Field{
				Type:    updateLowStockProductsPayload,
				Resolve: resolveUpdateLowStockProducts,
			},
		},
	})
}

// insertCustomer runs the shared validation and insert used by both the
// single and bulk mutations. The duplicate-email check and the insert
// are two separate statements; concurrent calls with the same email can
// race, which the unique index then catches.
func insertCustomer(name, email, phone string) (*models.Customer, error) {
	var count int64
	if err := db.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("Email already exists")
	}

	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, errors.New("Invalid phone format")
	}

	customer := models.Customer{Name: name, Email: email, Phone: phone}
	if err := db.DB.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func resolveCreateCustomer(p graphql.ResolveParams) (interface{}, error) {
	name := p.Args["name"].(string)
	email := p.Args["email"].(string)
	phone, _ := p.Args["phone"].(string)

	customer, err := insertCustomer(name, email, phone)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"customer": *customer,
		"message":  "Customer created",
	}, nil
}

func resolveBulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].([]interface{})

	created := []interface{}{}
	errs := []string{}

	for idx, raw := range input {
		data, ok := raw.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: invalid input", idx+1))
			continue
		}

		name, _ := data["name"].(string)
		email, _ := data["email"].(string)
		phone, _ := data["phone"].(string)

		customer, err := insertCustomer(name, email, phone)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %s", idx+1, err))
			continue
		}
		created = append(created, *customer)
	}

	return map[string]interface{}{
		"customers": created,
		"errors":    errs,
	}, nil
}

func resolveCreateProduct(p graphql.ResolveParams) (interface{}, error) {
	name := p.Args["name"].(string)

	price, ok := p.Args["price"].(decimal.Decimal)
	if !ok {
		return nil, errors.New("Invalid price")
	}
	stock := 0
	if s, ok := p.Args["stock"].(int); ok {
		stock = s
	}

	if price.Cmp(decimal.Zero) <= 0 {
		return nil, errors.New("Price must be positive")
	}
	if stock < 0 {
		return nil, errors.New("Stock cannot be negative")
	}

	product := models.Product{Name: name, Price: price, Stock: stock}
	if err := db.DB.Create(&product).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{"product": product}, nil
}

func resolveCreateOrder(p graphql.ResolveParams) (interface{}, error) {
	customerID, err := parseID(p.Args["customerId"])
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	rawIDs := p.Args["productIds"].([]interface{})
	productIDs := make([]uint, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := parseID(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %w", err)
		}
		productIDs = append(productIDs, id)
	}

	var customer models.Customer
	if err := db.DB.First(&customer, customerID).Error; err != nil {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}

	var products []models.Product
	if err := db.DB.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errors.New("Invalid product IDs")
	}

	total := decimal.Zero
	for _, product := range products {
		total = total.Add(product.Price)
	}

	// Order row first, product associations second. Two writes, no
	// surrounding transaction: the total is already final at this point.
	order := models.Order{CustomerID: customer.ID, TotalAmount: total}
	if err := db.DB.Create(&order).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&order).Association("Products").Append(&products); err != nil {
		return nil, err
	}

	order.Customer = customer
	order.Products = products

	return map[string]interface{}{"order": order}, nil
}

func resolveUpdateLowStockProducts(p graphql.ResolveParams) (interface{}, error) {
	var products []models.Product
	if err := db.DB.Where("stock < ?", 10).Find(&products).Error; err != nil {
		return nil, err
	}

	restocked := make([]interface{}, 0, len(products))
	for i := range products {
		products[i].Stock += 10
		if err := db.DB.Model(&products[i]).Update("stock", products[i].Stock).Error; err != nil {
			return nil, err
		}
		restocked = append(restocked, products[i])
	}

	return map[string]interface{}{
		"products": restocked,
		"message":  "Low stock products updated",
	}, nil
}

func parseID(value interface{}) (uint, error) {
	switch v := value.(type) {
	case string:
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, err
		}
		return uint(id), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative id %d", v)
		}
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unexpected id type %T", value)
	}
}
