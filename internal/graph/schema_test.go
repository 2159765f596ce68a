package graph_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/db"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/graph"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// One named in-memory database per test so parallel opens within a
	// test share state but tests stay isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{})
	require.NoError(t, err)

	originalDB := db.DB
	db.SetTestDB(testDB)
	t.Cleanup(func() {
		db.SetTestDB(originalDB)
	})

	return testDB
}

func newTestSchema(t *testing.T) graphql.Schema {
	schema, err := graph.NewSchema()
	require.NoError(t, err)
	return schema
}

func execute(schema graphql.Schema, query string, vars map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
	})
}

func dig(t *testing.T, data interface{}, path ...string) interface{} {
	current := data
	for _, key := range path {
		m, ok := current.(map[string]interface{})
		require.True(t, ok, "expected map at %q, got %T", key, current)
		current = m[key]
	}
	return current
}

func TestHello(t *testing.T) {
	setupTestDB(t)
	schema := newTestSchema(t)

	result := execute(schema, `{ hello }`, nil)

	require.Empty(t, result.Errors)
	assert.Equal(t, "Hello, GraphQL!", dig(t, result.Data, "hello"))
}

func TestCreateCustomer(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		seed          func(testDB *gorm.DB)
		expectedError string
		checkResult   func(t *testing.T, result *graphql.Result, testDB *gorm.DB)
	}{
		{
			name: "Success without phone",
			query: `mutation {
				createCustomer(name: "Alice", email: "alice@example.com") {
					customer { name email }
					message
				}
			}`,
			checkResult: func(t *testing.T, result *graphql.Result, testDB *gorm.DB) {
				assert.Equal(t, "Customer created", dig(t, result.Data, "createCustomer", "message"))
				assert.Equal(t, "alice@example.com", dig(t, result.Data, "createCustomer", "customer", "email"))

				var count int64
				testDB.Model(&models.Customer{}).Count(&count)
				assert.EqualValues(t, 1, count)
			},
		},
		{
			name: "Success with international phone",
			query: `mutation {
				createCustomer(name: "Bob", email: "bob@example.com", phone: "+15551234567") {
					customer { phone }
				}
			}`,
			checkResult: func(t *testing.T, result *graphql.Result, _ *gorm.DB) {
				assert.Equal(t, "+15551234567", dig(t, result.Data, "createCustomer", "customer", "phone"))
			},
		},
		{
			name: "Success with dashed phone",
			query: `mutation {
				createCustomer(name: "Carol", email: "carol@example.com", phone: "555-123-4567") {
					customer { phone }
				}
			}`,
			checkResult: func(t *testing.T, result *graphql.Result, _ *gorm.DB) {
				assert.Equal(t, "555-123-4567", dig(t, result.Data, "createCustomer", "customer", "phone"))
			},
		},
		{
			name: "Rejects malformed phone",
			query: `mutation {
				createCustomer(name: "Dave", email: "dave@example.com", phone: "abc123") {
					customer { id }
				}
			}`,
			expectedError: "Invalid phone format",
		},
		{
			name: "Rejects duplicate email",
			query: `mutation {
				createCustomer(name: "Eve", email: "taken@example.com") {
					customer { id }
				}
			}`,
			seed: func(testDB *gorm.DB) {
				testDB.Create(&models.Customer{Name: "Existing", Email: "taken@example.com"})
			},
			expectedError: "Email already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testDB := setupTestDB(t)
			if tc.seed != nil {
				tc.seed(testDB)
			}
			schema := newTestSchema(t)

			result := execute(schema, tc.query, nil)

			if tc.expectedError != "" {
				require.NotEmpty(t, result.Errors)
				assert.Contains(t, result.Errors[0].Message, tc.expectedError)
				return
			}

			require.Empty(t, result.Errors)
			if tc.checkResult != nil {
				tc.checkResult(t, result, testDB)
			}
		})
	}
}

func TestBulkCreateCustomers(t *testing.T) {
	testDB := setupTestDB(t)
	testDB.Create(&models.Customer{Name: "Existing", Email: "dup@example.com"})
	schema := newTestSchema(t)

	query := `mutation($input: [CustomerInput!]!) {
		bulkCreateCustomers(input: $input) {
			customers { email }
			errors
		}
	}`
	vars := map[string]interface{}{
		"input": []interface{}{
			map[string]interface{}{"name": "One", "email": "one@example.com"},
			map[string]interface{}{"name": "Two", "email": "dup@example.com"},
			map[string]interface{}{"name": "Three", "email": "three@example.com", "phone": "555-123-4567"},
		},
	}

	result := execute(schema, query, vars)
	require.Empty(t, result.Errors)

	customers := dig(t, result.Data, "bulkCreateCustomers", "customers").([]interface{})
	assert.Len(t, customers, 2)

	errs := dig(t, result.Data, "bulkCreateCustomers", "errors").([]interface{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].(string), "Row 2")
	assert.Contains(t, errs[0].(string), "Email already exists")

	// Partial success persisted: the existing row plus the two new ones.
	var count int64
	testDB.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 3, count)
}

func TestCreateProduct(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		expectedError string
		checkResult   func(t *testing.T, result *graphql.Result)
	}{
		{
			name: "Success with zero stock",
			query: `mutation {
				createProduct(name: "Widget", price: "9.99", stock: 0) {
					product { name price stock }
				}
			}`,
			checkResult: func(t *testing.T, result *graphql.Result) {
				assert.Equal(t, "Widget", dig(t, result.Data, "createProduct", "product", "name"))
				assert.Equal(t, "9.99", dig(t, result.Data, "createProduct", "product", "price"))
				assert.Equal(t, 0, dig(t, result.Data, "createProduct", "product", "stock"))
			},
		},
		{
			name: "Stock defaults to zero",
			query: `mutation {
				createProduct(name: "Gadget", price: "5") {
					product { stock }
				}
			}`,
			checkResult: func(t *testing.T, result *graphql.Result) {
				assert.Equal(t, 0, dig(t, result.Data, "createProduct", "product", "stock"))
			},
		},
		{
			name: "Rejects zero price",
			query: `mutation {
				createProduct(name: "Freebie", price: "0") { product { id } }
			}`,
			expectedError: "Price must be positive",
		},
		{
			name: "Rejects negative price",
			query: `mutation {
				createProduct(name: "Refund", price: "-5") { product { id } }
			}`,
			expectedError: "Price must be positive",
		},
		{
			name: "Rejects negative stock",
			query: `mutation {
				createProduct(name: "Widget", price: "9.99", stock: -1) { product { id } }
			}`,
			expectedError: "Stock cannot be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupTestDB(t)
			schema := newTestSchema(t)

			result := execute(schema, tc.query, nil)

			if tc.expectedError != "" {
				require.NotEmpty(t, result.Errors)
				assert.Contains(t, result.Errors[0].Message, tc.expectedError)
				return
			}

			require.Empty(t, result.Errors)
			if tc.checkResult != nil {
				tc.checkResult(t, result)
			}
		})
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("Total is the sum of product prices at creation time", func(t *testing.T) {
		testDB := setupTestDB(t)
		customer := models.Customer{Name: "Alice", Email: "alice@example.com"}
		require.NoError(t, testDB.Create(&customer).Error)

		first := models.Product{Name: "Widget", Price: decimal.NewFromFloat(19.99), Stock: 5}
		second := models.Product{Name: "Gadget", Price: decimal.NewFromFloat(9.99), Stock: 3}
		require.NoError(t, testDB.Create(&first).Error)
		require.NoError(t, testDB.Create(&second).Error)

		schema := newTestSchema(t)
		query := `mutation($cid: ID!, $pids: [ID!]!) {
			createOrder(customerId: $cid, productIds: $pids) {
				order {
					totalAmount
					customer { email }
					products { name }
				}
			}
		}`
		vars := map[string]interface{}{
			"cid":  fmt.Sprint(customer.ID),
			"pids": []interface{}{fmt.Sprint(first.ID), fmt.Sprint(second.ID)},
		}

		result := execute(schema, query, vars)
		require.Empty(t, result.Errors)

		assert.Equal(t, "29.98", dig(t, result.Data, "createOrder", "order", "totalAmount"))
		assert.Equal(t, "alice@example.com", dig(t, result.Data, "createOrder", "order", "customer", "email"))
		products := dig(t, result.Data, "createOrder", "order", "products").([]interface{})
		assert.Len(t, products, 2)

		// A later price change must not touch the stored total.
		require.NoError(t, testDB.Model(&first).Update("price", decimal.NewFromInt(100)).Error)

		var order models.Order
		require.NoError(t, testDB.First(&order).Error)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(29.98)),
			"expected total 29.98, got %s", order.TotalAmount)
	})

	t.Run("Rejects empty product list", func(t *testing.T) {
		testDB := setupTestDB(t)
		customer := models.Customer{Name: "Alice", Email: "alice@example.com"}
		require.NoError(t, testDB.Create(&customer).Error)

		schema := newTestSchema(t)
		result := execute(schema, `mutation($cid: ID!, $pids: [ID!]!) {
			createOrder(customerId: $cid, productIds: $pids) { order { id } }
		}`, map[string]interface{}{
			"cid":  fmt.Sprint(customer.ID),
			"pids": []interface{}{},
		})

		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "Invalid product IDs")
	})

	t.Run("Rejects product ids that match nothing", func(t *testing.T) {
		testDB := setupTestDB(t)
		customer := models.Customer{Name: "Alice", Email: "alice@example.com"}
		require.NoError(t, testDB.Create(&customer).Error)

		schema := newTestSchema(t)
		result := execute(schema, `mutation($cid: ID!, $pids: [ID!]!) {
			createOrder(customerId: $cid, productIds: $pids) { order { id } }
		}`, map[string]interface{}{
			"cid":  fmt.Sprint(customer.ID),
			"pids": []interface{}{"9999"},
		})

		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "Invalid product IDs")
	})

	t.Run("Missing customer propagates lookup error", func(t *testing.T) {
		testDB := setupTestDB(t)
		product := models.Product{Name: "Widget", Price: decimal.NewFromFloat(19.99)}
		require.NoError(t, testDB.Create(&product).Error)

		schema := newTestSchema(t)
		result := execute(schema, `mutation($cid: ID!, $pids: [ID!]!) {
			createOrder(customerId: $cid, productIds: $pids) { order { id } }
		}`, map[string]interface{}{
			"cid":  "9999",
			"pids": []interface{}{fmt.Sprint(product.ID)},
		})

		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "customer lookup failed")
	})
}

func TestUpdateLowStockProducts(t *testing.T) {
	testDB := setupTestDB(t)
	low := models.Product{Name: "Widget", Price: decimal.NewFromFloat(9.99), Stock: 5}
	healthy := models.Product{Name: "Gadget", Price: decimal.NewFromFloat(5.00), Stock: 20}
	require.NoError(t, testDB.Create(&low).Error)
	require.NoError(t, testDB.Create(&healthy).Error)

	schema := newTestSchema(t)
	result := execute(schema, `mutation {
		updateLowStockProducts {
			products { name stock }
			message
		}
	}`, nil)
	require.Empty(t, result.Errors)

	assert.Equal(t, "Low stock products updated", dig(t, result.Data, "updateLowStockProducts", "message"))
	products := dig(t, result.Data, "updateLowStockProducts", "products").([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].(map[string]interface{})["name"])
	assert.Equal(t, 15, products[0].(map[string]interface{})["stock"])

	var untouched models.Product
	require.NoError(t, testDB.First(&untouched, healthy.ID).Error)
	assert.Equal(t, 20, untouched.Stock)
}
