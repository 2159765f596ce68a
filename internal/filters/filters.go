package filters

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerFilter narrows customer queries. Text matches are
// case-insensitive substring matches except PhonePattern, which is a
// prefix match.
type CustomerFilter struct {
	Name         string
	Email        string
	PhonePattern string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
}

func (f CustomerFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Name != "" {
		query = query.Where("LOWER(customers.name) LIKE LOWER(?)", "%"+f.Name+"%")
	}
	if f.Email != "" {
		query = query.Where("LOWER(customers.email) LIKE LOWER(?)", "%"+f.Email+"%")
	}
	if f.PhonePattern != "" {
		query = query.Where("customers.phone LIKE ?", f.PhonePattern+"%")
	}
	if f.CreatedAtGte != nil {
		query = query.Where("customers.created_at >= ?", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		query = query.Where("customers.created_at <= ?", *f.CreatedAtLte)
	}
	return query
}

type ProductFilter struct {
	Name     string
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
	StockGte *int
	StockLte *int
}

func (f ProductFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Name != "" {
		query = query.Where("LOWER(products.name) LIKE LOWER(?)", "%"+f.Name+"%")
	}
	if f.PriceGte != nil {
		query = query.Where("products.price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		query = query.Where("products.price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		query = query.Where("products.stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		query = query.Where("products.stock <= ?", *f.StockLte)
	}
	return query
}

// OrderFilter supports cross-entity matches: CustomerName joins the
// customers table, ProductName joins through the order_products
// association table.
type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   string
	ProductName    string
}

func (f OrderFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.TotalAmountGte != nil {
		query = query.Where("orders.total_amount >= ?", *f.TotalAmountGte)
	}
	if f.TotalAmountLte != nil {
		query = query.Where("orders.total_amount <= ?", *f.TotalAmountLte)
	}
	if f.OrderDateGte != nil {
		query = query.Where("orders.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		query = query.Where("orders.order_date <= ?", *f.OrderDateLte)
	}
	if f.CustomerName != "" {
		query = query.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE LOWER(?)", "%"+f.CustomerName+"%")
	}
	if f.ProductName != "" {
		query = query.
			Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Where("LOWER(products.name) LIKE LOWER(?)", "%"+f.ProductName+"%").
			Distinct("orders.*")
	}
	return query
}
