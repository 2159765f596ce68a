package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint `gorm:"primaryKey"`
	CustomerID  uint `gorm:"index;not null"`
	Customer    Customer
	Products    []Product       `gorm:"many2many:order_products"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	OrderDate   time.Time       `gorm:"autoCreateTime"`
}
