package models

import "github.com/shopspring/decimal"

type Product struct {
	ID    uint            `gorm:"primaryKey"`
	Name  string          `gorm:"not null"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock int             `gorm:"not null;default:0"`
}
