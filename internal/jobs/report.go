package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ranaitsan123/alx-backend-graphql-crm/configs"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/db"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/models"
)

// GenerateCRMReport aggregates totals straight from the database and
// appends a one-line summary to the report log.
func GenerateCRMReport(cfg config.CRMConfig) {
	ts := time.Now().Format("2006-01-02 15:04:05")

	var totalCustomers int64
	if err := db.DB.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		reportError(cfg, ts, err)
		return
	}

	var totalOrders int64
	if err := db.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		reportError(cfg, ts, err)
		return
	}

	var totalRevenue decimal.NullDecimal
	if err := db.DB.Model(&models.Order{}).
		Select("SUM(total_amount)").
		Scan(&totalRevenue).Error; err != nil {
		reportError(cfg, ts, err)
		return
	}

	revenue := decimal.Zero
	if totalRevenue.Valid {
		revenue = totalRevenue.Decimal
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		ts, totalCustomers, totalOrders, revenue)
	if err := appendLine(cfg.ReportLogPath, line); err != nil {
		log.Printf("crm report: %v", err)
	}
}

func reportError(cfg config.CRMConfig, ts string, err error) {
	log.Printf("crm report failed: %v", err)
	if logErr := appendLine(cfg.ReportLogPath, fmt.Sprintf("%s - Error: %v", ts, err)); logErr != nil {
		log.Printf("crm report: %v", logErr)
	}
}
