package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/ranaitsan123/alx-backend-graphql-crm/configs"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/gqlclient"
)

const lowStockMutation = `
mutation {
  updateLowStockProducts {
    products {
      name
      stock
    }
  }
}`

// UpdateLowStock triggers the restock mutation and logs one line per
// updated product.
func UpdateLowStock(cfg config.CRMConfig) {
	client := gqlclient.New(cfg.GraphQLURL)

	var result struct {
		UpdateLowStockProducts struct {
			Products []struct {
				Name  string `json:"name"`
				Stock int    `json:"stock"`
			} `json:"products"`
		} `json:"updateLowStockProducts"`
	}

	ts := time.Now().Format("2006-01-02 15:04:05")

	if err := client.Do(lowStockMutation, nil, &result); err != nil {
		log.Printf("low stock update failed: %v", err)
		if logErr := appendLine(cfg.LowStockLogPath, fmt.Sprintf("%s - Error: %v", ts, err)); logErr != nil {
			log.Printf("low stock update: %v", logErr)
		}
		return
	}

	for _, p := range result.UpdateLowStockProducts.Products {
		line := fmt.Sprintf("%s - %s -> %d", ts, p.Name, p.Stock)
		if err := appendLine(cfg.LowStockLogPath, line); err != nil {
			log.Printf("low stock update: %v", err)
		}
	}
}
