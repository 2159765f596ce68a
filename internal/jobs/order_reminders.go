package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/ranaitsan123/alx-backend-graphql-crm/configs"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/gqlclient"
)

const orderRemindersQuery = `
query OrdersLastWeek($since: DateTime!) {
  allOrders(orderDateGte: $since) {
    edges {
      node {
        id
        customer {
          email
        }
      }
    }
  }
}`

// SendOrderReminders logs a reminder line for every order placed in the
// last seven days.
func SendOrderReminders(cfg config.CRMConfig) {
	client := gqlclient.New(cfg.GraphQLURL)

	since := time.Now().Add(-7 * 24 * time.Hour)
	variables := map[string]interface{}{
		"since": since.Format(time.RFC3339),
	}

	var result struct {
		AllOrders struct {
			Edges []struct {
				Node struct {
					ID       string `json:"id"`
					Customer struct {
						Email string `json:"email"`
					} `json:"customer"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"allOrders"`
	}

	ts := time.Now().Format("2006-01-02 15:04:05")

	if err := client.Do(orderRemindersQuery, variables, &result); err != nil {
		log.Printf("order reminders failed: %v", err)
		if logErr := appendLine(cfg.RemindersLogPath, fmt.Sprintf("%s - Error: %v", ts, err)); logErr != nil {
			log.Printf("order reminders: %v", logErr)
		}
		return
	}

	for _, edge := range result.AllOrders.Edges {
		line := fmt.Sprintf("%s - Order %s Customer %s", ts, edge.Node.ID, edge.Node.Customer.Email)
		if err := appendLine(cfg.RemindersLogPath, line); err != nil {
			log.Printf("order reminders: %v", err)
		}
	}

	log.Println("Order reminders processed!")
}
