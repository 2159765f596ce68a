// crond runs the CRM's scheduled jobs in-process: heartbeat every five
// minutes, low-stock restock twice a day, order reminders daily at 8AM,
// and the weekly report on Monday mornings.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/ranaitsan123/alx-backend-graphql-crm/configs"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/db"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/jobs"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// The report job aggregates straight from the database.
	db.Init()

	cfg := config.LoadCRMConfig()

	c := cron.New()

	schedules := []struct {
		spec string
		name string
		run  func()
	}{
		{"*/5 * * * *", "heartbeat", func() { jobs.LogHeartbeat(cfg) }},
		{"0 */12 * * *", "low stock update", func() { jobs.UpdateLowStock(cfg) }},
		{"0 8 * * *", "order reminders", func() { jobs.SendOrderReminders(cfg) }},
		{"0 6 * * 1", "crm report", func() { jobs.GenerateCRMReport(cfg) }},
	}

	for _, s := range schedules {
		if _, err := c.AddFunc(s.spec, s.run); err != nil {
			log.Fatalf("Failed to schedule %s job: %v", s.name, err)
		}
		log.Printf("Scheduled %s job (%s)", s.name, s.spec)
	}

	c.Run()
}
