package jobs

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ranaitsan123/alx-backend-graphql-crm/configs"
)

// LogHeartbeat probes the GraphQL endpoint with a trivial query and
// records whether the CRM answered. Any failure degrades to a
// "CRM unreachable" line, never an error.
func LogHeartbeat(cfg config.CRMConfig) {
	timestamp := time.Now().Format("02/01/2006-15:04:05")

	client := &http.Client{Timeout: 5 * time.Second}

	status := "CRM is alive"
	resp, err := client.Post(cfg.GraphQLURL, "application/json", strings.NewReader(`{"query":"{ hello }"}`))
	if err != nil {
		status = "CRM unreachable"
	} else {
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			status = "CRM unreachable"
		}
	}

	if err := appendLine(cfg.HeartbeatLogPath, timestamp+" "+status); err != nil {
		log.Printf("heartbeat: %v", err)
	}
}
