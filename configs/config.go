package config

import (
	"os"
)

type CRMConfig struct {
	GraphQLURL       string
	HeartbeatLogPath string
	LowStockLogPath  string
	RemindersLogPath string
	ReportLogPath    string
}

func LoadCRMConfig() CRMConfig {
	return CRMConfig{
		GraphQLURL:       getEnvOrDefault("CRM_GRAPHQL_URL", "http://localhost:8080/graphql"),
		HeartbeatLogPath: getEnvOrDefault("CRM_HEARTBEAT_LOG", "/tmp/crm_heartbeat_log.txt"),
		LowStockLogPath:  getEnvOrDefault("CRM_LOW_STOCK_LOG", "/tmp/low_stock_updates_log.txt"),
		RemindersLogPath: getEnvOrDefault("CRM_REMINDERS_LOG", "/tmp/order_reminders_log.txt"),
		ReportLogPath:    getEnvOrDefault("CRM_REPORT_LOG", "/tmp/crm_report_log.txt"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
