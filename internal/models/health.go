package models

// HealthStatus reports the state of the service and its database.
type HealthStatus struct {
	Service  string `json:"service"`
	Database string `json:"database"`
}
