package types

type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

type HealthCheck struct {
	Status    HealthStatus `json:"status"`
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Uptime    string       `json:"uptime"`
}
