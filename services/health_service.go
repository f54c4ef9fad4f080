package services

import (
	"context"
	"time"

	"github.com/AsbestosServicesHampshire/ash-backend/types"
)

// HealthService reports process health. The service is stateless with no
// backing stores, so health reduces to uptime and version.
type HealthService struct {
	version   string
	startTime time.Time
}

func NewHealthService(version string) *HealthService {
	return &HealthService{
		version:   version,
		startTime: time.Now(),
	}
}

func (s *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	return types.HealthCheck{
		Status:    types.HealthStatusUp,
		Version:   s.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	}
}
