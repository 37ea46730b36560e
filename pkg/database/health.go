package database

import (
	"context"
	"database/sql"
	"time"
)

// Statuses reported by the health probe.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus is one probe result: the ping round trip plus a snapshot of
// the connection pool at that moment.
type HealthStatus struct {
	Status string    `json:"status"`
	PingMS int64     `json:"ping_ms"`
	Pool   PoolStats `json:"pool"`
}

// PoolStats carries the sql.DB pool counters the probe exposes.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
	WaitMS    int64 `json:"wait_ms"`
	MaxOpen   int   `json:"max_open"`
}

// Health pings the database and snapshots its pool counters. An unhealthy
// result still carries the ping time, so slow failures are visible.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status: StatusUnhealthy,
			PingMS: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	return &HealthStatus{
		Status: StatusHealthy,
		PingMS: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      s.OpenConnections,
			InUse:     s.InUse,
			Idle:      s.Idle,
			WaitCount: s.WaitCount,
			WaitMS:    s.WaitDuration.Milliseconds(),
			MaxOpen:   s.MaxOpenConnections,
		},
	}, nil
}
