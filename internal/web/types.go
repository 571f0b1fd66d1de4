package web

import "time"

// ErrorResponse is returned on errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthzResponse is returned by GET /healthz.
type HealthzResponse struct {
	Status        string    `json:"status"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Event         string    `json:"event"`
	Target        time.Time `json:"target"`
	Expired       bool      `json:"expired"`
	SurfaceActive bool      `json:"surface_active"`
	Subscribers   int       `json:"subscribers"`
}
