package dtos

import "time"

// ComponentStatus is the state of one dependency checked by /healthCheck
type ComponentStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthReport struct {
	Status   string                     `json:"status"`
	Services map[string]ComponentStatus `json:"services"`
	UpSince  time.Time                  `json:"up_since"`
	Uptime   string                     `json:"uptime"`
}
