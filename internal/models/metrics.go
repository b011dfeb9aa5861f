package models

import "time"

// SystemMetrics is a point-in-time summary of the process counters.
type SystemMetrics struct {
	RequestsTotal            uint64            `json:"requestsTotal"`
	AverageRequestDurationMs float64           `json:"averageRequestDurationMs"`
	StoreOperations          uint64            `json:"storeOperations"`
	StoreFallbacks           uint64            `json:"storeFallbacks"`
	Submissions              map[string]uint64 `json:"submissions"`
	NotificationsSent        uint64            `json:"notificationsSent"`
	NotificationsFailed      uint64            `json:"notificationsFailed"`
	Goroutines               int               `json:"goroutines"`
	GeneratedAt              time.Time         `json:"generatedAt"`
}
