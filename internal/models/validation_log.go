package models

import "time"

// ValidationLog records one submit attempt and which fields passed.
type ValidationLog struct {
	FormType  string          `json:"formType"`
	Fields    map[string]bool `json:"validationResults"`
	IsValid   bool            `json:"isValid"`
	Timestamp time.Time       `json:"timestamp"`
	Page      string          `json:"page,omitempty"`
	UserAgent string          `json:"userAgent,omitempty"`
}
