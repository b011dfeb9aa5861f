package models

import "time"

// Draft is an auto-saved snapshot of in-progress form values.
type Draft struct {
	Form    string            `json:"form"`
	Page    string            `json:"page"`
	Data    map[string]string `json:"data"`
	SavedAt time.Time         `json:"timestamp"`
}

// DraftRequest is the payload for auto-saving a form.
type DraftRequest struct {
	Page   string            `json:"page" validate:"max=300"`
	Values map[string]string `json:"values" validate:"required"`
}
