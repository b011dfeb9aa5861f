package models

// UserRole represents the roles understood by the RBAC middleware.
type UserRole string

const (
	// RoleAdmin is the single site administrator that edits content and reviews submissions.
	RoleAdmin UserRole = "ADMIN"
)

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// TotalPages reports how many pages TotalCount spans.
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}
