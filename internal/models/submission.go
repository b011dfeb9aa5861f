package models

import "time"

// SubmissionStatus tracks an accepted form submission through review.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusNew       SubmissionStatus = "new"
	StatusReviewed  SubmissionStatus = "reviewed"
	StatusContacted SubmissionStatus = "contacted"
	StatusAccepted  SubmissionStatus = "accepted"
	StatusRejected  SubmissionStatus = "rejected"
	StatusResponded SubmissionStatus = "responded"
	StatusClosed    SubmissionStatus = "closed"
)

// Valid reports whether s is a known status.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusNew, StatusReviewed, StatusContacted,
		StatusAccepted, StatusRejected, StatusResponded, StatusClosed:
		return true
	}
	return false
}

// FormSubmission is an accepted form post.
type FormSubmission struct {
	ID          string            `json:"id"`
	FormType    string            `json:"formType"`
	Data        map[string]string `json:"data"`
	Status      SubmissionStatus  `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
	Page        string            `json:"page,omitempty"`
	SessionID   string            `json:"sessionId,omitempty"`
	UserAgent   string            `json:"userAgent,omitempty"`
	ReviewedAt  *time.Time        `json:"reviewedAt,omitempty"`
}

// SubmissionMeta is request context recorded alongside a submission.
type SubmissionMeta struct {
	Page      string
	SessionID string
	UserAgent string
	IP        string
}

// UpdateSubmissionStatusRequest is the admin payload for moving a submission along.
type UpdateSubmissionStatusRequest struct {
	Status SubmissionStatus `json:"status" validate:"required,oneof=pending new reviewed contacted accepted rejected responded closed"`
}

// FormStats summarises one form's submissions.
type FormStats struct {
	Total          int                      `json:"total"`
	ByStatus       map[SubmissionStatus]int `json:"byStatus"`
	LastSubmission *time.Time               `json:"lastSubmission,omitempty"`
}

// ValidationStats summarises logged validation attempts.
type ValidationStats struct {
	TotalAttempts int     `json:"totalAttempts"`
	SuccessRate   float64 `json:"successRate"`
}

// FormStatistics is the admin dashboard summary.
type FormStatistics struct {
	Forms      map[string]FormStats `json:"forms"`
	Validation ValidationStats      `json:"validation"`
}

// Backup is the JSON export of every submission list and the validation log.
type Backup struct {
	Admissions     []FormSubmission `json:"admissions"`
	Contacts       []FormSubmission `json:"contacts"`
	Enquiries      []FormSubmission `json:"enquiries"`
	Volunteers     []FormSubmission `json:"volunteers"`
	Sponsors       []FormSubmission `json:"sponsors"`
	ValidationLogs []ValidationLog  `json:"validationLogs"`
	ExportedAt     time.Time        `json:"exportedAt"`
}

// ExportRequest asks for a rendered submission export.
type ExportRequest struct {
	Form   string `json:"form" validate:"required"`
	Format string `json:"format" validate:"omitempty,oneof=csv pdf"`
}

// ExportResult points at a rendered export.
type ExportResult struct {
	FileName    string    `json:"fileName"`
	Records     int       `json:"records"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// SubmitRequest is the public form post. Values are keyed by field name.
type SubmitRequest struct {
	Values    map[string]string `json:"values"`
	Page      string            `json:"page"`
	SessionID string            `json:"sessionId"`
}

// FieldCheckRequest asks for a single field to be validated.
type FieldCheckRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
