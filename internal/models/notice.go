package models

// NoticeCategory names one of the notice board lists.
type NoticeCategory string

const (
	NoticeEvents    NoticeCategory = "events"
	NoticeNews      NoticeCategory = "news"
	NoticeReminders NoticeCategory = "reminders"
)

// NoticeCategories lists the board sections in display order.
var NoticeCategories = []NoticeCategory{NoticeEvents, NoticeNews, NoticeReminders}

// Valid reports whether c is a known board section.
func (c NoticeCategory) Valid() bool {
	switch c {
	case NoticeEvents, NoticeNews, NoticeReminders:
		return true
	}
	return false
}

// NoticeItem is a single line on the board.
type NoticeItem struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// NoticeBoard is the notice board document.
type NoticeBoard struct {
	Events    []NoticeItem `json:"events"`
	News      []NoticeItem `json:"news"`
	Reminders []NoticeItem `json:"reminders"`
}

// Items returns the list for category, or nil for an unknown category.
func (b *NoticeBoard) Items(category NoticeCategory) *[]NoticeItem {
	switch category {
	case NoticeEvents:
		return &b.Events
	case NoticeNews:
		return &b.News
	case NoticeReminders:
		return &b.Reminders
	}
	return nil
}

// NoticeItemRequest is the admin payload for adding a board line.
type NoticeItemRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}
