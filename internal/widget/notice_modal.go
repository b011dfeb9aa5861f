package widget

import (
	"fmt"

	"github.com/noah-isme/pips-site-api/internal/models"
)

// ModalAll shows every notice section.
const ModalAll = "all"

var sectionTitles = map[models.NoticeCategory]string{
	models.NoticeEvents:    "Upcoming Events",
	models.NoticeNews:      "Latest News",
	models.NoticeReminders: "Important Reminders",
}

// ModalSection is one list in the notice modal.
type ModalSection struct {
	Category models.NoticeCategory `json:"category"`
	Heading  string                `json:"heading"`
	Items    []models.NoticeItem   `json:"items"`
}

// NoticeModalView is the rendered modal.
type NoticeModalView struct {
	Visible  bool           `json:"visible"`
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Sections []ModalSection `json:"sections"`
}

// NoticeModal is the pop-up summary of the notice board.
type NoticeModal struct {
	view NoticeModalView
}

func NewNoticeModal() *NoticeModal {
	return &NoticeModal{}
}

// Show opens the modal on kind, which is "all" or a notice category.
func (m *NoticeModal) Show(board models.NoticeBoard, kind string) (NoticeModalView, error) {
	if kind == "" {
		kind = ModalAll
	}
	view := NoticeModalView{Visible: true, Type: kind, Title: "School Updates"}
	if kind != ModalAll {
		category := models.NoticeCategory(kind)
		title, ok := sectionTitles[category]
		if !ok {
			return NoticeModalView{}, fmt.Errorf("unknown notice type %q", kind)
		}
		view.Title = title
	}
	for _, category := range models.NoticeCategories {
		if kind != ModalAll && string(category) != kind {
			continue
		}
		items := board.Items(category)
		section := ModalSection{Category: category, Heading: sectionTitles[category], Items: []models.NoticeItem{}}
		if items != nil {
			section.Items = append(section.Items, *items...)
		}
		view.Sections = append(view.Sections, section)
	}
	m.view = view
	return view, nil
}

func (m *NoticeModal) Hide() {
	m.view = NoticeModalView{}
}

func (m *NoticeModal) View() NoticeModalView {
	return m.view
}
