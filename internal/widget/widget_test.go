package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pips-site-api/internal/models"
)

func TestAccordion(t *testing.T) {
	a := NewAccordion()
	assert.True(t, a.Toggle("3"))
	assert.True(t, a.IsOpen("3"))
	assert.False(t, a.Toggle("3"))

	a.OpenAll([]string{"1", "2", "4"})
	assert.Equal(t, []string{"1", "2", "4"}, a.OpenIDs())
	a.Close("2")
	assert.False(t, a.IsOpen("2"))

	attrs := a.Attrs("1")
	assert.Equal(t, AccordionAttrs{
		ID:             "1",
		QuestionID:     "faq-question-1",
		AnswerID:       "faq-answer-1",
		AriaExpanded:   true,
		AriaControls:   "faq-answer-1",
		AriaLabelledBy: "faq-question-1",
	}, attrs)

	a.CloseAll()
	assert.Empty(t, a.OpenIDs())
	assert.False(t, a.Attrs("1").AriaExpanded)
}

func TestLightboxWrapsAndClamps(t *testing.T) {
	l := NewLightbox(17)
	l.Open(40)
	assert.Equal(t, 16, l.Index())
	l.Next()
	assert.Equal(t, 0, l.Index())
	l.Prev()
	assert.Equal(t, 16, l.Index())
	assert.Equal(t, "17 / 17", l.Counter())

	l.Open(-3)
	assert.Equal(t, 0, l.Index())
	assert.True(t, l.ToggleZoom())
	assert.True(t, l.ToggleSlideshow())
	l.Close()
	view := l.View()
	assert.False(t, view.Open)
	assert.False(t, view.Zoomed)
	assert.False(t, view.Slideshow)
	assert.Equal(t, int64(3000), view.SlideshowInterval)

	l.Open(10)
	l.SetCount(4)
	assert.Equal(t, 3, l.Index())
}

func TestLightboxEmptyGallery(t *testing.T) {
	l := NewLightbox(0)
	l.Open(5)
	l.Next()
	l.Prev()
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, "0 / 0", l.Counter())
}

func TestTabs(t *testing.T) {
	tabs := NewGradeTabs()
	assert.Equal(t, "grade-1", tabs.Active())
	assert.True(t, tabs.Show("grade-5"))
	assert.False(t, tabs.Show("grade-9"))
	assert.Equal(t, "grade-5", tabs.Active())
	assert.Len(t, tabs.View().IDs, 7)

	empty := NewTabs()
	assert.Equal(t, "", empty.Active())
	assert.False(t, empty.Show("x"))
}

func TestCarousel(t *testing.T) {
	c := NewCarousel(3)
	c.Prev()
	assert.Equal(t, 2, c.Index())
	c.Next()
	assert.Equal(t, 0, c.Index())
	c.GoTo(10)
	assert.Equal(t, 2, c.Index())
	c.GoTo(-1)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, CarouselView{Index: 0, Max: 2, Count: 3}, c.View(3))

	single := NewCarousel(0)
	single.Next()
	single.Prev()
	assert.Equal(t, 0, single.Index())
}

func TestNoticeModal(t *testing.T) {
	board := models.NoticeBoard{
		Events:    []models.NoticeItem{{ID: 1, Text: "Sports day"}},
		News:      []models.NoticeItem{{ID: 2, Text: "Library"}},
		Reminders: nil,
	}
	m := NewNoticeModal()

	view, err := m.Show(board, "")
	require.NoError(t, err)
	assert.Equal(t, "School Updates", view.Title)
	require.Len(t, view.Sections, 3)
	assert.Equal(t, "Upcoming Events", view.Sections[0].Heading)
	assert.NotNil(t, view.Sections[2].Items)

	titles := map[string]string{"events": "Upcoming Events", "news": "Latest News", "reminders": "Important Reminders"}
	for kind, title := range titles {
		view, err := m.Show(board, kind)
		require.NoError(t, err)
		assert.Equal(t, title, view.Title)
		require.Len(t, view.Sections, 1)
		assert.Equal(t, models.NoticeCategory(kind), view.Sections[0].Category)
	}

	_, err = m.Show(board, "gossip")
	assert.Error(t, err)

	m.Hide()
	assert.False(t, m.View().Visible)
}
