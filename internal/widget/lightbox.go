package widget

import (
	"fmt"
	"time"
)

// SlideshowInterval is how long each image stays up while the slideshow runs.
const SlideshowInterval = 3 * time.Second

// LightboxView is the rendered lightbox state.
type LightboxView struct {
	Index             int    `json:"index"`
	Count             int    `json:"count"`
	Open              bool   `json:"open"`
	Zoomed            bool   `json:"zoomed"`
	Slideshow         bool   `json:"slideshow"`
	Counter           string `json:"counter"`
	SlideshowInterval int64  `json:"slideshowIntervalMs"`
}

// Lightbox is the full-screen gallery viewer. The index always lies in
// [0, count), or is 0 for an empty gallery.
type Lightbox struct {
	count     int
	index     int
	open      bool
	zoomed    bool
	slideshow bool
}

// NewLightbox returns a closed lightbox over count images.
func NewLightbox(count int) *Lightbox {
	if count < 0 {
		count = 0
	}
	return &Lightbox{count: count}
}

// SetCount resizes the gallery and pulls the index back into range.
func (l *Lightbox) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	l.count = count
	l.index = l.clamp(l.index)
}

func (l *Lightbox) clamp(i int) int {
	if l.count == 0 || i < 0 {
		return 0
	}
	if i >= l.count {
		return l.count - 1
	}
	return i
}

// Open shows image i, clamped into range.
func (l *Lightbox) Open(i int) {
	l.index = l.clamp(i)
	l.open = true
}

// Close hides the lightbox and resets zoom and slideshow.
func (l *Lightbox) Close() {
	l.open = false
	l.zoomed = false
	l.slideshow = false
}

func (l *Lightbox) Next() {
	if l.count == 0 {
		return
	}
	l.index = (l.index + 1) % l.count
}

func (l *Lightbox) Prev() {
	if l.count == 0 {
		return
	}
	l.index = (l.index - 1 + l.count) % l.count
}

func (l *Lightbox) ToggleZoom() bool {
	l.zoomed = !l.zoomed
	return l.zoomed
}

func (l *Lightbox) ToggleSlideshow() bool {
	l.slideshow = !l.slideshow
	return l.slideshow
}

func (l *Lightbox) Index() int { return l.index }

// Counter renders the "3 / 17" caption.
func (l *Lightbox) Counter() string {
	if l.count == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", l.index+1, l.count)
}

func (l *Lightbox) View() LightboxView {
	return LightboxView{
		Index:             l.index,
		Count:             l.count,
		Open:              l.open,
		Zoomed:            l.zoomed,
		Slideshow:         l.slideshow,
		Counter:           l.Counter(),
		SlideshowInterval: SlideshowInterval.Milliseconds(),
	}
}
