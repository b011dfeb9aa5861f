package widget

// CarouselView is the rendered carousel position.
type CarouselView struct {
	Index int `json:"index"`
	Max   int `json:"max"`
	Count int `json:"count"`
}

// Carousel steps through count slides with wrap-around.
type Carousel struct {
	index int
	max   int
}

// NewCarousel returns a carousel over count slides positioned on the first.
func NewCarousel(count int) *Carousel {
	last := count - 1
	if last < 0 {
		last = 0
	}
	return &Carousel{max: last}
}

func (c *Carousel) Next() {
	if c.index >= c.max {
		c.index = 0
		return
	}
	c.index++
}

func (c *Carousel) Prev() {
	if c.index <= 0 {
		c.index = c.max
		return
	}
	c.index--
}

// GoTo jumps to i, clamped into [0, max].
func (c *Carousel) GoTo(i int) {
	switch {
	case i < 0:
		c.index = 0
	case i > c.max:
		c.index = c.max
	default:
		c.index = i
	}
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) View(count int) CarouselView {
	return CarouselView{Index: c.index, Max: c.max, Count: count}
}
