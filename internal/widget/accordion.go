// Package widget holds the state of the site's interactive page widgets.
// Views are always derived from state, never read back from markup.
package widget

import (
	"sort"
	"sync"
)

// AccordionAttrs are the ARIA attributes for one question/answer pair.
type AccordionAttrs struct {
	ID             string `json:"id"`
	QuestionID     string `json:"questionId"`
	AnswerID       string `json:"answerId"`
	AriaExpanded   bool   `json:"ariaExpanded"`
	AriaControls   string `json:"ariaControls"`
	AriaLabelledBy string `json:"ariaLabelledBy"`
}

// Accordion tracks which FAQ items are expanded.
type Accordion struct {
	mu   sync.RWMutex
	open map[string]struct{}
}

// NewAccordion returns an accordion with every item closed.
func NewAccordion() *Accordion {
	return &Accordion{open: make(map[string]struct{})}
}

// Toggle flips id and reports whether it is now open.
func (a *Accordion) Toggle(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.open[id]; ok {
		delete(a.open, id)
		return false
	}
	a.open[id] = struct{}{}
	return true
}

func (a *Accordion) Open(id string) {
	a.mu.Lock()
	a.open[id] = struct{}{}
	a.mu.Unlock()
}

func (a *Accordion) Close(id string) {
	a.mu.Lock()
	delete(a.open, id)
	a.mu.Unlock()
}

// OpenAll expands every id in ids.
func (a *Accordion) OpenAll(ids []string) {
	a.mu.Lock()
	for _, id := range ids {
		a.open[id] = struct{}{}
	}
	a.mu.Unlock()
}

func (a *Accordion) CloseAll() {
	a.mu.Lock()
	a.open = make(map[string]struct{})
	a.mu.Unlock()
}

func (a *Accordion) IsOpen(id string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.open[id]
	return ok
}

// OpenIDs lists the expanded ids in sorted order.
func (a *Accordion) OpenIDs() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ids := make([]string, 0, len(a.open))
	for id := range a.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Attrs renders the ARIA wiring for id.
func (a *Accordion) Attrs(id string) AccordionAttrs {
	question := "faq-question-" + id
	answer := "faq-answer-" + id
	return AccordionAttrs{
		ID:             id,
		QuestionID:     question,
		AnswerID:       answer,
		AriaExpanded:   a.IsOpen(id),
		AriaControls:   answer,
		AriaLabelledBy: question,
	}
}
