package widget

// GradeTabIDs are the subject tabs on the academics page.
var GradeTabIDs = []string{"grade-1", "grade-2", "grade-3", "grade-4", "grade-5", "grade-6", "grade-7"}

// TabsView is the rendered tab strip.
type TabsView struct {
	IDs    []string `json:"ids"`
	Active string   `json:"active"`
}

// Tabs is an ordered set of ids with exactly one active.
type Tabs struct {
	ids    []string
	active string
}

// NewTabs activates the first id.
func NewTabs(ids ...string) *Tabs {
	t := &Tabs{ids: append([]string(nil), ids...)}
	if len(ids) > 0 {
		t.active = ids[0]
	}
	return t
}

// NewGradeTabs returns the grade tabs with grade-1 active.
func NewGradeTabs() *Tabs {
	return NewTabs(GradeTabIDs...)
}

// Show activates id. Unknown ids leave the current tab in place.
func (t *Tabs) Show(id string) bool {
	for _, known := range t.ids {
		if known == id {
			t.active = id
			return true
		}
	}
	return false
}

func (t *Tabs) Active() string { return t.active }

func (t *Tabs) View() TabsView {
	return TabsView{IDs: append([]string(nil), t.ids...), Active: t.active}
}
