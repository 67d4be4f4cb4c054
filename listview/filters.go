// Package listview models the client-side contracts of an admin list screen:
// the draft/applied filter object, search debouncing and stale-response
// fencing. It is framework-free so front ends and tests can drive it without
// timers or a UI runtime.
package listview

import "strings"

// FilterState mirrors the applied filter object with an editable draft.
// Range filters follow the key+"From"/key+"To" naming convention so a pair of
// bounds counts as one filter category.
type FilterState struct {
	defaults map[string]string
	applied  map[string]string
	draft    map[string]string

	Page      int
	Query     string
	SortBy    string
	SortOrder string

	editorOpen bool
}

func NewFilterState(defaults map[string]string) *FilterState {
	s := &FilterState{
		defaults: copyMap(defaults),
		applied:  copyMap(defaults),
		draft:    copyMap(defaults),
		Page:     1,
	}
	return s
}

// OpenEditor seeds the draft from the currently applied filters.
func (s *FilterState) OpenEditor() {
	s.draft = copyMap(s.applied)
	s.editorOpen = true
}

func (s *FilterState) EditorOpen() bool { return s.editorOpen }

// SetDraft stages a filter value; nothing is applied until Apply.
func (s *FilterState) SetDraft(key, value string) {
	s.draft[key] = value
}

// Apply commits the draft, closes the editor and resets to the first page so
// a stale page number is never combined with new criteria.
func (s *FilterState) Apply() {
	s.applied = copyMap(s.draft)
	s.editorOpen = false
	s.Page = 1
}

// Reset returns the draft to the defaults. It does not apply; the user still
// has to commit.
func (s *FilterState) Reset() {
	s.draft = copyMap(s.defaults)
}

// SetQuery records the (already debounced) search text and resets the page.
func (s *FilterState) SetQuery(q string) {
	if q == s.Query {
		return
	}
	s.Query = q
	s.Page = 1
}

// SetSort records the sort key/direction and resets the page.
func (s *FilterState) SetSort(by, order string) {
	if by == s.SortBy && order == s.SortOrder {
		return
	}
	s.SortBy = by
	s.SortOrder = order
	s.Page = 1
}

func (s *FilterState) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	s.Page = p
}

// Applied returns a copy of the committed filters.
func (s *FilterState) Applied() map[string]string {
	return copyMap(s.applied)
}

// ActiveCount counts active filter categories for the badge. A min/max range
// is one category when either bound is set; sentinel values do not count.
func (s *FilterState) ActiveCount() int {
	seen := make(map[string]bool)
	for key, val := range s.applied {
		if inactive(val) {
			continue
		}
		seen[categoryOf(key)] = true
	}
	return len(seen)
}

func categoryOf(key string) string {
	if strings.HasSuffix(key, "From") {
		return strings.TrimSuffix(key, "From")
	}
	if strings.HasSuffix(key, "To") {
		return strings.TrimSuffix(key, "To")
	}
	return key
}

func inactive(v string) bool {
	return v == "" || strings.EqualFold(v, "all")
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
