package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncerEmitsOnceAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(500 * time.Millisecond)
	now := time.Now()

	d.Input("b", now)
	d.Input("be", now.Add(100*time.Millisecond))
	d.Input("bea", now.Add(200*time.Millisecond))
	d.Input("beach", now.Add(300*time.Millisecond))

	// Still inside the settle window of the last keystroke.
	_, ok := d.Poll(now.Add(700 * time.Millisecond))
	require.False(t, ok)
	require.True(t, d.Pending())

	val, ok := d.Poll(now.Add(800 * time.Millisecond))
	require.True(t, ok)
	require.Equal(t, "beach", val)

	// The settled value is reported exactly once.
	_, ok = d.Poll(now.Add(time.Second))
	require.False(t, ok)
	require.False(t, d.Pending())
}

func TestDebouncerNewInputRestartsWindow(t *testing.T) {
	d := NewDebouncer(0) // falls back to DefaultSettleDelay
	now := time.Now()

	d.Input("a", now)
	val, ok := d.Poll(now.Add(DefaultSettleDelay))
	require.True(t, ok)
	require.Equal(t, "a", val)

	d.Input("ab", now.Add(time.Second))
	_, ok = d.Poll(now.Add(time.Second + DefaultSettleDelay - time.Millisecond))
	require.False(t, ok)
	val, ok = d.Poll(now.Add(time.Second + DefaultSettleDelay))
	require.True(t, ok)
	require.Equal(t, "ab", val)
}

func TestFenceDiscardsStaleResponses(t *testing.T) {
	var f Fence

	first := f.Issue()
	second := f.Issue()

	// The newer request's response lands first and is rendered.
	require.True(t, f.Admit(second))
	// The slow first response arrives last and is discarded.
	require.False(t, f.Admit(first))
	// A token is admitted at most once.
	require.False(t, f.Admit(second))
}

func TestFenceAdmitsOnlyLatest(t *testing.T) {
	var f Fence
	tokens := make([]uint64, 5)
	for i := range tokens {
		tokens[i] = f.Issue()
	}
	for _, tok := range tokens[:4] {
		require.False(t, f.Admit(tok))
	}
	require.True(t, f.Admit(tokens[4]))
}

func TestFilterStateApplyResetsPage(t *testing.T) {
	s := NewFilterState(map[string]string{"status": "all", "category": "all"})
	s.SetPage(4)

	s.OpenEditor()
	require.True(t, s.EditorOpen())
	s.SetDraft("status", "active")

	// Nothing applied until commit.
	require.Equal(t, "all", s.Applied()["status"])
	require.Equal(t, 4, s.Page)

	s.Apply()
	require.False(t, s.EditorOpen())
	require.Equal(t, "active", s.Applied()["status"])
	require.Equal(t, 1, s.Page)
}

func TestFilterStateResetDraftsDefaultsWithoutApplying(t *testing.T) {
	s := NewFilterState(map[string]string{"status": "all"})
	s.OpenEditor()
	s.SetDraft("status", "inactive")
	s.Apply()
	require.Equal(t, "inactive", s.Applied()["status"])

	s.OpenEditor()
	s.Reset()
	// Reset only stages the defaults; the applied set is untouched.
	require.Equal(t, "inactive", s.Applied()["status"])
	s.Apply()
	require.Equal(t, "all", s.Applied()["status"])
}

func TestFilterStateQueryAndSortResetPageOnlyOnChange(t *testing.T) {
	s := NewFilterState(nil)
	s.SetPage(3)

	s.SetQuery("beach")
	require.Equal(t, 1, s.Page)

	s.SetPage(2)
	s.SetQuery("beach") // unchanged, page stays
	require.Equal(t, 2, s.Page)

	s.SetSort("value", "desc")
	require.Equal(t, 1, s.Page)
	s.SetPage(5)
	s.SetSort("value", "desc")
	require.Equal(t, 5, s.Page)
}

func TestFilterStateActiveCountGroupsRangesAndSkipsSentinels(t *testing.T) {
	s := NewFilterState(map[string]string{
		"status":    "all",
		"category":  "all",
		"valueFrom": "",
		"valueTo":   "",
	})

	require.Zero(t, s.ActiveCount())

	s.OpenEditor()
	s.SetDraft("status", "active")
	s.SetDraft("valueFrom", "100")
	s.SetDraft("valueTo", "900")
	s.Apply()

	// status is one category; the two range bounds are one more.
	require.Equal(t, 2, s.ActiveCount())

	s.OpenEditor()
	s.SetDraft("valueTo", "")
	s.Apply()
	// One bound set still counts the range once.
	require.Equal(t, 2, s.ActiveCount())

	s.OpenEditor()
	s.SetDraft("status", "ALL")
	s.SetDraft("valueFrom", "")
	s.Apply()
	require.Zero(t, s.ActiveCount())
}

func TestDetailEditSaveAndCancelReturnToView(t *testing.T) {
	var d DetailState
	require.Equal(t, ModeClosed, d.Mode())

	d.Open(7)
	require.Equal(t, ModeView, d.Mode())
	id, ok := d.Selected()
	require.True(t, ok)
	require.Equal(t, uint(7), id)

	d.Edit()
	require.Equal(t, ModeEdit, d.Mode())
	d.Save()
	require.Equal(t, ModeView, d.Mode())

	d.Edit()
	d.Cancel()
	require.Equal(t, ModeView, d.Mode())
	id, _ = d.Selected()
	require.Equal(t, uint(7), id)

	d.Close()
	require.Equal(t, ModeClosed, d.Mode())
	_, ok = d.Selected()
	require.False(t, ok)
}

func TestDetailCreateReturnsToList(t *testing.T) {
	var d DetailState
	d.Create()
	require.Equal(t, ModeCreate, d.Mode())
	_, ok := d.Selected()
	require.False(t, ok)
	d.Save()
	require.Equal(t, ModeClosed, d.Mode())

	d.Create()
	d.Cancel()
	require.Equal(t, ModeClosed, d.Mode())
}

func TestDetailIgnoresOutOfOrderTransitions(t *testing.T) {
	var d DetailState

	// Edit needs an open record; Create needs the plain list.
	d.Edit()
	require.Equal(t, ModeClosed, d.Mode())
	d.Open(3)
	d.Create()
	require.Equal(t, ModeView, d.Mode())
}

func TestDetailResyncFollowsRefetch(t *testing.T) {
	var d DetailState
	d.Open(12)
	d.Edit()

	// The record is still on the refetched page: selection holds.
	d.Resync([]uint{10, 12, 14})
	require.Equal(t, ModeEdit, d.Mode())
	id, ok := d.Selected()
	require.True(t, ok)
	require.Equal(t, uint(12), id)

	// It dropped off the page: the modal closes rather than go stale.
	d.Resync([]uint{10, 14})
	require.Equal(t, ModeClosed, d.Mode())
	_, ok = d.Selected()
	require.False(t, ok)

	// Resync with nothing open is harmless.
	d.Resync(nil)
	require.Equal(t, ModeClosed, d.Mode())
}
