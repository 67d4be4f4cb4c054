package listview

// DetailMode is the modal's local state. The zero value means no modal is
// open and the plain list is showing.
type DetailMode int

const (
	ModeClosed DetailMode = iota
	ModeView
	ModeEdit
	ModeCreate
)

// DetailState is the modal beside a list: which row is selected and whether
// it is shown read-only, being edited in the shared form, or drafting a new
// record. After a refetch the selected record is re-located by id so the
// modal never keeps a stale snapshot of a row that left the page.
type DetailState struct {
	mode DetailMode
	id   uint
}

func (d *DetailState) Mode() DetailMode { return d.mode }

// Selected returns the id of the record in the modal and whether an existing
// record is open. A create draft has no id yet.
func (d *DetailState) Selected() (uint, bool) {
	if d.mode == ModeView || d.mode == ModeEdit {
		return d.id, true
	}
	return 0, false
}

// Open shows a record read-only. Opening while another record is displayed
// replaces it.
func (d *DetailState) Open(id uint) {
	d.id = id
	d.mode = ModeView
}

// Edit switches the viewed record into the shared form. No-op unless a
// record is being viewed.
func (d *DetailState) Edit() {
	if d.mode == ModeView {
		d.mode = ModeEdit
	}
}

// Create opens the shared form on a blank record. Only valid from the list.
func (d *DetailState) Create() {
	if d.mode == ModeClosed {
		d.mode = ModeCreate
	}
}

// Save leaves the form: an edited record returns to its read-only view, a
// created one returns to the list, where the refetch will surface it.
func (d *DetailState) Save() {
	switch d.mode {
	case ModeEdit:
		d.mode = ModeView
	case ModeCreate:
		d.mode = ModeClosed
	}
}

// Cancel discards the form and lands where Save would.
func (d *DetailState) Cancel() {
	switch d.mode {
	case ModeEdit:
		d.mode = ModeView
	case ModeCreate:
		d.mode = ModeClosed
	}
}

// Close drops back to the plain list from any state.
func (d *DetailState) Close() {
	d.mode = ModeClosed
	d.id = 0
}

// Resync re-locates the displayed record among freshly fetched row ids. When
// the record is no longer on the page the modal closes instead of showing a
// stale copy.
func (d *DetailState) Resync(ids []uint) {
	sel, ok := d.Selected()
	if !ok {
		return
	}
	for _, id := range ids {
		if id == sel {
			return
		}
	}
	d.Close()
}
