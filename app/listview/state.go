// Package listview holds the product list view: its state, the transitions
// user input drives, and the network sequences behind each operation.
package listview

import "github.com/mytheresa/product-price/app/client"

// Record is one row of the displayed collection.
type Record = client.Product

type Overlay int

const (
	OverlayClosed Overlay = iota
	OverlayOpen
)

func (o Overlay) String() string {
	if o == OverlayOpen {
		return "open"
	}
	return "closed"
}

// State is everything the view renders. Transitions return a new State and
// never perform I/O.
type State struct {
	Records []Record
	Draft   client.Draft
	Edit    Record
	Overlay Overlay
}

// NewState is the state on mount: no records, empty drafts, overlay closed.
func NewState() State {
	return State{}
}

func (s State) SetDraftTitle(v string) State {
	s.Draft.Title = v
	return s
}

func (s State) SetDraftPrice(v string) State {
	s.Draft.Price = v
	return s
}

// CanCreate reports whether the draft passes the presence check.
func (s State) CanCreate() bool {
	return s.Draft.Title != "" && s.Draft.Price != ""
}

// OpenEdit copies r into the edit draft and opens the overlay.
func (s State) OpenEdit(r Record) State {
	s.Edit = r
	s.Overlay = OverlayOpen
	return s
}

func (s State) SetEditTitle(v string) State {
	s.Edit.Title = v
	return s
}

func (s State) SetEditPrice(v string) State {
	s.Edit.Price = v
	return s
}

// CanUpdate reports whether the overlay is open with a complete edit draft.
func (s State) CanUpdate() bool {
	return s.Overlay == OverlayOpen && s.Edit.Title != "" && s.Edit.Price != ""
}

// CancelEdit closes the overlay and drops unsaved edits.
func (s State) CancelEdit() State {
	s.Edit = Record{}
	s.Overlay = OverlayClosed
	return s
}

// Apply folds the result of a network operation into the state. A failed
// mutation leaves the state untouched. A successful mutation applies its UI
// effect even when the reload that followed it failed.
func (s State) Apply(o Outcome) State {
	if o.Skipped || o.Err != nil {
		return s
	}

	switch o.Op {
	case OpCreate:
		s.Draft = client.Draft{}
	case OpUpdate:
		// A different record may have been opened while the request was in flight.
		if s.Overlay == OverlayOpen && s.Edit.ID.Equal(o.ID) {
			s = s.CancelEdit()
		}
	}

	if o.Loaded {
		s.Records = append([]Record(nil), o.Records...)
	}
	return s
}

// Find returns the displayed record with the given id.
func (s State) Find(id client.ID) (Record, bool) {
	for _, r := range s.Records {
		if r.ID.Equal(id) {
			return r, true
		}
	}
	return Record{}, false
}
