package manifold

import "fmt"

// ViewID identifies a browsable view: one manifest's closure, or the
// all-attributes view.
type ViewID string

// AttributesView is the default view listing every schema attribute.
// It is always available and cannot be closed.
const AttributesView ViewID = "attributes"

// ViewState is the explicit state of the schema browser: which views
// are open and which one is active. It replaces ad hoc tab-tracking
// component state with a small value-semantics state machine.
//
// Invariants maintained by the transitions:
//   - Active is AttributesView or a member of Open.
//   - Open is an ordered set (open order, no duplicates) that never
//     contains AttributesView.
type ViewState struct {
	Active ViewID
	Open   []ViewID
}

// NewViewState returns the initial state: no open manifest views, the
// all-attributes view active.
func NewViewState() ViewState {
	return ViewState{Active: AttributesView}
}

// OpenView opens the view and makes it active. Opening a view that is
// already open just activates it; opening AttributesView is equivalent
// to SelectView(AttributesView).
func (s ViewState) OpenView(id ViewID) ViewState {
	if id == AttributesView {
		s.Active = AttributesView
		return s
	}

	if !s.isOpen(id) {
		open := make([]ViewID, len(s.Open), len(s.Open)+1)
		copy(open, s.Open)
		s.Open = append(open, id)
	}
	s.Active = id
	return s
}

// CloseView closes the view. Closing the active view falls back to the
// most recently opened remaining view, or to AttributesView when no
// views remain open. Closing AttributesView or a view that is not open
// is a no-op.
func (s ViewState) CloseView(id ViewID) ViewState {
	if id == AttributesView || !s.isOpen(id) {
		return s
	}

	open := make([]ViewID, 0, len(s.Open)-1)
	for _, v := range s.Open {
		if v != id {
			open = append(open, v)
		}
	}
	s.Open = open

	if s.Active == id {
		if len(open) > 0 {
			s.Active = open[len(open)-1]
		} else {
			s.Active = AttributesView
		}
	}
	return s
}

// SelectView activates an already-open view or the attributes view.
// Selecting a view that is not open returns an ErrUnknownView error and
// leaves the state unchanged.
func (s ViewState) SelectView(id ViewID) (ViewState, error) {
	if id == AttributesView {
		s.Active = AttributesView
		return s, nil
	}
	if !s.isOpen(id) {
		return s, fmt.Errorf("%w: %s is not open", ErrUnknownView, id)
	}
	s.Active = id
	return s, nil
}

func (s ViewState) isOpen(id ViewID) bool {
	for _, v := range s.Open {
		if v == id {
			return true
		}
	}
	return false
}
