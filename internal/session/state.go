// Package session holds the interaction state machine of the materials
// comparison client: the view controller, the search manager, the selection
// set and the popular list.
//
// Every transition is a pure function over a State value. Nothing here
// performs I/O; callers issue the network requests a transition asks for and
// feed the outcome back in.
package session

import (
	"unicode/utf8"

	"github.com/rshade/matcompare/internal/backend"
	"github.com/rshade/matcompare/internal/materials"
)

// MinQueryLength is the shortest query, in characters, that triggers a search.
const MinQueryLength = 2

// SearchFailedMessage is shown when a search fails without a backend message.
const SearchFailedMessage = "Search failed"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrQueryTooShort is returned by CheckQuery for queries below MinQueryLength.
const ErrQueryTooShort = constError("query must be at least 2 characters long")

// Page is the view currently shown.
type Page int

const (
	// PageHome is the search and selection view.
	PageHome Page = iota
	// PageComparison is the side-by-side comparison view.
	PageComparison
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageComparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// Phase is the coarse state of the interaction, derived from State.
type Phase int

const (
	// PhaseSearching means nothing is selected yet.
	PhaseSearching Phase = iota
	// PhaseSelecting means one or two materials are staged on the home view.
	PhaseSelecting
	// PhaseComparing means the comparison view is shown.
	PhaseComparing
)

func (p Phase) String() string {
	switch p {
	case PhaseSearching:
		return "searching"
	case PhaseSelecting:
		return "selecting"
	case PhaseComparing:
		return "comparing"
	default:
		return "unknown"
	}
}

// Ticket identifies one issued search. Tickets increase monotonically; only
// the most recently issued ticket may update the search results.
type Ticket uint64

// State is the complete client state for one session.
type State struct {
	Page      Page
	Query     string
	Results   []materials.Material
	Loading   bool
	Error     string
	Selection Selection
	Popular   []materials.Material

	latest Ticket
}

// New returns the initial state: home page, nothing selected.
func New() State {
	return State{Page: PageHome}
}

// CheckQuery returns ErrQueryTooShort when q cannot be searched.
func CheckQuery(q string) error {
	if utf8.RuneCountInString(q) < MinQueryLength {
		return ErrQueryTooShort
	}
	return nil
}

// Phase derives the interaction phase.
func (s State) Phase() Phase {
	switch {
	case s.Page == PageComparison:
		return PhaseComparing
	case s.Selection.Len() > 0:
		return PhaseSelecting
	default:
		return PhaseSearching
	}
}

// Latest returns the most recently issued search ticket.
func (s State) Latest() Ticket { return s.latest }

// SetQuery records the query text as typed. It never touches results.
func (s State) SetQuery(q string) State {
	s.Query = q
	return s
}

// BeginSearch starts a search for query. Queries shorter than MinQueryLength
// are a no-op: the state is returned unchanged and ok is false. Otherwise
// loading is set, the error cleared, and a fresh ticket returned; the caller
// must pass that ticket back to ApplySearch with the outcome.
func (s State) BeginSearch(query string) (State, Ticket, bool) {
	if CheckQuery(query) != nil {
		return s, 0, false
	}
	s.latest++
	s.Loading = true
	s.Error = ""
	return s, s.latest, true
}

// ApplySearch applies the outcome of the search identified by t. Outcomes
// for superseded tickets are discarded and accepted is false.
//
// On success the results are replaced wholesale. On a backend-reported
// failure the backend's message is shown; on any other failure the generic
// SearchFailedMessage is. Both failures clear the results.
func (s State) ApplySearch(t Ticket, results []materials.Material, err error) (State, bool) {
	if t == 0 || t != s.latest {
		return s, false
	}

	s.Loading = false
	if err != nil {
		msg, ok := backend.Message(err)
		if !ok {
			msg = SearchFailedMessage
		}
		s.Error = msg
		s.Results = nil
		return s, true
	}

	s.Error = ""
	s.Results = results
	return s, true
}

// ApplyPopular stores the popular list. Failures leave the list empty and are
// only reported to the caller for logging.
func (s State) ApplyPopular(list []materials.Material, err error) State {
	if err != nil {
		return s
	}
	s.Popular = list
	return s
}

// AddMaterial stages m for comparison unless the selection is full or
// already holds m.ID. Whatever the outcome, the query and the results are
// cleared and any in-flight search is superseded.
func (s State) AddMaterial(m materials.Material) (State, bool) {
	var added bool
	s.Selection, added = s.Selection.Add(m)

	s.Query = ""
	s.Results = nil
	if s.Loading {
		s.latest++
		s.Loading = false
	}
	return s, added
}

// RemoveMaterial unstages the material with the given id, if present.
func (s State) RemoveMaterial(id string) (State, bool) {
	var removed bool
	s.Selection, removed = s.Selection.Remove(id)
	return s, removed
}

// CanCompare reports whether StartComparison would switch pages.
func (s State) CanCompare() bool {
	return s.Page == PageHome && s.Selection.Len() == MaxSelection
}

// StartComparison switches to the comparison page when exactly two materials
// are selected. Otherwise the state is unchanged.
func (s State) StartComparison() (State, bool) {
	if s.Selection.Len() != MaxSelection {
		return s, false
	}
	changed := s.Page != PageComparison
	s.Page = PageComparison
	return s, changed
}

// BackToSearch returns to the home page. The selection is kept.
func (s State) BackToSearch() State {
	s.Page = PageHome
	return s
}
