// Package tui implements the interactive materials search and comparison
// client on Bubble Tea.
//
// The model is a thin shell around session.State: key presses and network
// results are translated into session transitions, and every request the
// state machine asks for is issued as a tea.Cmd.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/matcompare/internal/logging"
	"github.com/rshade/matcompare/internal/materials"
	"github.com/rshade/matcompare/internal/session"
)

// Catalog is the backend surface the TUI needs.
type Catalog interface {
	Popular(ctx context.Context) ([]materials.Material, error)
	Search(ctx context.Context, query string) ([]materials.Material, error)
}

// Default dimensions until the first WindowSizeMsg arrives.
const (
	defaultWidth   = 80
	defaultHeight  = 24
	queryCharLimit = 64
)

// focusArea is the home-view panel receiving key presses.
type focusArea int

const (
	focusSearch focusArea = iota
	focusResults
	focusSelected
	focusPopular
	focusAreaCount
)

func (f focusArea) String() string {
	switch f {
	case focusSearch:
		return "search"
	case focusResults:
		return "results"
	case focusSelected:
		return "selected"
	case focusPopular:
		return "popular"
	default:
		return "unknown"
	}
}

// popularLoadedMsg carries the outcome of the one-shot popular fetch.
type popularLoadedMsg struct {
	materials []materials.Material
	err       error
}

// searchResultMsg carries the outcome of one search request.
type searchResultMsg struct {
	ticket    session.Ticket
	query     string
	materials []materials.Material
	err       error
}

// Model is the Bubble Tea model for the materials client.
type Model struct {
	ctx          context.Context
	cancel       context.CancelFunc
	searchCancel context.CancelFunc

	catalog Catalog
	logger  zerolog.Logger

	state session.State

	input   textinput.Model
	loading *LoadingState
	keys    keyMap
	help    help.Model

	focus          focusArea
	resultCursor   int
	selectedCursor int
	popularCursor  int

	width    int
	height   int
	quitting bool
}

// NewModel returns a model that loads data through catalog. Requests are
// bound to ctx; quitting the program cancels them.
func NewModel(ctx context.Context, catalog Catalog, logger zerolog.Logger) *Model {
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = "Search by formula (e.g., Si, Fe2O3) or element (e.g., Fe)"
	ti.Prompt = "› "
	ti.CharLimit = queryCharLimit
	ti.Width = defaultWidth - 10
	ti.Focus()

	return &Model{
		ctx:     ctx,
		cancel:  cancel,
		catalog: catalog,
		logger:  logging.ComponentLogger(logger, "tui"),
		state:   session.New(),
		input:   ti,
		loading: NewLoadingState("Searching..."),
		keys:    newKeyMap(),
		help:    help.New(),
		focus:   focusSearch,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// State returns the current session state.
func (m *Model) State() session.State { return m.state }

// Init starts the popular-materials fetch and the cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPopular(), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case popularLoadedMsg:
		return m.handlePopularLoaded(msg)

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		return m, m.loading.Update(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.focus == focusSearch && m.state.Page == session.PageHome {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handlePopularLoaded(msg popularLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn().Ctx(m.ctx).Err(msg.err).Msg("failed to fetch popular materials")
	} else {
		m.logger.Debug().Ctx(m.ctx).Int("count", len(msg.materials)).Msg("popular materials loaded")
	}
	m.state = m.state.ApplyPopular(msg.materials, msg.err)
	m.popularCursor = clamp(m.popularCursor, len(m.state.Popular))
	return m, nil
}

func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	var accepted bool
	m.state, accepted = m.state.ApplySearch(msg.ticket, msg.materials, msg.err)
	if !accepted {
		m.logger.Debug().Ctx(m.ctx).
			Str("query", msg.query).
			Uint64("ticket", uint64(msg.ticket)).
			Msg("discarding stale search response")
		return m, nil
	}

	if m.searchCancel != nil {
		m.searchCancel()
		m.searchCancel = nil
	}
	if msg.err != nil {
		m.logger.Warn().Ctx(m.ctx).Err(msg.err).Str("query", msg.query).Msg("search failed")
	}
	m.resultCursor = 0
	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.state.Page == session.PageComparison {
		return m.handleComparisonKey(msg)
	}
	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleComparisonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.state = m.state.BackToSearch()
		return m, m.setFocus(focusSearch)
	}
	return m, nil
}

// handleSearchKey routes keys while the query input has focus. Anything not
// bound is edited into the query, and a changed query may start a search.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(m.nextFocus(1))
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(m.nextFocus(-1))
	case msg.Type == tea.KeyDown && len(m.state.Results) > 0:
		return m, m.setFocus(focusResults)
	case msg.Type == tea.KeyEnter:
		if r, ok := at(m.state.Results, m.resultCursor); ok {
			return m.addMaterial(r)
		}
		return m, nil
	case msg.Type == tea.KeyCtrlO:
		return m.startComparison()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.queryChanged(after))
}

// handleListKey routes keys for the results, selected and popular panels.
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(m.nextFocus(1))
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(m.nextFocus(-1))
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.Compare):
		return m.startComparison()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.verticalStep())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.verticalStep())
	case key.Matches(msg, m.keys.Left):
		if m.focus == focusPopular {
			m.moveCursor(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if m.focus == focusPopular {
			m.moveCursor(1)
		}
	case key.Matches(msg, m.keys.Select):
		return m.activate()
	case key.Matches(msg, m.keys.Remove):
		if m.focus == focusSelected {
			return m.removeAtCursor()
		}
	}
	return m, nil
}

// activate performs the enter action of the focused panel.
func (m *Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusResults:
		if r, ok := at(m.state.Results, m.resultCursor); ok {
			return m.addMaterial(r)
		}
	case focusPopular:
		if p, ok := at(m.state.Popular, m.popularCursor); ok {
			return m.addMaterial(p)
		}
	case focusSelected:
		return m.removeAtCursor()
	case focusSearch, focusAreaCount:
	}
	return m, nil
}

// queryChanged records the new query and starts a search when it is long
// enough. Shorter queries change nothing but the text.
func (m *Model) queryChanged(query string) tea.Cmd {
	m.state = m.state.SetQuery(query)

	next, ticket, ok := m.state.BeginSearch(query)
	if !ok {
		return nil
	}
	m.state = next
	return tea.Batch(m.search(ticket, query), m.loading.Tick())
}

// search issues the request for ticket, cancelling the superseded one.
func (m *Model) search(ticket session.Ticket, query string) tea.Cmd {
	if m.searchCancel != nil {
		m.searchCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.searchCancel = cancel

	// Capture before the goroutine; the closure must not touch the model.
	catalog := m.catalog
	m.logger.Debug().Ctx(ctx).Str("query", query).Uint64("ticket", uint64(ticket)).Msg("search issued")

	return func() tea.Msg {
		results, err := catalog.Search(ctx, query)
		return searchResultMsg{ticket: ticket, query: query, materials: results, err: err}
	}
}

func (m *Model) fetchPopular() tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog
	return func() tea.Msg {
		list, err := catalog.Popular(ctx)
		return popularLoadedMsg{materials: list, err: err}
	}
}

// addMaterial stages mat and resets the search panel.
func (m *Model) addMaterial(mat materials.Material) (tea.Model, tea.Cmd) {
	var added bool
	m.state, added = m.state.AddMaterial(mat)
	m.input.SetValue("")
	m.resultCursor = 0
	if m.searchCancel != nil {
		m.searchCancel()
		m.searchCancel = nil
	}

	m.logger.Debug().Ctx(m.ctx).
		Str("material_id", mat.ID).
		Bool("added", added).
		Int("selected", m.state.Selection.Len()).
		Msg("add material")

	if m.focus == focusResults {
		return m, m.setFocus(focusSearch)
	}
	return m, nil
}

func (m *Model) removeAtCursor() (tea.Model, tea.Cmd) {
	sel, ok := m.state.Selection.At(m.selectedCursor)
	if !ok {
		return m, nil
	}
	m.state, _ = m.state.RemoveMaterial(sel.ID)
	m.selectedCursor = clamp(m.selectedCursor, m.state.Selection.Len())
	if m.state.Selection.Len() == 0 {
		return m, m.setFocus(focusSearch)
	}
	return m, nil
}

func (m *Model) startComparison() (tea.Model, tea.Cmd) {
	var changed bool
	m.state, changed = m.state.StartComparison()
	if changed {
		m.input.Blur()
		m.logger.Debug().Ctx(m.ctx).Msg("comparison started")
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.searchCancel != nil {
		m.searchCancel()
		m.searchCancel = nil
	}
	m.cancel()
	return m, tea.Quit
}

// setFocus moves focus and keeps the text input's focus state in sync.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// nextFocus cycles through panels, skipping empty ones.
func (m *Model) nextFocus(dir int) focusArea {
	f := m.focus
	for i := 0; i < int(focusAreaCount); i++ {
		f = focusArea((int(f) + dir + int(focusAreaCount)) % int(focusAreaCount))
		if m.panelLen(f) > 0 || f == focusSearch {
			return f
		}
	}
	return focusSearch
}

func (m *Model) panelLen(f focusArea) int {
	switch f {
	case focusResults:
		return len(m.state.Results)
	case focusSelected:
		return m.state.Selection.Len()
	case focusPopular:
		return len(m.state.Popular)
	case focusSearch, focusAreaCount:
	}
	return 0
}

func (m *Model) verticalStep() int {
	if m.focus == focusPopular {
		return m.popularColumns()
	}
	return 1
}

func (m *Model) moveCursor(delta int) {
	n := m.panelLen(m.focus)
	if n == 0 {
		return
	}
	switch m.focus {
	case focusResults:
		m.resultCursor = clamp(m.resultCursor+delta, n)
	case focusSelected:
		m.selectedCursor = clamp(m.selectedCursor+delta, n)
	case focusPopular:
		m.popularCursor = clamp(m.popularCursor+delta, n)
	case focusSearch, focusAreaCount:
	}
}

// View renders the current page.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state.Page == session.PageComparison {
		return m.renderComparisonView()
	}
	return m.renderHomeView()
}

// clamp bounds i to [0, n).
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func at(list []materials.Material, i int) (materials.Material, bool) {
	if i < 0 || i >= len(list) {
		return materials.Material{}, false
	}
	return list[i], true
}
