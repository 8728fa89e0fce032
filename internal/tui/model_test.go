package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/matcompare/internal/backend"
	"github.com/rshade/matcompare/internal/materials"
	"github.com/rshade/matcompare/internal/session"
)

var (
	si = materials.Material{
		ID: "mp-149", FormulaPretty: "Si", CrystalSystem: "Cubic",
		BandGap: materials.Float(1.1), Density: materials.Float(2.33),
		IsStable: materials.Bool(true),
	}
	gaas = materials.Material{ID: "mp-2534", FormulaPretty: "GaAs", CrystalSystem: "Cubic"}
	nacl = materials.Material{ID: "mp-22862", FormulaPretty: "NaCl", CrystalSystem: "Cubic"}
)

// fakeCatalog answers searches from a map keyed by query.
type fakeCatalog struct {
	mu          sync.Mutex
	popular     []materials.Material
	popularErr  error
	results     map[string][]materials.Material
	errs        map[string]error
	searchCalls []string
}

func (f *fakeCatalog) Popular(context.Context) ([]materials.Material, error) {
	if f.popularErr != nil {
		return nil, f.popularErr
	}
	return f.popular, nil
}

func (f *fakeCatalog) Search(_ context.Context, query string) ([]materials.Material, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func newTestModel(t *testing.T, catalog Catalog) *Model {
	t.Helper()
	m := NewModel(context.Background(), catalog, zerolog.Nop())
	m.input.Cursor.SetMode(cursor.CursorStatic)
	return m
}

// collect runs cmd and forwards the messages it produces, expanding batches.
func collect(cmd tea.Cmd, out chan<- tea.Msg) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			go collect(c, out)
		}
		return
	}
	if msg != nil {
		out <- msg
	}
}

// waitFor returns the first message of type T produced by cmd.
func waitFor[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	out := make(chan tea.Msg, 64)
	go collect(cmd, out)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-out:
			if v, ok := msg.(T); ok {
				return v
			}
		case <-timeout:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

func typeText(m *Model, text string) tea.Cmd {
	var last tea.Cmd
	for _, r := range text {
		_, last = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return last
}

func press(m *Model, kt tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: kt})
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, &fakeCatalog{})

	assert.Equal(t, session.PageHome, m.State().Page)
	assert.Equal(t, focusSearch, m.focus)
	assert.True(t, m.input.Focused())
	assert.Equal(t, defaultWidth, m.width)
}

func TestModel_PopularLoading(t *testing.T) {
	t.Run("stores popular list", func(t *testing.T) {
		catalog := &fakeCatalog{popular: []materials.Material{si, gaas}}
		m := newTestModel(t, catalog)

		msg := waitFor[popularLoadedMsg](t, m.Init())
		m.Update(msg)

		assert.Equal(t, []materials.Material{si, gaas}, m.State().Popular)
		assert.Contains(t, m.View(), "GaAs")
		assert.NotContains(t, m.View(), popularPlaceholder)
	})

	t.Run("failure keeps placeholder and shows no error", func(t *testing.T) {
		catalog := &fakeCatalog{popularErr: errors.New("connection refused")}
		m := newTestModel(t, catalog)

		msg := waitFor[popularLoadedMsg](t, m.Init())
		m.Update(msg)

		assert.Empty(t, m.State().Popular)
		assert.Empty(t, m.State().Error)
		assert.Contains(t, m.View(), popularPlaceholder)
	})
}

func TestModel_Search(t *testing.T) {
	t.Run("single character issues no request", func(t *testing.T) {
		catalog := &fakeCatalog{}
		m := newTestModel(t, catalog)

		typeText(m, "S")

		assert.Equal(t, "S", m.State().Query)
		assert.False(t, m.State().Loading)
		assert.Equal(t, session.Ticket(0), m.State().Latest())
	})

	t.Run("two characters search and render results", func(t *testing.T) {
		catalog := &fakeCatalog{results: map[string][]materials.Material{"Si": {si}}}
		m := newTestModel(t, catalog)

		cmd := typeText(m, "Si")
		assert.True(t, m.State().Loading)
		assert.Contains(t, m.View(), "Searching...")

		msg := waitFor[searchResultMsg](t, cmd)
		m.Update(msg)

		require.Len(t, m.State().Results, 1)
		assert.Equal(t, "mp-149", m.State().Results[0].ID)
		assert.False(t, m.State().Loading)
		assert.Contains(t, m.View(), "(mp-149)")
		assert.Equal(t, []string{"Si"}, catalog.searchCalls)
	})

	t.Run("backend failure shows message", func(t *testing.T) {
		catalog := &fakeCatalog{errs: map[string]error{
			"Zz": &backend.APIError{StatusCode: 400, Message: "no results"},
		}}
		m := newTestModel(t, catalog)

		msg := waitFor[searchResultMsg](t, typeText(m, "Zz"))
		m.Update(msg)

		assert.Equal(t, "no results", m.State().Error)
		assert.Empty(t, m.State().Results)
		assert.Contains(t, m.View(), "no results")
	})

	t.Run("transport failure shows generic message", func(t *testing.T) {
		catalog := &fakeCatalog{errs: map[string]error{"Si": errors.New("dial tcp: refused")}}
		m := newTestModel(t, catalog)

		msg := waitFor[searchResultMsg](t, typeText(m, "Si"))
		m.Update(msg)

		assert.Equal(t, session.SearchFailedMessage, m.State().Error)
		assert.Contains(t, m.View(), "Search failed")
	})

	t.Run("stale response does not overwrite newer results", func(t *testing.T) {
		fe := materials.Material{ID: "mp-13", FormulaPretty: "Fe"}
		fe2o3 := materials.Material{ID: "mp-19770", FormulaPretty: "Fe2O3"}
		catalog := &fakeCatalog{results: map[string][]materials.Material{
			"Fe":    {fe},
			"Fe2":   {fe2o3},
			"Fe2O":  {fe2o3},
			"Fe2O3": {fe2o3},
		}}
		m := newTestModel(t, catalog)

		first := waitFor[searchResultMsg](t, typeText(m, "Fe"))
		latest := waitFor[searchResultMsg](t, typeText(m, "2O3"))

		m.Update(latest)
		m.Update(first)

		require.Len(t, m.State().Results, 1)
		assert.Equal(t, "mp-19770", m.State().Results[0].ID)
	})
}

func TestModel_AddFromResults(t *testing.T) {
	catalog := &fakeCatalog{results: map[string][]materials.Material{"Si": {si, gaas}}}
	m := newTestModel(t, catalog)

	m.Update(waitFor[searchResultMsg](t, typeText(m, "Si")))
	require.Len(t, m.State().Results, 2)

	press(m, tea.KeyDown)
	assert.Equal(t, focusResults, m.focus)
	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.resultCursor)

	press(m, tea.KeyEnter)

	assert.Equal(t, []materials.Material{gaas}, m.State().Selection.Items())
	assert.Empty(t, m.State().Results)
	assert.Empty(t, m.State().Query)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, focusSearch, m.focus)
}

func TestModel_EnterInSearchAddsFirstResult(t *testing.T) {
	catalog := &fakeCatalog{results: map[string][]materials.Material{"Si": {si}}}
	m := newTestModel(t, catalog)

	m.Update(waitFor[searchResultMsg](t, typeText(m, "Si")))
	press(m, tea.KeyEnter)

	assert.True(t, m.State().Selection.Contains(si.ID))
	assert.Empty(t, m.input.Value())
}

func TestModel_AddWhileSearchInFlight(t *testing.T) {
	catalog := &fakeCatalog{
		popular: []materials.Material{si},
		results: map[string][]materials.Material{"Ga": {gaas}},
	}
	m := newTestModel(t, catalog)
	m.Update(waitFor[popularLoadedMsg](t, m.Init()))

	pending := waitFor[searchResultMsg](t, typeText(m, "Ga"))

	press(m, tea.KeyTab)
	require.Equal(t, focusPopular, m.focus)
	press(m, tea.KeyEnter)
	require.True(t, m.State().Selection.Contains(si.ID))

	m.Update(pending)
	assert.Empty(t, m.State().Results)
	assert.False(t, m.State().Loading)
}

func popularModel(t *testing.T) *Model {
	t.Helper()
	catalog := &fakeCatalog{popular: []materials.Material{si, gaas, nacl}}
	m := newTestModel(t, catalog)
	m.Update(waitFor[popularLoadedMsg](t, m.Init()))
	press(m, tea.KeyTab)
	require.Equal(t, focusPopular, m.focus)
	return m
}

func TestModel_SelectionFromPopular(t *testing.T) {
	t.Run("caps selection at two", func(t *testing.T) {
		m := popularModel(t)

		press(m, tea.KeyEnter)
		pressRune(m, 'l')
		press(m, tea.KeyEnter)
		pressRune(m, 'l')
		press(m, tea.KeyEnter)

		assert.Equal(t, []materials.Material{si, gaas}, m.State().Selection.Items())
		assert.Contains(t, m.View(), "Selected Materials (2/2)")
	})

	t.Run("duplicate add is ignored", func(t *testing.T) {
		m := popularModel(t)

		press(m, tea.KeyEnter)
		press(m, tea.KeyEnter)

		assert.Equal(t, 1, m.State().Selection.Len())
	})

	t.Run("remove from selected panel", func(t *testing.T) {
		m := popularModel(t)
		press(m, tea.KeyEnter)
		pressRune(m, 'l')
		press(m, tea.KeyEnter)

		press(m, tea.KeyShiftTab)
		require.Equal(t, focusSelected, m.focus)
		pressRune(m, 'x')

		assert.Equal(t, []materials.Material{gaas}, m.State().Selection.Items())

		pressRune(m, 'x')
		assert.Equal(t, 0, m.State().Selection.Len())
		assert.Equal(t, focusSearch, m.focus)
	})
}

func TestModel_Comparison(t *testing.T) {
	t.Run("compare is a no-op with one selection", func(t *testing.T) {
		m := popularModel(t)
		press(m, tea.KeyEnter)

		pressRune(m, 'c')
		assert.Equal(t, session.PageHome, m.State().Page)
	})

	t.Run("two materials switch to comparison and back", func(t *testing.T) {
		m := popularModel(t)
		press(m, tea.KeyEnter)
		pressRune(m, 'l')
		press(m, tea.KeyEnter)

		pressRune(m, 'c')
		require.Equal(t, session.PageComparison, m.State().Page)

		view := m.View()
		assert.Contains(t, view, "Material Comparison")
		assert.Contains(t, view, "Si")
		assert.Contains(t, view, "GaAs")
		assert.Contains(t, view, "1.100 eV")

		press(m, tea.KeyEsc)
		assert.Equal(t, session.PageHome, m.State().Page)
		assert.Equal(t, 2, m.State().Selection.Len())
		assert.Equal(t, focusSearch, m.focus)
	})

	t.Run("ctrl+o compares from the search box", func(t *testing.T) {
		m := popularModel(t)
		press(m, tea.KeyEnter)
		pressRune(m, 'l')
		press(m, tea.KeyEnter)
		pressRune(m, '/')
		require.Equal(t, focusSearch, m.focus)

		press(m, tea.KeyCtrlO)
		assert.Equal(t, session.PageComparison, m.State().Page)
	})

	t.Run("typing c in the search box is text", func(t *testing.T) {
		m := newTestModel(t, &fakeCatalog{})
		pressRune(m, 'c')
		assert.Equal(t, "c", m.input.Value())
		assert.Equal(t, session.PageHome, m.State().Page)
	})
}

func TestModel_Quit(t *testing.T) {
	t.Run("ctrl+c cancels context", func(t *testing.T) {
		m := newTestModel(t, &fakeCatalog{})

		cmd := press(m, tea.KeyCtrlC)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Error(t, m.ctx.Err())
		assert.Empty(t, m.View())
	})

	t.Run("q quits outside the search box", func(t *testing.T) {
		m := popularModel(t)
		cmd := pressRune(m, 'q')
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("q is text inside the search box", func(t *testing.T) {
		m := newTestModel(t, &fakeCatalog{})
		pressRune(m, 'q')
		assert.Equal(t, "q", m.input.Value())
		assert.False(t, m.quitting)
	})
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t, &fakeCatalog{})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Equal(t, 40, m.width)
	assert.Equal(t, 2, m.popularColumns())

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, popularMaxColumns, m.popularColumns())
}

func TestModel_FocusCycleSkipsEmptyPanels(t *testing.T) {
	m := newTestModel(t, &fakeCatalog{})

	press(m, tea.KeyTab)
	assert.Equal(t, focusSearch, m.focus)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 1, clamp(1, 3))
	assert.Equal(t, 0, clamp(1, 0))
}
