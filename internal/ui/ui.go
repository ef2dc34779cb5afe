package ui

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/models"
	"github.com/honkingversion/honk/internal/search"
	"github.com/honkingversion/honk/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	ResultsView
	ShowsView
	PerformancesView
)

// maxSuggestions caps the dropdown under the search input.
const maxSuggestions = 8

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	catalog   api
	debouncer *search.Debouncer
	logger    *log.Logger
	width     int
	height    int

	input       textinput.Model
	suggestions []models.SearchResult
	cursor      int
	resultsList list.Model

	shows       []models.Show
	showList    list.Model
	selection   catalog.Selection
	facets      catalog.Facets
	yearIdx     int
	decadeIdx   int
	venueIdx    int
	filtering   bool
	filterInput textinput.Model
	filtered    catalog.FilterResult

	performances []models.Performance
	perfList     list.Model
	sortIdx      int
	ratedOnly    bool
	songName     string

	err  error
	help help.Model
	keys keyMap
}

// api is the slice of the catalog interface the TUI needs.
type api interface {
	Search(ctx context.Context, term string) ([]models.SearchResult, error)
	Shows(ctx context.Context) ([]models.Show, error)
	SongPerformances(ctx context.Context, slug string) ([]models.Performance, error)
}

type searchUpdateMsg search.Update

type resultsFetchedMsg struct {
	query   string
	results []models.SearchResult
	err     error
}

type showsFetchedMsg struct {
	shows []models.Show
	err   error
}

type performancesFetchedMsg struct {
	song         string
	performances []models.Performance
	err          error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, c api, debouncer *search.Debouncer, logger *log.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "Search songs, shows, users..."
	input.Focus()
	input.CharLimit = 120

	filterInput := textinput.New()
	filterInput.Placeholder = "venue, city, or date"
	filterInput.CharLimit = 80

	return &Model{
		ctx:         ctx,
		view:        SearchView,
		catalog:     c,
		debouncer:   debouncer,
		logger:      logger,
		input:       input,
		filterInput: filterInput,
		yearIdx:     -1,
		decadeIdx:   -1,
		venueIdx:    -1,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init starts the cursor blink and the suggestion listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForSuggestions())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.resultsList, &m.showList, &m.perfList} {
			if l.Width() == 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case ResultsView:
			return m.handleResultsKeys(msg)
		case ShowsView:
			return m.handleShowsKeys(msg)
		case PerformancesView:
			return m.handlePerformancesKeys(msg)
		}

	case searchUpdateMsg:
		if msg.Cleared {
			m.suggestions = nil
		} else {
			m.suggestions = msg.Results
			if len(m.suggestions) > maxSuggestions {
				m.suggestions = m.suggestions[:maxSuggestions]
			}
		}
		m.cursor = 0
		return m, m.waitForSuggestions()

	case resultsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.results))
		for i, r := range msg.results {
			items[i] = resultItem{result: r}
		}
		m.resultsList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.resultsList.Title = fmt.Sprintf("Results for %q", msg.query)
		m.resultsList.SetSize(m.width-4, m.height-8)
		m.view = ResultsView
		return m, nil

	case showsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.shows = msg.shows
		m.facets = catalog.DeriveFacets(msg.shows)
		m.selection = catalog.Selection{}
		m.yearIdx, m.decadeIdx, m.venueIdx = -1, -1, -1
		m.filterInput.Reset()
		m.showList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
		m.showList.SetSize(m.width-4, m.height-8)
		m.refreshShows()
		m.view = ShowsView
		return m, nil

	case performancesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.performances = msg.performances
		m.songName = msg.song
		m.sortIdx = 0
		m.ratedOnly = false
		m.perfList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
		m.perfList.SetSize(m.width-4, m.height-8)
		m.refreshPerformances()
		m.view = PerformancesView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case SearchView:
		return m.renderSearch()
	case ResultsView:
		return m.renderResults()
	case ShowsView:
		return m.renderShows()
	case PerformancesView:
		return m.renderPerformances()
	default:
		return ""
	}
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.debouncer.Cancel()
		return m, tea.Quit
	case "esc":
		// Close the dropdown but leave the query in place.
		m.suggestions = nil
		m.cursor = 0
		return m, nil
	case "ctrl+b":
		return m, m.fetchShows()
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.suggestions) > 0 {
			return m.selectResult(m.suggestions[m.cursor])
		}
		if query := strings.TrimSpace(m.input.Value()); len([]rune(query)) >= 2 {
			return m, m.fetchResults(query)
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.debouncer.Update(m.ctx, value)
	}
	return m, cmd
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		return m, nil
	case "enter":
		if selected := m.resultsList.SelectedItem(); selected != nil {
			if r, ok := selected.(resultItem); ok {
				return m.selectResult(r.result)
			}
		}
	}

	var cmd tea.Cmd
	m.resultsList, cmd = m.resultsList.Update(msg)
	return m, cmd
}

func (m *Model) handleShowsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.selection.Term = m.filterInput.Value()
		m.refreshShows()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		return m, nil
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case "y":
		m.yearIdx = cycle(m.yearIdx, len(m.facets.Years))
		if m.yearIdx >= 0 {
			m.selection.SetYear(m.facets.Years[m.yearIdx])
			m.decadeIdx = -1
		} else {
			m.selection.SetYear("")
		}
		m.refreshShows()
		return m, nil
	case "d":
		m.decadeIdx = cycle(m.decadeIdx, len(m.facets.Decades))
		if m.decadeIdx >= 0 {
			m.selection.SetDecade(m.facets.Decades[m.decadeIdx])
			m.yearIdx = -1
		} else {
			m.selection.SetDecade("")
		}
		m.refreshShows()
		return m, nil
	case "v":
		m.venueIdx = cycle(m.venueIdx, len(m.facets.VenueTypes))
		if m.venueIdx >= 0 {
			m.selection.VenueType = m.facets.VenueTypes[m.venueIdx]
		} else {
			m.selection.VenueType = ""
		}
		m.refreshShows()
		return m, nil
	case "f":
		m.selection.Fuzzy = !m.selection.Fuzzy
		m.refreshShows()
		return m, nil
	case "c":
		m.selection.Clear()
		m.yearIdx, m.decadeIdx, m.venueIdx = -1, -1, -1
		m.selection.Fuzzy = false
		m.filterInput.Reset()
		m.refreshShows()
		return m, nil
	}

	var cmd tea.Cmd
	m.showList, cmd = m.showList.Update(msg)
	return m, cmd
}

func (m *Model) handlePerformancesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		return m, nil
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(catalog.SortOptions)
		m.refreshPerformances()
		return m, nil
	case "r":
		m.ratedOnly = !m.ratedOnly
		m.refreshPerformances()
		return m, nil
	}

	var cmd tea.Cmd
	m.perfList, cmd = m.perfList.Update(msg)
	return m, cmd
}

// selectResult dispatches a picked search result: songs open their
// performance history in the TUI, everything else opens in the browser.
func (m *Model) selectResult(result models.SearchResult) (tea.Model, tea.Cmd) {
	m.suggestions = nil
	m.cursor = 0
	m.input.Reset()

	if result.Type == models.ResultSong {
		return m, m.fetchPerformances(result.Title, path.Base(result.URL))
	}
	if err := shared.OpenBrowser(result.URL); err != nil {
		m.logger.Warn("failed to open browser", "url", result.URL, "error", err)
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SearchView:
		m.input, cmd = m.input.Update(msg)
	case ResultsView:
		m.resultsList, cmd = m.resultsList.Update(msg)
	case ShowsView:
		m.showList, cmd = m.showList.Update(msg)
	case PerformancesView:
		m.perfList, cmd = m.perfList.Update(msg)
	}
	return m, cmd
}

func (m *Model) waitForSuggestions() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.debouncer.Updates()
		if !ok {
			return nil
		}
		return searchUpdateMsg(update)
	}
}

func (m *Model) fetchResults(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.catalog.Search(m.ctx, query)
		return resultsFetchedMsg{query: query, results: results, err: err}
	}
}

func (m *Model) fetchShows() tea.Cmd {
	return func() tea.Msg {
		shows, err := m.catalog.Shows(m.ctx)
		return showsFetchedMsg{shows: shows, err: err}
	}
}

func (m *Model) fetchPerformances(song, slug string) tea.Cmd {
	return func() tea.Msg {
		performances, err := m.catalog.SongPerformances(m.ctx, slug)
		return performancesFetchedMsg{song: song, performances: performances, err: err}
	}
}

func (m *Model) refreshShows() {
	m.filtered = catalog.FilterShows(m.shows, m.selection)
	items := make([]list.Item, len(m.filtered.Shows))
	for i, show := range m.filtered.Shows {
		items[i] = showItem{show: show}
	}
	m.showList.SetItems(items)
	m.showList.Title = m.filtered.Summary()
}

func (m *Model) refreshPerformances() {
	by := catalog.SortOptions[m.sortIdx]
	sorted := catalog.FilterPerformances(m.performances, m.ratedOnly, by)
	items := make([]list.Item, len(sorted))
	for i, p := range sorted {
		items[i] = performanceItem{performance: p}
	}
	m.perfList.SetItems(items)
	title := fmt.Sprintf("%s — %s", m.songName, by.Label())
	if m.ratedOnly {
		title += " (rated only)"
	}
	m.perfList.Title = title
}

// cycle advances an index through [-1, n) where -1 means "off".
func cycle(idx, n int) int {
	if n == 0 {
		return -1
	}
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("HonkingVersion")
	var dropdown strings.Builder
	for i, s := range m.suggestions {
		line := fmt.Sprintf("%s  %s", s.Title, styles.dim.Render(string(s.Type)))
		if i == m.cursor {
			line = styles.selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		dropdown.WriteString(line + "\n")
	}
	helpKeys := []key.Binding{m.keys.enter, m.keys.browse, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, m.input.View(), dropdown.String(), helpView)
}

func (m *Model) renderResults() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.resultsList.View(), helpView)
}

func (m *Model) renderShows() string {
	var filter string
	if m.filtering {
		filter = fmt.Sprintf("\nFilter: %s", m.filterInput.View())
	} else if m.selection.Term != "" {
		filter = fmt.Sprintf("\nFilter: %s", styles.warn.Render(m.selection.Term))
	}
	helpKeys := []key.Binding{m.keys.year, m.keys.decade, m.keys.venueType, m.keys.filter, m.keys.fuzzy, m.keys.clear, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", m.showList.View(), filter, helpView)
}

func (m *Model) renderPerformances() string {
	helpKeys := []key.Binding{m.keys.sort, m.keys.rated, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.perfList.View(), helpView)
}
