// Package tui implements the interactive search screen: a single text
// input whose keystrokes are debounced, looked up through the
// stale-while-revalidate cache and rendered as a ranked word list. With
// no active query the screen shows a random word instead.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driving"
	"github.com/openlexica/lexa-cli/internal/core/services"
)

// pollInterval is how often the app re-peeks the cache while a fetch for
// the visible query is in flight.
const pollInterval = 50 * time.Millisecond

// Messages flowing through the update loop.
type (
	// querySettledMsg carries a debounced query ready to be looked up.
	querySettledMsg struct{ query string }

	// resultsMsg carries the cache snapshot for a query.
	resultsMsg struct {
		query string
		snap  services.Snapshot[[]domain.DictionaryEntry]
		err   error
	}

	// randomWordMsg carries the idle-view random entry.
	randomWordMsg struct {
		entry *domain.DictionaryEntry
		err   error
	}

	// freshnessDoneMsg reports the startup dataset check.
	freshnessDoneMsg struct {
		outcome driving.FreshnessOutcome
		err     error
	}

	// pollTickMsg asks the app to re-peek the cache for a query.
	pollTickMsg struct{ query string }
)

// App is the bubbletea model for the search screen.
type App struct {
	styles *Styles
	input  textinput.Model

	searcher  driving.Searcher
	freshness driving.FreshnessController

	debouncer *services.Debouncer
	settled   chan string
	cache     *services.Cache[[]domain.DictionaryEntry]

	ctx context.Context

	query    string // the settled query currently shown
	results  []domain.DictionaryEntry
	selected int
	random   *domain.DictionaryEntry
	err      error
	status   string

	width  int
	height int
	ready  bool
}

// NewApp creates the search screen. The freshness controller may be nil,
// in which case no startup dataset check runs.
func NewApp(searcher driving.Searcher, freshness driving.FreshnessController) *App {
	ti := textinput.New()
	ti.Placeholder = "Type a word..."
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Focus()

	settled := make(chan string, 8)
	debouncer := services.NewDebouncer(services.DefaultQuietPeriod, func(v string) {
		settled <- v
	})

	return &App{
		styles:    DefaultStyles(),
		input:     ti,
		searcher:  searcher,
		freshness: freshness,
		debouncer: debouncer,
		settled:   settled,
		cache:     services.NewCache[[]domain.DictionaryEntry](services.DefaultCacheConfig()),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for lookups.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the blink cursor, the idle random word, the settled-query
// listener and the startup freshness run.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		a.fetchRandom(),
		a.waitForSettled(),
	}
	if a.freshness != nil {
		cmds = append(cmds, a.runFreshness())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case querySettledMsg:
		return a, tea.Batch(a.lookup(msg.query), a.waitForSettled())

	case resultsMsg:
		a.applyResults(msg)
		if msg.query == a.query && msg.snap.Revalidating {
			return a, a.pollLater(msg.query)
		}
		return a, nil

	case pollTickMsg:
		if msg.query != a.query {
			return a, nil
		}
		snap := a.cache.Peek(msg.query)
		a.applyResults(resultsMsg{query: msg.query, snap: snap})
		if snap.Revalidating {
			return a, a.pollLater(msg.query)
		}
		return a, nil

	case randomWordMsg:
		if msg.err == nil {
			a.random = msg.entry
		}
		return a, nil

	case freshnessDoneMsg:
		a.applyFreshness(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		a.debouncer.Stop()
		return a, tea.Quit

	case tea.KeyUp:
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case tea.KeyDown:
		if a.selected < len(a.results)-1 {
			a.selected++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	// Every keystroke feeds the debouncer; the lookup fires only once the
	// input has been quiet for the full period.
	a.debouncer.Observe(a.input.Value())

	// Clearing the input drops straight back to the idle view.
	if domain.NormalizeQuery(a.input.Value()) == "" {
		a.query = ""
		a.results = nil
		a.selected = 0
		a.err = nil
	}

	return a, cmd
}

// waitForSettled blocks on the debouncer channel and re-arms itself via
// Update after each settled value.
func (a *App) waitForSettled() tea.Cmd {
	return func() tea.Msg {
		return querySettledMsg{query: <-a.settled}
	}
}

// lookup consults the cache for the settled query.
func (a *App) lookup(raw string) tea.Cmd {
	return func() tea.Msg {
		query := domain.NormalizeQuery(raw)
		if query == "" {
			return resultsMsg{query: ""}
		}

		snap, err := a.cache.Get(a.ctx, query, func(ctx context.Context) ([]domain.DictionaryEntry, error) {
			return a.searcher.Search(ctx, query)
		})
		return resultsMsg{query: query, snap: snap, err: err}
	}
}

func (a *App) pollLater(query string) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{query: query}
	})
}

func (a *App) applyResults(msg resultsMsg) {
	// Ignore results for queries the user has already typed past.
	current := domain.NormalizeQuery(a.input.Value())
	if msg.query != "" && msg.query != current {
		return
	}

	a.query = msg.query
	if msg.err != nil {
		a.err = msg.err
		return
	}
	a.err = nil
	if msg.snap.Found {
		a.results = msg.snap.Value
		if a.selected >= len(a.results) {
			a.selected = 0
		}
	}
}

func (a *App) applyFreshness(msg freshnessDoneMsg) {
	if msg.err != nil {
		a.status = ""
		return
	}
	switch msg.outcome {
	case driving.OutcomeUpdated:
		// Everything cached was computed against the old dataset.
		a.cache.Invalidate()
		a.status = "dictionary updated"
	case driving.OutcomeFresh, driving.OutcomeSeeded, driving.OutcomeOffline, driving.OutcomeFailed:
		a.status = ""
	}
}

func (a *App) fetchRandom() tea.Cmd {
	return func() tea.Msg {
		entry, err := a.searcher.Random(a.ctx)
		return randomWordMsg{entry: entry, err: err}
	}
}

func (a *App) runFreshness() tea.Cmd {
	return func() tea.Msg {
		outcome, err := a.freshness.Run(a.ctx)
		return freshnessDoneMsg{outcome: outcome, err: err}
	}
}

// View renders the screen.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.styles.Title.Render("lexa"),
		"",
		a.input.View(),
		"",
	}

	switch {
	case a.err != nil:
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()))
	case a.query == "":
		sections = append(sections, a.renderIdle())
	case len(a.results) == 0:
		sections = append(sections, a.styles.Status.Render("No results."))
	default:
		sections = append(sections, a.renderResults())
	}

	if a.status != "" {
		sections = append(sections, "", a.styles.Status.Render(a.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderIdle shows the random "discover a word" view.
func (a *App) renderIdle() string {
	if a.random == nil {
		return a.styles.Status.Render("Start typing to search.")
	}

	lines := []string{
		a.styles.Status.Render("Word of the moment:"),
		"",
		a.renderEntry(*a.random, false),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderResults() string {
	max := a.height - 8
	if max < 1 {
		max = 1
	}

	lines := make([]string, 0, max)
	for i, entry := range a.results {
		if i >= max {
			lines = append(lines, a.styles.Status.Render(fmt.Sprintf("  ... %d more", len(a.results)-i)))
			break
		}
		lines = append(lines, a.renderEntry(entry, i == a.selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderEntry(entry domain.DictionaryEntry, selected bool) string {
	wordStyle := a.styles.Word
	indicator := "  "
	if selected {
		wordStyle = a.styles.Selected
		indicator = "> "
	}

	head := indicator + wordStyle.Render(entry.Word)
	if entry.IPA != "" {
		head += "  " + a.styles.IPA.Render("/"+entry.IPA+"/")
	}

	if entry.Definition == "" {
		return head
	}
	return head + "\n    " + a.styles.Definition.Render(entry.Definition)
}

// Query returns the currently displayed settled query.
func (a *App) Query() string {
	return a.query
}

// Results returns the currently displayed entries.
func (a *App) Results() []domain.DictionaryEntry {
	return a.results
}

// Stop tears down the debounce pipeline.
func (a *App) Stop() {
	a.debouncer.Stop()
}
