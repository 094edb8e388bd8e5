package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hubpick/internal/api"
	"hubpick/internal/config"
	"hubpick/internal/search"
)

// debounceInterval is the quiet period between the last keystroke and the
// lookup request.
const debounceInterval = 300 * time.Millisecond

const (
	statusNone      = ""
	statusNoResults = "No results found"
	statusFailed    = "Search failed"
)

// --- Messages ---

type debounceFiredMsg struct {
	seq int
}

type searchResultsMsg struct {
	seq   int
	query string
	resp  *api.QuickSearchResponse
	err   error
}

type externalValueMsg struct {
	raw string
}

// App is the search controller model. All interaction state lives here and
// is mutated only inside Update; async outcomes arrive as messages tagged
// with the generation that issued them, and stale generations are dropped.
type App struct {
	client *api.Client
	cfg    *config.Config
	host   Host
	logger *zap.Logger

	types  []string          // configured types in table order
	filter *search.FilterSet // nil when a single type is configured
	input  textinput.Model

	query       string // current trimmed search text
	entries     []search.Entry
	lastRaw     *api.QuickSearchResponse // last response, kept for filter re-application
	activeIndex int                      // -1 = no highlight
	open        bool
	status      string

	pending   *search.Record // selection made without committing
	committed *search.Record // last value pushed to the host

	debounceSeq int
	requestSeq  int
	cancel      context.CancelFunc

	externalCh chan string
	width      int
	height     int
	quitting   bool
}

// NewApp creates the controller. externalCh may be nil when there is no
// host value source; otherwise each received raw value is reconciled into
// the input per the external-sync rules.
func NewApp(client *api.Client, cfg *config.Config, types []string, host Host, logger *zap.Logger, externalCh chan string) App {
	input := textinput.New()
	input.Placeholder = cfg.Placeholder
	input.Prompt = "> "
	input.Focus()

	var filter *search.FilterSet
	if len(types) > 1 {
		filter = search.NewFilterSet(types)
	}
	if host == nil {
		host = HostFunc(func(string) error { return nil })
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return App{
		client:      client,
		cfg:         cfg,
		host:        host,
		logger:      logger,
		types:       types,
		filter:      filter,
		input:       input,
		activeIndex: -1,
		externalCh:  externalCh,
	}
}

// Committed returns the last value pushed to the host, or nil.
func (m App) Committed() *search.Record {
	return m.committed
}

func (m App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.externalCh != nil {
		cmds = append(cmds, m.waitForExternal())
	}
	return tea.Batch(cmds...)
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case debounceFiredMsg:
		// Only the most recent schedule within the window survives.
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		return m.dispatchSearch()

	case searchResultsMsg:
		return m.handleResults(msg)

	case externalValueMsg:
		m = m.handleExternalValue(msg.raw)
		return m, m.waitForExternal()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// --- Key handling ---

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isQuit(msg):
		m.quitting = true
		return m, tea.Quit

	case isEsc(msg):
		if m.open {
			m = m.closeDropdown()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case isDown(msg):
		if !m.open && len(m.entries) > 0 && m.query != "" {
			// Cached results for the current query reopen without a new
			// request.
			m.open = true
			return m, nil
		}
		if m.open && m.activeIndex < len(m.entries)-1 {
			m.activeIndex++
		}
		return m, nil

	case isUp(msg):
		if m.open && m.activeIndex > -1 {
			m.activeIndex--
		}
		return m, nil

	case isEnter(msg):
		return m.handleEnter()

	case isFill(msg):
		// Tab picks the highlighted entry without forcing a commit: with
		// submit-on-select disabled this only fills the input and holds
		// the record pending confirmation.
		if m.open && m.activeIndex >= 0 && m.activeIndex < len(m.entries) {
			return m.selectEntry(m.entries[m.activeIndex], false), nil
		}
		return m, nil

	case isClear(msg):
		return m.clearAll()
	}

	if idx := chipIndex(msg); idx >= 0 && m.filter != nil {
		return m.toggleChip(idx), nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		model, changeCmd := m.onInputChanged()
		return model, tea.Batch(cmd, changeCmd)
	}
	return m, cmd
}

// onInputChanged reacts to a user edit of the input text: the pending
// selection dies, and the query either short-circuits (empty) or schedules
// a debounced search.
func (m App) onInputChanged() (App, tea.Cmd) {
	m.pending = nil
	m.query = strings.TrimSpace(m.input.Value())

	if m.query == "" {
		m = m.resetResults()
		m = m.closeDropdown()
		return m, nil
	}

	m.debounceSeq++
	seq := m.debounceSeq
	return m, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}

// --- Request manager ---

// dispatchSearch cancels any in-flight request and issues exactly one
// lookup for the current query.
func (m App) dispatchSearch() (App, tea.Cmd) {
	query := m.query
	if query == "" {
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.requestSeq++
	seq := m.requestSeq

	// Narrow the service to a single category when only one is active.
	narrow := ""
	if len(m.types) == 1 {
		narrow = m.types[0]
	} else if m.filter != nil && m.filter.ActiveCount() == 1 {
		narrow = m.filter.Active()[0]
	}

	client := m.client
	limit := m.cfg.ResultLimit
	m.logger.Debug("dispatch search",
		zap.String("query", query), zap.Int("seq", seq), zap.String("type", narrow))

	return m, func() tea.Msg {
		resp, err := client.QuickSearch(ctx, query, limit, narrow)
		return searchResultsMsg{seq: seq, query: query, resp: resp, err: err}
	}
}

// handleResults applies a lookup outcome. A result from a superseded
// generation is a no-op regardless of success or failure; only the live
// request may mutate shared state.
func (m App) handleResults(msg searchResultsMsg) (App, tea.Cmd) {
	if msg.seq != m.requestSeq {
		m.logger.Debug("stale response dropped", zap.Int("seq", msg.seq), zap.Int("current", m.requestSeq))
		return m, nil
	}

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.logger.Warn("search failed", zap.String("query", msg.query), zap.Error(msg.err))
		m.entries = nil
		m.lastRaw = nil
		m.activeIndex = -1
		m.status = statusFailed
		m.open = true
		return m, nil
	}

	m.lastRaw = msg.resp
	m.entries = search.ParseResults(msg.resp, m.types, m.activeTypes(), m.client.BaseURL())
	m.activeIndex = -1
	if len(m.entries) == 0 {
		m.status = statusNoResults
	} else {
		m.status = statusNone
	}
	m.open = true
	return m, nil
}

// --- Filter chips ---

// toggleChip applies the chip transition and re-filters the cached
// response without a new network call.
func (m App) toggleChip(idx int) App {
	configured := m.filter.Configured()
	if idx >= len(configured) {
		return m
	}
	m.filter.Toggle(configured[idx])

	if m.lastRaw != nil && m.query != "" {
		m.entries = search.ParseResults(m.lastRaw, m.types, m.activeTypes(), m.client.BaseURL())
		m.activeIndex = -1
		if m.open {
			if len(m.entries) == 0 {
				m.status = statusNoResults
			} else {
				m.status = statusNone
			}
		}
	}
	return m
}

func (m App) activeTypes() []string {
	if m.filter == nil {
		return m.types
	}
	return m.filter.Active()
}

// --- Selection protocol ---

func (m App) handleEnter() (tea.Model, tea.Cmd) {
	if m.open {
		if m.activeIndex >= 0 && m.activeIndex < len(m.entries) {
			return m.selectEntry(m.entries[m.activeIndex], true), nil
		}
		if text := strings.TrimSpace(m.input.Value()); text != "" {
			return m.selectText(text, true), nil
		}
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	// A pending selection is honored only while the text still matches its
	// id exactly; otherwise resolve fresh from the typed text.
	if m.pending != nil && strings.TrimSpace(m.pending.ID) == text {
		rec := *m.pending
		m.pending = nil
		return m.commit(rec), nil
	}
	return m.selectText(text, true), nil
}

func (m App) selectEntry(e search.Entry, force bool) App {
	return m.applySelection(search.ResolveEntry(e, m.client.BaseURL()), force)
}

func (m App) selectText(text string, force bool) App {
	return m.applySelection(search.ResolveText(text, m.types, m.client.BaseURL()), force)
}

// applySelection fills the input with the resolved id and either commits
// immediately or holds the record pending explicit confirmation.
func (m App) applySelection(rec search.Record, force bool) App {
	m.input.SetValue(rec.ID)
	m.input.CursorEnd()
	m.query = strings.TrimSpace(rec.ID)
	m = m.closeDropdown()

	if m.cfg.SubmitOnSelect || force {
		return m.commit(rec)
	}
	m.pending = &rec
	return m
}

// commit pushes the record to the host. Push failures degrade to a log
// line; the host never sees an error from the controller.
func (m App) commit(rec search.Record) App {
	m.pending = nil
	m.committed = &rec
	if err := m.host.Push(rec.Encode()); err != nil {
		m.logger.Warn("host push failed", zap.String("id", rec.ID), zap.Error(err))
	}
	m.logger.Info("committed", zap.String("id", rec.ID), zap.String("type", rec.Type))
	return m
}

// clearAll resets every piece of interaction state and pushes the empty
// value to the host.
func (m App) clearAll() (App, tea.Cmd) {
	m.input.SetValue("")
	m.query = ""
	m = m.resetResults()
	m = m.closeDropdown()
	m.pending = nil
	m.committed = nil
	if err := m.host.Push(""); err != nil {
		m.logger.Warn("host push failed", zap.Error(err))
	}
	return m, nil
}

// --- External sync ---

// handleExternalValue reconciles a host-pushed value into the input. An
// open dropdown means the user is mid-interaction, so the text is left
// alone.
func (m App) handleExternalValue(raw string) App {
	display := search.ParseHostValue(raw)
	if m.open {
		return m
	}
	if display == m.input.Value() {
		return m
	}
	m.logger.Debug("external value applied", zap.String("id", display))
	m.input.SetValue(display)
	m.input.CursorEnd()
	m.query = strings.TrimSpace(display)
	m.pending = nil
	// Cached results belong to the replaced query; drop them so a reopen
	// cannot show them under the new text.
	m = m.resetResults()
	return m
}

func (m App) waitForExternal() tea.Cmd {
	ch := m.externalCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		raw, ok := <-ch
		if !ok {
			return nil
		}
		return externalValueMsg{raw: raw}
	}
}

// --- Shared state helpers ---

// resetResults empties the result set and invalidates any in-flight
// request so its eventual resolution cannot mutate state.
func (m App) resetResults() App {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.requestSeq++
	m.entries = nil
	m.lastRaw = nil
	m.activeIndex = -1
	m.status = statusNone
	return m
}

func (m App) closeDropdown() App {
	m.open = false
	m.activeIndex = -1
	return m
}
