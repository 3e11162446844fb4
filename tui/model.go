package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

// Tab identifies one of the portal's three panes.
type Tab int

const (
	TabInfo Tab = iota
	TabNews
	TabUpload
)

var tabNames = []string{"Info", "News", "Upload"}

// uploadField indexes the focusable inputs on the Upload tab.
type uploadField int

const (
	fieldFile uploadField = iota
	fieldUser
)

// Model is the portal's single bubbletea model. The news index and the
// article overlay live here; backends and the submitter are injected.
type Model struct {
	backend    news.Backend
	backendErr error
	submitter  *news.Submitter
	infoPath   string
	log        *logrus.Logger

	tab Tab

	infoView    viewport.Model
	infoContent string
	infoReady   bool

	newsList    list.Model
	index       []news.Item
	newsErr     error
	loadingNews bool

	// Article overlay: at most one open article. Refreshes and backend
	// errors never force it closed.
	overlayOpen bool
	overlayItem news.Item
	overlay     viewport.Model

	fileInput    textinput.Model
	userInput    textinput.Model
	uploadFocus  uploadField
	deleteMode   bool
	submitState  news.State
	submitStatus string

	width  int
	height int
}

// NewModel wires the portal UI. backend may be nil when configuration is
// missing; backendErr then explains why in place of the news list.
func NewModel(backend news.Backend, backendErr error, submitter *news.Submitter, infoPath string, log *logrus.Logger) Model {
	newsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	newsList.Title = "News"
	newsList.SetShowStatusBar(false)
	newsList.SetFilteringEnabled(false)
	newsList.SetShowHelp(false)
	// 'q' belongs to the close-article binding, not the list.
	newsList.DisableQuitKeybindings()

	fileInput := textinput.New()
	fileInput.Placeholder = "Path to .txt file (drag or type)"
	fileInput.Focus()

	userInput := textinput.New()
	userInput.Placeholder = "Your username"

	return Model{
		backend:     backend,
		backendErr:  backendErr,
		submitter:   submitter,
		infoPath:    infoPath,
		log:         log,
		tab:         TabInfo,
		newsList:    newsList,
		overlay:     viewport.New(0, 0),
		infoView:    viewport.New(0, 0),
		fileInput:   fileInput,
		userInput:   userInput,
		submitState: news.StateIdle,
	}
}

// Init loads the Info file and triggers the first news refresh.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadInfo(m.infoPath), textinput.Blink}
	if m.backend != nil {
		cmds = append(cmds, refreshNews(m.backend))
	}
	return tea.Batch(cmds...)
}

// setIndex replaces the news index wholesale and rebuilds the list rows.
func (m *Model) setIndex(items []news.Item) {
	m.index = items
	m.newsErr = nil
	rows := lo.Map(items, func(it news.Item, _ int) list.Item {
		return newsRow{item: it}
	})
	m.newsList.SetItems(rows)
}

// Index returns the current news index, newest first.
func (m Model) Index() []news.Item {
	return m.index
}

// OverlayOpen reports whether an article overlay is showing.
func (m Model) OverlayOpen() bool { return m.overlayOpen }

// OverlayItem returns the article held by the overlay.
func (m Model) OverlayItem() news.Item { return m.overlayItem }

// openOverlay shows item full-screen. Opening while already open simply
// replaces the held article.
func (m *Model) openOverlay(item news.Item) {
	m.overlayOpen = true
	m.overlayItem = item
	m.overlay.SetContent(renderArticle(item))
	m.overlay.GotoTop()
}

// closeOverlay restores the list view. Closing an already-closed overlay
// is a no-op.
func (m *Model) closeOverlay() {
	m.overlayOpen = false
	m.overlayItem = news.Item{}
}

// newsRow adapts a news item to the bubbles list.
type newsRow struct {
	item news.Item
}

func (r newsRow) Title() string { return r.item.Title }

func (r newsRow) Description() string {
	if r.item.Timestamp.IsZero() {
		return InfoStyle.Render("undated")
	}
	return InfoStyle.Render(r.item.Timestamp.Format("2006-01-02 15:04"))
}

func (r newsRow) FilterValue() string { return r.item.Title }
