package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

// Layout chrome: tab bar above the content, status and help lines below.
const (
	headerHeight = 3
	footerHeight = 2
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case infoLoadedMsg:
		m.infoContent = msg.Content
		m.infoView.SetContent(InfoTextStyle.Render(msg.Content))
		m.infoReady = true
		return m, nil
	case newsLoadedMsg:
		return m.handleNewsLoaded(msg), nil
	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	}
	return m.updateComponents(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.newsList.SetSize(msg.Width, contentHeight)
	m.overlay.Width = msg.Width
	m.overlay.Height = contentHeight
	m.infoView.Width = msg.Width
	m.infoView.Height = contentHeight

	inputWidth := msg.Width - 4
	if inputWidth < 20 {
		inputWidth = msg.Width
	}
	m.fileInput.Width = inputWidth
	m.userInput.Width = inputWidth

	return m
}

// handleNewsLoaded replaces the index with the fresh listing. An error
// leaves the stale index behind a single explanatory row; an open overlay
// is never touched.
func (m Model) handleNewsLoaded(msg newsLoadedMsg) Model {
	m.loadingNews = false
	if msg.Err != nil {
		m.newsErr = msg.Err
		m.log.WithError(msg.Err).Warn("news refresh failed")
		return m
	}
	m.setIndex(msg.Items)
	return m
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.submitState = msg.Result.State
	m.submitStatus = msg.Result.Message

	if msg.Result.State == news.StateSuccess && m.backend != nil {
		m.loadingNews = true
		return m, refreshNews(m.backend)
	}
	return m, nil
}

// handleKeyPress routes the few global keys, then the per-tab ones.
// Everything else falls through to the focused component.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % 3
		return m.syncUploadFocus(), nil
	case "shift+tab":
		m.tab = (m.tab + 2) % 3
		return m.syncUploadFocus(), nil
	}

	switch m.tab {
	case TabNews:
		return m.handleNewsKey(msg)
	case TabUpload:
		return m.handleUploadKey(msg)
	}
	return m.updateComponents(msg)
}

func (m Model) handleNewsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlayOpen {
		if msg.String() == "q" {
			m.closeOverlay()
			return m, nil
		}
		// Remaining keys scroll the article.
		return m.updateComponents(msg)
	}

	switch msg.String() {
	case "r":
		if m.backend == nil {
			return m, nil
		}
		m.loadingNews = true
		return m, refreshNews(m.backend)
	case "enter":
		if row, ok := m.newsList.SelectedItem().(newsRow); ok {
			m.openOverlay(row.item)
		}
		return m, nil
	}
	return m.updateComponents(msg)
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down":
		if m.uploadFocus == fieldFile {
			m.uploadFocus = fieldUser
		} else {
			m.uploadFocus = fieldFile
		}
		return m.syncUploadFocus(), nil
	case "ctrl+d":
		m.deleteMode = !m.deleteMode
		return m, nil
	case "enter":
		return m.startSubmit()
	}
	return m.updateComponents(msg)
}

// startSubmit kicks off the upload workflow against the current index.
func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if m.submitter == nil {
		m.submitState = news.StateFailed
		m.submitStatus = disabledReason(m.backendErr)
		return m, nil
	}

	req := news.Request{
		Path:     m.fileInput.Value(),
		Username: m.userInput.Value(),
		Delete:   m.deleteMode,
	}
	m.submitState = news.StateDispatching
	m.submitStatus = "Submitting..."
	return m, submitNews(m.submitter, req, m.index)
}

// syncUploadFocus keeps exactly one input focused, and only while the
// Upload tab is showing.
func (m Model) syncUploadFocus() Model {
	m.fileInput.Blur()
	m.userInput.Blur()
	if m.tab != TabUpload {
		return m
	}
	if m.uploadFocus == fieldFile {
		m.fileInput.Focus()
	} else {
		m.userInput.Focus()
	}
	return m
}

// updateComponents forwards the message to whichever widget owns the
// current tab's input.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.tab {
	case TabInfo:
		m.infoView, cmd = m.infoView.Update(msg)
		cmds = append(cmds, cmd)
	case TabNews:
		if m.overlayOpen {
			m.overlay, cmd = m.overlay.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.newsList, cmd = m.newsList.Update(msg)
			cmds = append(cmds, cmd)
		}
	case TabUpload:
		if m.uploadFocus == fieldFile {
			m.fileInput, cmd = m.fileInput.Update(msg)
		} else {
			m.userInput, cmd = m.userInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func disabledReason(err error) string {
	if err != nil {
		return err.Error()
	}
	return "news backend is not configured"
}
