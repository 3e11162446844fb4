package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabInfo:
		b.WriteString(m.renderInfo())
	case TabNews:
		b.WriteString(m.renderNews())
	case TabUpload:
		b.WriteString(m.renderUpload())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = ActiveTabStyle.Render(name)
		} else {
			tabs[i] = TabStyle.Render(name)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return TitleStyle.Render(TextAppTitle) + "\n" + bar
}

func (m Model) renderInfo() string {
	if !m.infoReady {
		return InfoStyle.Render("Loading info...")
	}
	return m.infoView.View()
}

func (m Model) renderNews() string {
	if m.overlayOpen {
		return m.overlay.View()
	}
	if m.backendErr != nil {
		return ErrorStyle.Render("News unavailable: " + m.backendErr.Error())
	}
	if m.newsErr != nil {
		return ErrorStyle.Render("Error loading news\n") + InfoStyle.Render(m.newsErr.Error())
	}
	if m.loadingNews {
		return InfoStyle.Render(TextNewsLoading)
	}
	if len(m.index) == 0 {
		return InfoStyle.Render(TextNewsEmpty)
	}
	return m.newsList.View()
}

func (m Model) renderUpload() string {
	var b strings.Builder

	b.WriteString(InfoStyle.Render("Publish, edit or remove a news entry"))
	b.WriteString("\n\n")
	b.WriteString(m.fileInput.View())
	b.WriteString("\n")
	b.WriteString(m.userInput.View())
	b.WriteString("\n\n")

	if m.deleteMode {
		b.WriteString(DeleteModeStyle.Render("DELETE MODE"))
		b.WriteString(InfoStyle.Render("  matching entry will be removed"))
		b.WriteString("\n")
	}

	switch m.submitState {
	case news.StateDispatching:
		b.WriteString(StatusStyle.Render(m.submitStatus))
	case news.StateSuccess:
		b.WriteString(StatusStyle.Render("✔ " + m.submitStatus))
	case news.StateFailed:
		b.WriteString(ErrorStyle.Render("✗ " + m.submitStatus))
	}

	return b.String()
}

func (m Model) renderFooter() string {
	switch {
	case m.tab == TabNews && m.overlayOpen:
		return InfoStyle.Render(TextFooterArticle)
	case m.tab == TabUpload:
		return InfoStyle.Render(TextFooterUpload)
	default:
		return InfoStyle.Render(TextFooterBrowse)
	}
}

// renderArticle lays out the overlay: title, body, close hint. The author
// line never shows; it only exists in the wire encoding.
func renderArticle(item news.Item) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		ArticleTitleStyle.Render(item.Title),
		item.Body,
		InfoStyle.Render(TextOverlayHint),
	)
}
