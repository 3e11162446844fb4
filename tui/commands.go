package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/XbxAtWork/seamhanian-archives101/info"
	"github.com/XbxAtWork/seamhanian-archives101/news"
)

// loadInfo reads the static Info file.
func loadInfo(path string) tea.Cmd {
	return func() tea.Msg {
		return infoLoadedMsg{Content: info.Load(path)}
	}
}

// refreshNews fetches the latest entries and sorts them newest-first. The
// backend call blocks inside the command, not the event loop.
func refreshNews(backend news.Backend) tea.Cmd {
	return func() tea.Msg {
		items, err := backend.List(context.Background())
		if err != nil {
			return newsLoadedMsg{Err: err}
		}
		news.SortIndex(items)
		return newsLoadedMsg{Items: items}
	}
}

// submitNews runs the upload workflow against the most recent index.
func submitNews(submitter *news.Submitter, req news.Request, index []news.Item) tea.Cmd {
	snapshot := append([]news.Item(nil), index...)
	return func() tea.Msg {
		return submitDoneMsg{Result: submitter.Submit(context.Background(), req, snapshot)}
	}
}
