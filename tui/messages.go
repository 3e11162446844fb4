package tui

import "github.com/XbxAtWork/seamhanian-archives101/news"

// Messages for the tea program.

// infoLoadedMsg carries the Info tab contents, read once at mount.
type infoLoadedMsg struct {
	Content string
}

// newsLoadedMsg is sent when a refresh finishes. On success the previous
// index is discarded wholesale.
type newsLoadedMsg struct {
	Items []news.Item
	Err   error
}

// submitDoneMsg is sent when the upload workflow reaches a terminal state.
type submitDoneMsg struct {
	Result news.Result
}
