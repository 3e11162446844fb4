package tui

// UI text constants
const (
	TextAppTitle = "Seamhanian Information Portal"

	TextNewsLoading = "Fetching news..."
	TextNewsEmpty   = "No news entries found."

	TextOverlayHint = "Press 'q' to close article"

	TextFooterBrowse  = "tab: switch tab | r: refresh | enter: open article | esc: quit"
	TextFooterArticle = "q: close article | esc: quit"
	TextFooterUpload  = "tab: switch tab | up/down: field | ctrl+d: toggle delete | enter: submit | esc: quit"
)
