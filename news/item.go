package news

import (
	"strings"
	"time"
)

// Item is a single news entry as shown in the portal.
type Item struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Body   string `json:"body"`

	// RemoteID is the backend handle needed to update or delete the entry:
	// a file SHA for the GitHub backend, a message ID for the Discord
	// backend. Empty for items that have not been created yet.
	RemoteID string `json:"remote_id,omitempty"`

	// Timestamp is the backend-reported creation/edit time. The zero value
	// means unknown and sorts after every known time.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// UntitledTitle is used when a submission file has no content at all.
const UntitledTitle = "Untitled"

// Derive splits raw text into a title (first line) and body (the rest).
// Empty input yields the Untitled placeholder with an empty body.
func Derive(content string) (title, body string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return UntitledTitle, ""
	}
	title = lines[0]
	if len(lines) > 1 {
		body = strings.Join(lines[1:], "\n")
	}
	return title, body
}

// EncodeChannel renders an item in the Discord channel wire format:
// title, author and body separated by single newlines.
func EncodeChannel(item Item) string {
	return item.Title + "\n" + item.Author + "\n" + item.Body
}

// DecodeChannel parses the Discord channel wire format back into an item.
// The first two line breaks are structural; everything after them is body.
func DecodeChannel(content string) Item {
	parts := strings.SplitN(content, "\n", 3)
	item := Item{Title: UntitledTitle}
	if len(parts) > 0 && parts[0] != "" {
		item.Title = parts[0]
	}
	if len(parts) > 1 {
		item.Author = parts[1]
	}
	if len(parts) > 2 {
		item.Body = parts[2]
	}
	return item
}

// EncodeFile renders an item in the raw-file wire format. The file host
// keys entries by title alone, so no author line is persisted.
func EncodeFile(item Item) string {
	return item.Title + "\n" + item.Body
}

// DecodeFile parses the raw-file wire format back into an item.
func DecodeFile(content string) Item {
	parts := strings.SplitN(content, "\n", 2)
	item := Item{Title: UntitledTitle}
	if len(parts) > 0 && parts[0] != "" {
		item.Title = parts[0]
	}
	if len(parts) > 1 {
		item.Body = parts[1]
	}
	return item
}
