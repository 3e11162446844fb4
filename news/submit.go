package news

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Backend is the remote system of record for news items. Two
// implementations exist in the store package: the Discord channel backend
// and the GitHub raw-file backend.
type Backend interface {
	// List fetches up to the configured maximum of recent items.
	List(ctx context.Context) ([]Item, error)
	// Create publishes a new entry and returns its remote handle.
	Create(ctx context.Context, item Item) (string, error)
	// Update overwrites the entry behind remoteID in place.
	Update(ctx context.Context, remoteID string, item Item) error
	// Delete removes the entry behind remoteID. Backends without a delete
	// path return an UnsupportedError.
	Delete(ctx context.Context, remoteID string) error
	// RequiresAuthor reports whether the backend persists an author line
	// and uses it when matching submissions to existing entries.
	RequiresAuthor() bool
	// Name identifies the backend in status messages and logs.
	Name() string
}

// State tracks the submission workflow.
type State string

const (
	StateIdle        State = "idle"
	StateValidating  State = "validating"
	StateDispatching State = "dispatching"
	StateSuccess     State = "success"
	StateFailed      State = "failed"
)

// Operation is the backend call a submission resolved to.
type Operation string

const (
	OpNone   Operation = "none"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Request carries the upload form input.
type Request struct {
	Path     string
	Username string
	// Delete requests removal of the matching remote entry instead of a
	// create/update.
	Delete bool
}

// Result reports what a submission did, in terms a status line can show.
type Result struct {
	State   State
	Op      Operation
	Item    Item
	Message string
	Err     error
}

// Submitter runs the validate → dispatch → report cycle against one backend.
type Submitter struct {
	backend Backend
	log     *logrus.Logger
}

// NewSubmitter creates a submitter bound to the given backend.
func NewSubmitter(backend Backend, log *logrus.Logger) *Submitter {
	return &Submitter{backend: backend, log: log}
}

// Submit validates the request, derives an item from the source file and
// dispatches at most one backend call: delete when the delete flag is set
// and a match exists, update when a match exists, create otherwise. A
// delete with no match fails without touching the network. Matching scans
// index, the most recent listing the caller holds.
func (s *Submitter) Submit(ctx context.Context, req Request, index []Item) Result {
	item, err := s.validate(req)
	if err != nil {
		return failed(OpNone, item, err)
	}

	match, found := Match(index, item.Title, req.Username, s.backend.RequiresAuthor())

	switch {
	case req.Delete && !found:
		return failed(OpDelete, item, &NotFoundError{Title: item.Title})
	case req.Delete:
		if err := s.backend.Delete(ctx, match.RemoteID); err != nil {
			return failed(OpDelete, item, err)
		}
		s.log.WithFields(logrus.Fields{"title": item.Title, "backend": s.backend.Name()}).Info("news entry deleted")
		return succeeded(OpDelete, match, fmt.Sprintf("Deleted %q", item.Title))
	case found:
		if err := s.backend.Update(ctx, match.RemoteID, item); err != nil {
			return failed(OpUpdate, item, err)
		}
		item.RemoteID = match.RemoteID
		s.log.WithFields(logrus.Fields{"title": item.Title, "backend": s.backend.Name()}).Info("news entry updated")
		return succeeded(OpUpdate, item, fmt.Sprintf("Updated %q", item.Title))
	default:
		id, err := s.backend.Create(ctx, item)
		if err != nil {
			return failed(OpCreate, item, err)
		}
		item.RemoteID = id
		s.log.WithFields(logrus.Fields{"title": item.Title, "backend": s.backend.Name()}).Info("news entry created")
		return succeeded(OpCreate, item, fmt.Sprintf("Published %q", item.Title))
	}
}

// validate checks the form input and reads the source file. It never
// touches the network.
func (s *Submitter) validate(req Request) (Item, error) {
	if s.backend.RequiresAuthor() && strings.TrimSpace(req.Username) == "" {
		return Item{}, &ValidationError{Field: "username", Reason: "must not be empty"}
	}

	// Drag-and-drop paths arrive wrapped in quotes.
	path := strings.Trim(strings.TrimSpace(req.Path), `"'`)
	if path == "" {
		return Item{}, &ValidationError{Field: "file", Reason: "path is required"}
	}
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return Item{}, &ValidationError{Field: "file", Reason: "must be a .txt file"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Item{}, &ValidationError{Field: "file", Reason: fmt.Sprintf("cannot read %s", path)}
	}

	title, body := Derive(string(content))
	return Item{
		Title: title,
		// The form username wins over anything in the file.
		Author: strings.TrimSpace(req.Username),
		Body:   body,
	}, nil
}

func failed(op Operation, item Item, err error) Result {
	return Result{State: StateFailed, Op: op, Item: item, Message: err.Error(), Err: err}
}

func succeeded(op Operation, item Item, msg string) Result {
	return Result{State: StateSuccess, Op: op, Item: item, Message: msg}
}
