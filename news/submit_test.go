package news

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend counts calls so dispatch decisions can be asserted exactly.
type fakeBackend struct {
	requiresAuthor bool
	failWith       error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastCreated  Item
	lastUpdated  Item
	lastUpdateID string
	lastDeleteID string
}

func (f *fakeBackend) List(ctx context.Context) ([]Item, error) {
	f.listCalls++
	return nil, nil
}

func (f *fakeBackend) Create(ctx context.Context, item Item) (string, error) {
	f.createCalls++
	f.lastCreated = item
	return "new-id", f.failWith
}

func (f *fakeBackend) Update(ctx context.Context, remoteID string, item Item) error {
	f.updateCalls++
	f.lastUpdateID = remoteID
	f.lastUpdated = item
	return f.failWith
}

func (f *fakeBackend) Delete(ctx context.Context, remoteID string) error {
	f.deleteCalls++
	f.lastDeleteID = remoteID
	return f.failWith
}

func (f *fakeBackend) RequiresAuthor() bool { return f.requiresAuthor }
func (f *fakeBackend) Name() string         { return "fake" }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeNewsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entry.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSubmitCreatesWhenNoMatch(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody line")

	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob"}, nil)

	require.Equal(t, StateSuccess, res.State)
	assert.Equal(t, OpCreate, res.Op)
	assert.Equal(t, 1, backend.createCalls)
	assert.Zero(t, backend.updateCalls)
	assert.Zero(t, backend.deleteCalls)
	assert.Equal(t, "Alpha", backend.lastCreated.Title)
	assert.Equal(t, "bob", backend.lastCreated.Author)
	assert.Equal(t, "Body line", backend.lastCreated.Body)
	assert.Equal(t, "new-id", res.Item.RemoteID)
}

func TestSubmitUpdatesWhenMatched(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody line")

	index := []Item{{Title: "Alpha", Author: "bob", RemoteID: "42"}}
	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob"}, index)

	require.Equal(t, StateSuccess, res.State)
	assert.Equal(t, OpUpdate, res.Op)
	assert.Equal(t, 1, backend.updateCalls)
	assert.Zero(t, backend.createCalls)
	assert.Zero(t, backend.deleteCalls)
	assert.Equal(t, "42", backend.lastUpdateID)
}

func TestSubmitSameTitleOtherAuthorCreates(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody line")

	index := []Item{{Title: "Alpha", Author: "alice", RemoteID: "42"}}
	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob"}, index)

	require.Equal(t, StateSuccess, res.State)
	assert.Equal(t, OpCreate, res.Op)
}

func TestSubmitDeleteWithMatch(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody line")

	index := []Item{{Title: "Alpha", Author: "bob", RemoteID: "42"}}
	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob", Delete: true}, index)

	require.Equal(t, StateSuccess, res.State)
	assert.Equal(t, OpDelete, res.Op)
	assert.Equal(t, 1, backend.deleteCalls)
	assert.Equal(t, "42", backend.lastDeleteID)
	assert.Zero(t, backend.createCalls)
	assert.Zero(t, backend.updateCalls)
}

func TestSubmitDeleteWithoutMatchMakesNoCalls(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody line")

	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob", Delete: true}, nil)

	require.Equal(t, StateFailed, res.State)
	var notFound *NotFoundError
	require.ErrorAs(t, res.Err, &notFound)
	assert.Zero(t, backend.createCalls+backend.updateCalls+backend.deleteCalls+backend.listCalls)
}

func TestSubmitValidation(t *testing.T) {
	path := writeNewsFile(t, "Alpha\nBody")

	cases := []struct {
		name           string
		req            Request
		requiresAuthor bool
	}{
		{"missing username", Request{Path: path}, true},
		{"missing path", Request{Username: "bob"}, true},
		{"wrong extension", Request{Path: "notes.md", Username: "bob"}, true},
		{"unreadable file", Request{Path: filepath.Join(t.TempDir(), "gone.txt"), Username: "bob"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			backend := &fakeBackend{requiresAuthor: c.requiresAuthor}
			sub := NewSubmitter(backend, quietLogger())

			res := sub.Submit(context.Background(), c.req, nil)

			require.Equal(t, StateFailed, res.State)
			var verr *ValidationError
			assert.ErrorAs(t, res.Err, &verr)
			assert.Zero(t, backend.createCalls+backend.updateCalls+backend.deleteCalls,
				"validation failures must not reach the network")
		})
	}
}

func TestSubmitUsernameOptionalForFileHost(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: false}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody")

	res := sub.Submit(context.Background(), Request{Path: path}, nil)

	require.Equal(t, StateSuccess, res.State)
	assert.Equal(t, OpCreate, res.Op)
}

func TestSubmitEmptyFileAccepted(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "")

	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob"}, nil)

	require.Equal(t, StateSuccess, res.State)
	assert.Equal(t, UntitledTitle, backend.lastCreated.Title)
	assert.Empty(t, backend.lastCreated.Body)
}

func TestSubmitQuotedPath(t *testing.T) {
	backend := &fakeBackend{requiresAuthor: true}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody")

	res := sub.Submit(context.Background(), Request{Path: `"` + path + `"`, Username: "bob"}, nil)

	require.Equal(t, StateSuccess, res.State)
}

func TestSubmitBackendFailureSurfaces(t *testing.T) {
	boom := &NetworkError{Op: "create", Err: errors.New("connection refused")}
	backend := &fakeBackend{requiresAuthor: true, failWith: boom}
	sub := NewSubmitter(backend, quietLogger())
	path := writeNewsFile(t, "Alpha\nBody")

	res := sub.Submit(context.Background(), Request{Path: path, Username: "bob"}, nil)

	require.Equal(t, StateFailed, res.State)
	assert.Equal(t, OpCreate, res.Op)
	var nerr *NetworkError
	assert.ErrorAs(t, res.Err, &nerr)
	assert.NotEmpty(t, res.Message)
}
