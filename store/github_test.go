package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

func newTestGitHub(t *testing.T, files []string, handler http.HandlerFunc) *GitHubBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b, err := NewGitHubBackend(GitHubConfig{
		RawBase:     srv.URL + "/raw",
		ContentsURL: srv.URL + "/contents",
		Token:       "secret",
		Files:       files,
	}, quietLogger())
	require.NoError(t, err)
	return b
}

func TestGitHubList(t *testing.T) {
	backend := newTestGitHub(t, []string{"first.txt", "second.txt"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/raw/first.txt":
			fmt.Fprint(w, "First\nbody one")
		case "/raw/second.txt":
			fmt.Fprint(w, "Second\nbody two")
		default:
			http.NotFound(w, r)
		}
	})

	items, err := backend.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "body one", items[0].Body)
	assert.Empty(t, items[0].Author, "raw files carry no author")
	assert.True(t, items[0].Timestamp.IsZero(), "raw files carry no timestamp")
	assert.Equal(t, "Second", items[1].Title)
}

func TestGitHubListFetchFailure(t *testing.T) {
	backend := newTestGitHub(t, []string{"gone.txt"}, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := backend.List(context.Background())
	var nerr *news.NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, http.StatusNotFound, nerr.Status)
}

func TestGitHubCreateNewFile(t *testing.T) {
	var sawLookup, sawPut bool

	backend := newTestGitHub(t, nil, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/contents/Alpha.txt", r.URL.Path)
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodGet:
			sawLookup = true
			http.NotFound(w, r)
		case http.MethodPut:
			sawPut = true
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

			raw, err := base64.StdEncoding.DecodeString(payload["content"])
			require.NoError(t, err)
			assert.Equal(t, "Alpha\nBody line", string(raw))
			assert.Equal(t, "Add news: Alpha", payload["message"])
			_, hasSHA := payload["sha"]
			assert.False(t, hasSHA, "new files must not send a prior hash")

			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"content": {"sha": "newsha"}}`)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})

	id, err := backend.Create(context.Background(), news.Item{Title: "Alpha", Body: "Body line"})
	require.NoError(t, err)
	assert.Equal(t, "newsha", id)
	assert.True(t, sawLookup && sawPut)
}

func TestGitHubCreateExistingFileSendsSHA(t *testing.T) {
	backend := newTestGitHub(t, nil, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `{"sha": "oldsha"}`)
		case http.MethodPut:
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "oldsha", payload["sha"])
			assert.Equal(t, "Update news: Alpha", payload["message"])
			fmt.Fprint(w, `{"content": {"sha": "newsha"}}`)
		}
	})

	id, err := backend.Create(context.Background(), news.Item{Title: "Alpha", Body: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "newsha", id)
}

func TestGitHubUpdateLooksUpMissingSHA(t *testing.T) {
	backend := newTestGitHub(t, nil, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `{"sha": "oldsha"}`)
		case http.MethodPut:
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "oldsha", payload["sha"])
			fmt.Fprint(w, `{"content": {"sha": "newsha"}}`)
		}
	})

	// Raw listings have no SHA; update must look it up before the PUT.
	err := backend.Update(context.Background(), "", news.Item{Title: "Alpha", Body: "edited"})
	require.NoError(t, err)
}

func TestGitHubUpdateMissingFile(t *testing.T) {
	backend := newTestGitHub(t, nil, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	err := backend.Update(context.Background(), "", news.Item{Title: "Alpha"})
	var nferr *news.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestGitHubDeleteUnsupported(t *testing.T) {
	backend := newTestGitHub(t, nil, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("delete must not reach the network")
	})

	err := backend.Delete(context.Background(), "whatever")
	var uerr *news.UnsupportedError
	require.ErrorAs(t, err, &uerr)
	assert.False(t, backend.RequiresAuthor())
}
