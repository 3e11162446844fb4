package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

// GitHubConfig carries the raw-file host settings. Files is the fixed set
// of news filenames to fetch; there is no directory listing.
type GitHubConfig struct {
	// RawBase serves plain file content, e.g.
	// https://raw.githubusercontent.com/<owner>/<repo>/main/Modules/News
	RawBase string
	// ContentsURL is the repository contents API for the same directory,
	// e.g. https://api.github.com/repos/<owner>/<repo>/contents/Modules/News
	ContentsURL string
	Token       string
	Files       []string
}

// GitHubBackend stores news entries as <title>.txt files in a repository
// directory. The title is the sole key; there is no author in the wire
// format and no delete operation.
type GitHubBackend struct {
	cfg    GitHubConfig
	client *http.Client
	log    *logrus.Logger
}

// NewGitHubBackend validates the configuration and builds the backend.
func NewGitHubBackend(cfg GitHubConfig, log *logrus.Logger) (*GitHubBackend, error) {
	if cfg.RawBase == "" {
		return nil, &news.ConfigError{Missing: "github raw base url"}
	}
	return &GitHubBackend{cfg: cfg, client: newHTTPClient(), log: log}, nil
}

func (b *GitHubBackend) Name() string         { return "github" }
func (b *GitHubBackend) RequiresAuthor() bool { return false }

// List fetches every configured file from the raw host. Raw responses
// carry no timestamp, so all items sort as oldest and keep config order.
func (b *GitHubBackend) List(ctx context.Context) ([]news.Item, error) {
	files := b.cfg.Files
	if len(files) > MaxListItems {
		files = files[:MaxListItems]
	}

	items := make([]news.Item, 0, len(files))
	for _, name := range files {
		content, err := b.fetchRaw(ctx, name)
		if err != nil {
			return nil, err
		}
		items = append(items, news.DecodeFile(content))
	}

	b.log.WithField("count", len(items)).Debug("fetched raw news files")
	return items, nil
}

// Create uploads <title>.txt through the contents API. If the file already
// exists its blob SHA is included so the PUT becomes an in-place update;
// GitHub requires the prior hash for overwrites.
func (b *GitHubBackend) Create(ctx context.Context, item news.Item) (string, error) {
	sha, exists, err := b.lookup(ctx, item.Title)
	if err != nil {
		return "", err
	}
	action := "Add"
	if exists {
		action = "Update"
	}
	return b.put(ctx, item, sha, fmt.Sprintf("%s news: %s", action, item.Title))
}

// Update re-uploads the entry. The remote ID from a raw listing is empty,
// so the current blob SHA is looked up on demand.
func (b *GitHubBackend) Update(ctx context.Context, remoteID string, item news.Item) error {
	sha := remoteID
	if sha == "" {
		looked, exists, err := b.lookup(ctx, item.Title)
		if err != nil {
			return err
		}
		if !exists {
			return &news.NotFoundError{Title: item.Title}
		}
		sha = looked
	}
	_, err := b.put(ctx, item, sha, fmt.Sprintf("Update news: %s", item.Title))
	return err
}

// Delete is not part of the raw-file host's contract.
func (b *GitHubBackend) Delete(ctx context.Context, remoteID string) error {
	return &news.UnsupportedError{Backend: b.Name(), Op: "delete"}
}

func (b *GitHubBackend) fetchRaw(ctx context.Context, name string) (string, error) {
	op := "github fetch"
	reqURL := b.cfg.RawBase + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", netErr(op, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		b.log.WithError(err).WithField("file", name).Warn("raw fetch failed")
		return "", netErr(op, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp, http.StatusOK); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", netErr(op, err)
	}
	return string(data), nil
}

// lookup asks the contents API whether <title>.txt exists and returns its
// blob SHA when it does. A 404 is a normal answer here, not a failure.
func (b *GitHubBackend) lookup(ctx context.Context, title string) (sha string, exists bool, err error) {
	op := "github lookup"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.fileURL(title), nil)
	if err != nil {
		return "", false, netErr(op, err)
	}
	b.authorize(req)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", false, netErr(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if err := checkStatus(op, resp, http.StatusOK); err != nil {
		return "", false, err
	}

	var meta struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return "", false, netErr(op, err)
	}
	return meta.SHA, true, nil
}

func (b *GitHubBackend) put(ctx context.Context, item news.Item, sha, commitMessage string) (string, error) {
	op := "github upload"

	payload := map[string]string{
		"message": commitMessage,
		"content": base64.StdEncoding.EncodeToString([]byte(news.EncodeFile(item))),
	}
	if sha != "" {
		payload["sha"] = sha
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", netErr(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.fileURL(item.Title), bytes.NewReader(data))
	if err != nil {
		return "", netErr(op, err)
	}
	b.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		b.log.WithError(err).WithField("title", item.Title).Warn("upload failed")
		return "", netErr(op, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp, http.StatusOK, http.StatusCreated); err != nil {
		return "", err
	}

	var result struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", netErr(op, err)
	}

	b.log.WithField("title", item.Title).Info("news file uploaded")
	return result.Content.SHA, nil
}

func (b *GitHubBackend) fileURL(title string) string {
	return b.cfg.ContentsURL + "/" + url.PathEscape(title+".txt")
}

func (b *GitHubBackend) authorize(req *http.Request) {
	if b.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+b.cfg.Token)
	}
}
