package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XbxAtWork/seamhanian-archives101/news"
)

// DefaultDiscordAPIBase is the production Discord REST endpoint. Tests
// point the backend at an httptest server instead.
const DefaultDiscordAPIBase = "https://discord.com/api/v10"

// DiscordConfig carries everything the channel backend needs. Token and
// ChannelID come from the environment at startup and are immutable for the
// run's lifetime.
type DiscordConfig struct {
	APIBase   string
	Token     string
	ChannelID string
}

// DiscordBackend stores news entries as messages in one channel. Each
// message body is the title/author/body wire encoding.
type DiscordBackend struct {
	cfg    DiscordConfig
	client *http.Client
	log    *logrus.Logger
}

// message is the subset of Discord's message object the portal reads.
type message struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// NewDiscordBackend validates the configuration and builds the backend.
// Missing credentials come back as a ConfigError so the caller can degrade
// the News tab instead of aborting.
func NewDiscordBackend(cfg DiscordConfig, log *logrus.Logger) (*DiscordBackend, error) {
	if cfg.Token == "" {
		return nil, &news.ConfigError{Missing: "discord token"}
	}
	if cfg.ChannelID == "" {
		return nil, &news.ConfigError{Missing: "discord channel id"}
	}
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultDiscordAPIBase
	}
	return &DiscordBackend{cfg: cfg, client: newHTTPClient(), log: log}, nil
}

func (b *DiscordBackend) Name() string         { return "discord" }
func (b *DiscordBackend) RequiresAuthor() bool { return true }

// List fetches the most recent messages and decodes each into an item.
// Discord reports RFC 3339 timestamps; anything unparsable is left as the
// zero time and sorts oldest.
func (b *DiscordBackend) List(ctx context.Context) ([]news.Item, error) {
	url := fmt.Sprintf("%s/channels/%s/messages?limit=%d", b.cfg.APIBase, b.cfg.ChannelID, MaxListItems)

	var msgs []message
	if err := b.do(ctx, http.MethodGet, url, nil, &msgs, http.StatusOK); err != nil {
		return nil, err
	}

	items := make([]news.Item, 0, len(msgs))
	for _, m := range msgs {
		item := news.DecodeChannel(m.Content)
		item.RemoteID = m.ID
		if ts, err := time.Parse(time.RFC3339, m.Timestamp); err == nil {
			item.Timestamp = ts
		}
		items = append(items, item)
	}

	b.log.WithField("count", len(items)).Debug("fetched channel messages")
	return items, nil
}

// Create posts a new message and returns its ID.
func (b *DiscordBackend) Create(ctx context.Context, item news.Item) (string, error) {
	url := fmt.Sprintf("%s/channels/%s/messages", b.cfg.APIBase, b.cfg.ChannelID)
	payload := map[string]string{"content": news.EncodeChannel(item)}

	var created message
	if err := b.do(ctx, http.MethodPost, url, payload, &created, http.StatusOK, http.StatusCreated); err != nil {
		return "", err
	}
	return created.ID, nil
}

// Update edits the message behind remoteID in place.
func (b *DiscordBackend) Update(ctx context.Context, remoteID string, item news.Item) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", b.cfg.APIBase, b.cfg.ChannelID, remoteID)
	payload := map[string]string{"content": news.EncodeChannel(item)}
	return b.do(ctx, http.MethodPatch, url, payload, nil, http.StatusOK)
}

// Delete removes the message behind remoteID.
func (b *DiscordBackend) Delete(ctx context.Context, remoteID string) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", b.cfg.APIBase, b.cfg.ChannelID, remoteID)
	return b.do(ctx, http.MethodDelete, url, nil, nil, http.StatusNoContent, http.StatusOK)
}

// do performs one authenticated JSON request. Every call carries the bot
// token; failures become NetworkError values for the UI to display.
func (b *DiscordBackend) do(ctx context.Context, method, url string, payload, result any, ok ...int) error {
	op := fmt.Sprintf("discord %s", method)

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return netErr(op, err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return netErr(op, err)
	}
	req.Header.Set("Authorization", "Bot "+b.cfg.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		b.log.WithError(err).WithField("url", url).Warn("discord request failed")
		return netErr(op, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp, ok...); err != nil {
		b.log.WithField("status", resp.StatusCode).WithField("url", url).Warn("discord request rejected")
		return err
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return netErr(op, err)
		}
	}
	return nil
}
