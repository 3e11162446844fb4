package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/XbxAtWork/seamhanian-archives101/config"
	"github.com/XbxAtWork/seamhanian-archives101/intro"
	"github.com/XbxAtWork/seamhanian-archives101/logging"
	"github.com/XbxAtWork/seamhanian-archives101/news"
	"github.com/XbxAtWork/seamhanian-archives101/store"
	"github.com/XbxAtWork/seamhanian-archives101/tui"
)

func main() {
	noIntro := flag.Bool("no-intro", false, "skip the startup splash")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogFile, cfg.Debug)
	log.WithField("backend", cfg.Backend).Info("starting portal")

	// A missing token or channel id disables the News tab in place; the
	// rest of the portal still runs.
	backend, backendErr := buildBackend(cfg, log)
	var submitter *news.Submitter
	if backend != nil {
		submitter = news.NewSubmitter(backend, log)
	} else {
		log.WithError(backendErr).Warn("news backend disabled")
	}

	if !*noIntro {
		if err := intro.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running intro: %v\n", err)
			os.Exit(1)
		}
	}

	m := tui.NewModel(backend, backendErr, submitter, cfg.InfoPath, log)
	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// buildBackend picks the configured news store. Configuration gaps come
// back as an error for the UI to display, never as a fatal exit.
func buildBackend(cfg config.Config, log *logrus.Logger) (news.Backend, error) {
	switch cfg.Backend {
	case "github":
		b, err := store.NewGitHubBackend(store.GitHubConfig{
			RawBase:     cfg.GitHubRawBase,
			ContentsURL: cfg.GitHubContentsURL,
			Token:       cfg.GitHubToken,
			Files:       cfg.GitHubNewsFiles,
		}, log)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		b, err := store.NewDiscordBackend(store.DiscordConfig{
			APIBase:   cfg.DiscordAPIBase,
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
		}, log)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}
