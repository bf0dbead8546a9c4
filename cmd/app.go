// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"time"

	"inventa/cli/internal/alerts"
	"inventa/cli/internal/api"
	"inventa/cli/internal/apiclient"
	"inventa/cli/internal/config"
	"inventa/cli/internal/connectivity"
	"inventa/cli/internal/logging"
	"inventa/cli/internal/session"

	"github.com/pterm/pterm"
)

// watchInterval is how often the connectivity oracle re-probes the backend
// while a command runs.
const watchInterval = 30 * time.Second

// app bundles the wired collaborators every command needs.
type app struct {
	cfg     config.Config
	session *session.Store
	oracle  *connectivity.Oracle
	api     *api.API
}

// newApp loads configuration, restores the persisted session and wires the
// gateway client with its collaborators. The connectivity watcher runs
// until ctx is cancelled (the command's lifetime).
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel)

	sess := session.Open()
	oracle := connectivity.New(cfg.APIBaseURL)
	go oracle.Watch(ctx, watchInterval)

	client := apiclient.New(cfg.APIBaseURL, sess, oracle, alerts.NewNotifier(), log)
	return &app{
		cfg:     cfg,
		session: sess,
		oracle:  oracle,
		api:     api.New(client),
	}, nil
}

// requireLogin reports whether a session exists, printing the standard
// hint when it does not.
func (a *app) requireLogin() bool {
	if a.session.Token() != "" {
		return true
	}
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'inventa login' to get started.")
	return false
}
