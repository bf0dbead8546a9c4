// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package connectivity tracks the last-known online state of the machine.
// The gateway client consults the cached flag synchronously before every
// request; a background watcher keeps the flag current by probing the API
// health endpoint.
package connectivity

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// healthPath is probed to decide whether the backend is reachable.
const healthPath = "/health"

// Oracle caches the online flag. The zero state is "online" so the first
// request is attempted rather than rejected before any probe has run.
type Oracle struct {
	probeURL string
	client   *http.Client
	offline  atomic.Bool
}

// New creates an Oracle probing the given API base URL.
func New(baseURL string) *Oracle {
	return &Oracle{
		probeURL: strings.TrimRight(baseURL, "/") + healthPath,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Online returns the cached flag without blocking.
func (o *Oracle) Online() bool {
	return !o.offline.Load()
}

// SetOnline overrides the cached flag. Used when a platform network-change
// notification arrives and by tests.
func (o *Oracle) SetOnline(v bool) {
	o.offline.Store(!v)
}

// CheckNow performs a fresh probe, updates the cached flag and returns the
// result. Any response from the server, including an error status, counts
// as online; only a transport failure counts as offline.
func (o *Oracle) CheckNow(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.probeURL, nil)
	if err != nil {
		return o.Online()
	}
	resp, err := o.client.Do(req)
	if err != nil {
		o.offline.Store(true)
		return false
	}
	resp.Body.Close()
	o.offline.Store(false)
	return true
}

// Watch keeps the cached flag fresh by probing at the given interval until
// ctx is cancelled. Run it in its own goroutine for the process lifetime.
func (o *Oracle) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.CheckNow(ctx)
		}
	}
}
