// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package apiclient

import (
	"context"
	"sync"
)

// refreshGroup coordinates the single-flight refresh protocol. At most one
// refresh call is in flight at any time; requests that hit an expired token
// while one is running park themselves as waiters and are released, in
// arrival order, once that refresh settles.
type refreshGroup struct {
	mu       sync.Mutex
	inFlight bool
	waiters  []chan refreshResult
}

// refreshResult is delivered to every waiter when a refresh settles.
// Exactly one of token/err is set.
type refreshResult struct {
	token string
	err   error
}

// join registers the caller with the group. If a refresh is already in
// flight it returns a buffered channel the caller must wait on; otherwise
// it marks the refresh in flight and returns nil, making the caller the
// leader responsible for calling settle.
func (g *refreshGroup) join() chan refreshResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight {
		ch := make(chan refreshResult, 1)
		g.waiters = append(g.waiters, ch)
		return ch
	}
	g.inFlight = true
	return nil
}

// settle clears the in-flight flag and releases all waiters with the
// outcome, preserving enqueue order. The buffered channels make delivery
// non-blocking, so release order equals notification order even though the
// waiters' resends then race freely.
func (g *refreshGroup) settle(res refreshResult) {
	g.mu.Lock()
	g.inFlight = false
	waiters := g.waiters
	g.waiters = nil
	g.mu.Unlock()

	for _, ch := range waiters {
		ch <- res
	}
}

// recover handles an ACCESS_EXPIRED response for a request that has not
// been replayed yet. The leader performs the refresh call and replays its
// own request; followers wait for the leader's outcome and replay theirs.
// On refresh failure the session is cleared and every parked request fails
// with ErrSessionExpired rather than hanging.
func (c *Client) recover(ctx context.Context, method, path string, payload []byte, out any) error {
	if ch := c.refresh.join(); ch != nil {
		select {
		case res := <-ch:
			if res.err != nil {
				return res.err
			}
			return c.do(ctx, method, path, payload, out, true)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.log.Debug().Str("path", path).Msg("access token expired, refreshing")
	token, err := c.callRefresh(ctx)
	if err != nil {
		c.expireSession()
		c.refresh.settle(refreshResult{err: ErrSessionExpired})
		return ErrSessionExpired
	}

	// Store the token before releasing waiters so no resend can observe a
	// stale session.
	c.session.SetToken(token)
	c.refresh.settle(refreshResult{token: token})
	return c.do(ctx, method, path, payload, out, true)
}
