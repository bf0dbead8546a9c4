// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package apiclient_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"inventa/cli/internal/alerts"
	"inventa/cli/internal/apiclient"
	"inventa/cli/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeOracle is a controllable connectivity flag.
type fakeOracle struct {
	online atomic.Bool
}

func (f *fakeOracle) Online() bool { return f.online.Load() }

// alertRecorder captures notices instead of rendering them.
type alertRecorder struct {
	mu    sync.Mutex
	kinds []alerts.Kind
}

func (r *alertRecorder) sink(kind alerts.Kind, _ string) {
	r.mu.Lock()
	r.kinds = append(r.kinds, kind)
	r.mu.Unlock()
}

func (r *alertRecorder) recorded() []alerts.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]alerts.Kind(nil), r.kinds...)
}

// fixture wires a client against a test server with isolated collaborators.
type fixture struct {
	client  *apiclient.Client
	session *session.Store
	oracle  *fakeOracle
	alerts  *alertRecorder
}

func newFixture(t *testing.T, baseURL string) *fixture {
	t.Helper()
	f := &fixture{
		session: session.NewStore(),
		oracle:  &fakeOracle{},
		alerts:  &alertRecorder{},
	}
	f.oracle.online.Store(true)
	notifier := alerts.NewNotifierWithSink(f.alerts.sink)
	f.client = apiclient.New(baseURL, f.session, f.oracle, notifier, zerolog.Nop())
	return f
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func TestSingleFlightRefresh(t *testing.T) {
	const k = 4

	var refreshCalls, expiredServed atomic.Int64
	var resendTokens sync.Map
	allExpired := make(chan struct{})

	mux := http.NewServeMux()
	handler := func(path string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth != "Bearer tok2" {
				if expiredServed.Add(1) == k {
					close(allExpired)
				}
				writeJSON(w, http.StatusUnauthorized, `{"code":"ACCESS_EXPIRED"}`)
				return
			}
			resendTokens.Store(path+"/"+r.Header.Get("X-Request-ID"), auth)
			writeJSON(w, http.StatusOK, `{"ok":true}`)
		}
	}
	mux.HandleFunc("/products", handler("/products"))
	mux.HandleFunc("/sales", handler("/sales"))
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		// Hold the refresh until every request has seen ACCESS_EXPIRED, so
		// the late arrivals must queue behind this one refresh.
		select {
		case <-allExpired:
		case <-time.After(5 * time.Second):
			t.Error("timed out waiting for concurrent requests")
		}
		time.Sleep(50 * time.Millisecond)
		writeJSON(w, http.StatusOK, `{"accessToken":"tok2"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", &session.User{ID: "u1"})

	paths := []string{"/products", "/sales", "/products", "/sales"}
	errs := make([]error, k)
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var out map[string]any
			errs[i] = f.client.Do(context.Background(), http.MethodGet, paths[i], nil, &out)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "request %d", i)
	}
	require.Equal(t, int64(1), refreshCalls.Load(), "exactly one refresh call")
	require.Equal(t, "tok2", f.session.Token())

	resends := 0
	resendTokens.Range(func(_, v any) bool {
		resends++
		require.Equal(t, "Bearer tok2", v)
		return true
	})
	require.Equal(t, k, resends, "every request replayed with the new token")
}

func TestRetryOnce(t *testing.T) {
	var productCalls, refreshCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		productCalls.Add(1)
		// Misbehaving server: expired no matter what token arrives.
		writeJSON(w, http.StatusUnauthorized, `{"code":"ACCESS_EXPIRED"}`)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(w, http.StatusOK, `{"accessToken":"tok2"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", nil)

	err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr, "second ACCESS_EXPIRED passes through")
	require.Equal(t, apiclient.CodeAccessExpired, apiErr.Code)
	require.Equal(t, int64(2), productCalls.Load(), "original request replayed exactly once")
	require.Equal(t, int64(1), refreshCalls.Load())
}

func TestOfflineShortCircuit(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.oracle.online.Store(false)

	err := f.client.Do(context.Background(), http.MethodGet, "/warehouses", nil, nil)

	require.ErrorIs(t, err, apiclient.ErrOffline)
	require.Equal(t, int64(0), calls.Load(), "no network attempt while offline")
	require.Equal(t, []alerts.Kind{alerts.KindOffline}, f.alerts.recorded())
}

func TestTerminalCodesClearSession(t *testing.T) {
	codes := []string{
		apiclient.CodeRefreshExpired,
		apiclient.CodeRefreshInvalid,
		apiclient.CodeAccessInvalid,
		apiclient.CodeNoAccessToken,
	}
	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnauthorized, fmt.Sprintf(`{"code":%q}`, code))
			}))
			defer srv.Close()

			f := newFixture(t, srv.URL)
			f.session.Set("tok1", &session.User{ID: "u1", Name: "Ada"})

			err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)

			require.ErrorIs(t, err, apiclient.ErrSessionExpired)
			require.Empty(t, f.session.Token())
			require.Nil(t, f.session.User())
			require.Equal(t, []alerts.Kind{alerts.KindSessionExpired}, f.alerts.recorded())
		})
	}
}

func TestTerminalCodeWithoutSessionStaysQuiet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"code":"NO_ACCESS_TOKEN"}`)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	require.ErrorIs(t, err, apiclient.ErrSessionExpired)
	require.Empty(t, f.alerts.recorded(), "no notice when no token existed")
}

func TestRefreshSuccessUpdatesSession(t *testing.T) {
	var productTokens []string
	var mu sync.Mutex

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		mu.Lock()
		productTokens = append(productTokens, auth)
		mu.Unlock()
		if auth != "Bearer tok2" {
			writeJSON(w, http.StatusUnauthorized, `{"code":"ACCESS_EXPIRED"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"id":"p1","name":"Notebook"}]`)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"accessToken":"tok2"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", &session.User{ID: "u1"})

	var out []map[string]any
	err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "tok2", f.session.Token())
	require.Equal(t, []string{"Bearer tok1", "Bearer tok2"}, productTokens)
	require.Empty(t, f.alerts.recorded(), "transparent recovery shows no notice")
}

func TestServerFaultAlertDedup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{}`)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)

	for i := 0; i < 3; i++ {
		err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
		var srvErr *apiclient.ServerError
		require.ErrorAs(t, err, &srvErr)
		require.Equal(t, http.StatusInternalServerError, srvErr.Status)
	}
	require.Equal(t, []alerts.Kind{alerts.KindServer}, f.alerts.recorded(), "one dialog for the episode")
}

func TestRefreshFailureClearsSessionAndRejectsWaiters(t *testing.T) {
	const k = 3

	var refreshCalls, expiredServed atomic.Int64
	allExpired := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if expiredServed.Add(1) == k {
			close(allExpired)
		}
		writeJSON(w, http.StatusUnauthorized, `{"code":"ACCESS_EXPIRED"}`)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		select {
		case <-allExpired:
		case <-time.After(5 * time.Second):
			t.Error("timed out waiting for concurrent requests")
		}
		time.Sleep(50 * time.Millisecond)
		// Simulate the refresh credential being rejected.
		writeJSON(w, http.StatusUnauthorized, `{"code":"REFRESH_EXPIRED"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", &session.User{ID: "u1"})

	errs := make([]error, k)
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.ErrorIs(t, err, apiclient.ErrSessionExpired, "request %d", i)
	}
	require.Equal(t, int64(1), refreshCalls.Load())
	require.Empty(t, f.session.Token())
	require.Equal(t, []alerts.Kind{alerts.KindSessionExpired}, f.alerts.recorded())
}

func TestRefreshNetworkFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"code":"ACCESS_EXPIRED"}`)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		// Drop the connection without a response.
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", &session.User{ID: "u1"})

	err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	require.ErrorIs(t, err, apiclient.ErrSessionExpired)
	require.Empty(t, f.session.Token())
	require.Nil(t, f.session.User())
	require.Equal(t, []alerts.Kind{alerts.KindSessionExpired}, f.alerts.recorded())
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	f := newFixture(t, srv.URL)

	err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	var netErr *apiclient.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, []alerts.Kind{alerts.KindNetwork}, f.alerts.recorded())
}

func TestOtherErrorsPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"code":"NOT_FOUND","message":"no such product"}`)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", nil)

	err := f.client.Do(context.Background(), http.MethodGet, "/products/p404", nil, nil)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "NOT_FOUND", apiErr.Code)
	require.Equal(t, "no such product", apiErr.Message)
	require.Equal(t, "tok1", f.session.Token(), "session untouched")
	require.Empty(t, f.alerts.recorded(), "passthrough errors show no dialog")
}

func TestUnknown401CodePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"code":"MFA_REQUIRED"}`)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", nil)

	err := f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "MFA_REQUIRED", apiErr.Code)
	require.Equal(t, "tok1", f.session.Token())
}

func TestBearerAttachedOnlyWhenPresent(t *testing.T) {
	var sawAuth []string
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		sawAuth = append(sawAuth, r.Header.Get("Authorization"))
		mu.Unlock()
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	require.NoError(t, f.client.Do(context.Background(), http.MethodGet, "/health", nil, nil))

	f.session.Set("tok1", nil)
	require.NoError(t, f.client.Do(context.Background(), http.MethodGet, "/health", nil, nil))

	require.Equal(t, []string{"", "Bearer tok1"}, sawAuth)
}

func TestContextCancelledWhileWaiting(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"code":"ACCESS_EXPIRED"}`)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		writeJSON(w, http.StatusOK, `{"accessToken":"tok2"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	// Unblock the refresh handler before the server shuts down.
	defer close(release)

	f := newFixture(t, srv.URL)
	f.session.Set("tok1", nil)

	leaderDone := make(chan error, 1)
	go func() {
		leaderDone <- f.client.Do(context.Background(), http.MethodGet, "/products", nil, nil)
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	waiterDone := make(chan error, 1)
	go func() {
		waiterDone <- f.client.Do(ctx, http.MethodGet, "/products", nil, nil)
	}()

	// Give the waiter a moment to enqueue, then abandon it.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-waiterDone:
		require.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not observe cancellation")
	}
}
