// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOracleStartsOnline(t *testing.T) {
	o := New("http://example.invalid")
	require.True(t, o.Online(), "first request should be attempted before any probe")
}

func TestCheckNowReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	o := New(srv.URL)
	o.SetOnline(false)

	require.True(t, o.CheckNow(context.Background()))
	require.True(t, o.Online())
}

func TestCheckNowErrorStatusStillCountsAsOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	o := New(srv.URL)
	require.True(t, o.CheckNow(context.Background()), "any response means the network is up")
}

func TestCheckNowUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	o := New(srv.URL)
	require.False(t, o.CheckNow(context.Background()))
	require.False(t, o.Online())
}

func TestSetOnline(t *testing.T) {
	o := New("http://example.invalid")
	o.SetOnline(false)
	require.False(t, o.Online())
	o.SetOnline(true)
	require.True(t, o.Online())
}
