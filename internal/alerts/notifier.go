// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package alerts shows user-facing failure notices for API calls.
// A latch guarantees that at most one notice is visible at a time, so a
// burst of concurrent failures with the same underlying cause produces a
// single message instead of a storm.
package alerts

import (
	"sync"

	"github.com/pterm/pterm"
)

// Kind identifies one of the four user-distinguishable failure conditions.
type Kind string

const (
	KindOffline        Kind = "offline"
	KindNetwork        Kind = "network"
	KindServer         Kind = "server"
	KindSessionExpired Kind = "session_expired"
)

// Notifier displays failure notices while suppressing duplicates.
// The zero value is not usable; construct with NewNotifier.
type Notifier struct {
	mu      sync.Mutex
	visible bool
	sink    func(Kind, string)
}

// NewNotifier creates a Notifier that renders notices to the terminal.
func NewNotifier() *Notifier {
	return &Notifier{sink: display}
}

// NewNotifierWithSink creates a Notifier that forwards notices to sink
// instead of the terminal. Used by tests to observe notice delivery.
func NewNotifierWithSink(sink func(Kind, string)) *Notifier {
	return &Notifier{sink: sink}
}

// Notify shows a notice for the given condition unless one is already
// visible. Call Dismiss once the user has acknowledged the notice.
func (n *Notifier) Notify(kind Kind, message string) {
	n.mu.Lock()
	if n.visible {
		n.mu.Unlock()
		return
	}
	n.visible = true
	sink := n.sink
	n.mu.Unlock()

	sink(kind, message)
}

// Dismiss resets the latch so the next failure episode can show a notice.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	n.visible = false
	n.mu.Unlock()
}

// display renders a notice for the given condition with troubleshooting
// hints, one style per condition so the user can tell them apart.
func display(kind Kind, message string) {
	switch kind {
	case KindOffline:
		pterm.Printf("📡 No internet connection\n")
		pterm.Println()
		pterm.Println("You appear to be offline. Please check:")
		pterm.Println("  • Wi-Fi or mobile data is turned on")
		pterm.Println("  • Airplane mode is off")
		pterm.Println()
	case KindNetwork:
		pterm.Printf("❌ Cannot reach the Inventa service\n")
		pterm.Println()
		pterm.Println("The server did not respond. This could mean:")
		pterm.Println("  • Slow or unstable internet connection")
		pterm.Println("  • Firewall blocking HTTPS requests")
		pterm.Println()
		pterm.Println("Please try again in a few moments.")
		pterm.Println()
	case KindServer:
		pterm.Printf("⚠️  Server error\n")
		pterm.Println()
		pterm.Println("The Inventa server encountered an internal error.")
		pterm.Println("This is not a problem with your setup.")
		pterm.Println("  • Please try again in a few minutes")
		pterm.Println()
	case KindSessionExpired:
		pterm.Printf("🔒 Session expired\n")
		pterm.Println()
		pterm.Println("Your session is no longer valid.")
		pterm.Println("   Please run: inventa login")
		pterm.Println()
	}
	if message != "" {
		pterm.Debug.Printf("Details: %s\n", message)
	}
}
