// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package alerts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifierSuppressesWhileVisible(t *testing.T) {
	var got []Kind
	n := NewNotifierWithSink(func(k Kind, _ string) { got = append(got, k) })

	n.Notify(KindServer, "boom")
	n.Notify(KindServer, "boom again")
	n.Notify(KindNetwork, "different cause, same episode")

	require.Equal(t, []Kind{KindServer}, got)
}

func TestNotifierResetsAfterDismiss(t *testing.T) {
	var got []Kind
	n := NewNotifierWithSink(func(k Kind, _ string) { got = append(got, k) })

	n.Notify(KindOffline, "")
	n.Dismiss()
	n.Notify(KindSessionExpired, "")

	require.Equal(t, []Kind{KindOffline, KindSessionExpired}, got)
}
