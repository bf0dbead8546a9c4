// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	require.Empty(t, s.Token())
	require.Nil(t, s.User())

	u := &User{ID: "u1", Name: "Ada", Role: "owner", BusinessID: "b1"}
	s.Set("tok1", u)
	require.Equal(t, "tok1", s.Token())
	require.Equal(t, u, s.User())

	// Refresh path replaces only the token.
	s.SetToken("tok2")
	require.Equal(t, "tok2", s.Token())
	require.Equal(t, u, s.User())

	s.Clear()
	require.Empty(t, s.Token())
	require.Nil(t, s.User())
}

func TestUserFromToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":        "u42",
		"name":       "Grace",
		"role":       "admin",
		"businessId": "b7",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	u, err := UserFromToken(tok)
	require.NoError(t, err)
	require.Equal(t, &User{ID: "u42", Name: "Grace", Role: "admin", BusinessID: "b7"}, u)
}

func TestUserFromTokenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "definitely-not-a-token"},
		{name: "empty", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UserFromToken(tt.token)
			require.Error(t, err)
		})
	}
}

func TestUserFromTokenRequiresSubject(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "NoSub"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = UserFromToken(tok)
	require.Error(t, err)
}
