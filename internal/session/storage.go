// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Session persistence. The serialized state lives in the OS keychain via
// internal/keychain so the token never touches a plain file.

package session

import (
	"encoding/json"

	"inventa/cli/internal/keychain"
)

// state is the persisted session snapshot.
type state struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// loadState reads the session state from the keychain. Missing state
// yields the zero value.
func loadState() (state, error) {
	var st state
	km, err := keychain.GetManager()
	if err != nil {
		return st, err
	}
	data, err := km.LoadSessionState()
	if err != nil {
		return st, err
	}
	if len(data) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, err
	}
	return st, nil
}

// saveState writes the session state to the keychain.
func saveState(st state) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveSessionState(b)
}

// clearState removes the session state from the keychain.
func clearState() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearSessionState()
}
