// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims mirrors the identity claims the backend embeds in access
// tokens.
type accessClaims struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId"`
	jwt.RegisteredClaims
}

// UserFromToken decodes the user identity from an access token's claims
// without verifying the signature. Verification is the server's job; the
// client only needs the identity fields for display when the login
// response carries no profile.
func UserFromToken(token string) (*User, error) {
	var claims accessClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject claim")
	}
	return &User{
		ID:         claims.Subject,
		Name:       claims.Name,
		Role:       claims.Role,
		BusinessID: claims.BusinessID,
	}, nil
}
