// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password["=:\s]+)([^\s",;}]+)`)
	reToken    = regexp.MustCompile(`(?i)(token["=:\s]+|bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"ACCESS_TOKEN", "REFRESH_TOKEN", "INVENTA_PASSWORD"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Mask(err.Error())
	}
	return context + ": " + Mask(err.Error())
}
