// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

// Version is the CLI version string, overridden at build time via -ldflags.
var Version = "0.0.0-dev"
