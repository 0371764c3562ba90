// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 trust verifier.
// It implements a Cobra-based CLI that validates a leaf certificate against a
// directory-based trust store, checks revocation under a selectable policy,
// optionally verifies a detached signature, and renders the outcome as plain
// text, JSON, an ASCII tree, or a markdown table. The package handles file I/O,
// context cancellation, and integrates with the logger package for output and
// error reporting.
package cli
