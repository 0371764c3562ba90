// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads verifier settings from a JSON or YAML file.
// Settings cover the trust store directories, the revocation policy, and
// network behavior for CRL downloads. Command-line flags take precedence over
// the file; the file takes precedence over built-in defaults.
package config
