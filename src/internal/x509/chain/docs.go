// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain implements [X.509] certificate trust decisions. It
// provides capabilities to:
//   - Build a per-call trust store from CA and CRL directories.
//   - Validate that a certificate chains to a trusted root.
//   - Check revocation under a configurable [CRL] policy (none, offline,
//     online, or automatic fallback).
//   - Verify detached signatures against a certificate's public key.
//
// Every verification call builds and releases its own store and validation
// state, so concurrent callers need no external locking.
//
// [X.509]: https://grokipedia.com/page/X.509
// [CRL]: https://grokipedia.com/page/Certificate_revocation_list
package x509chain
