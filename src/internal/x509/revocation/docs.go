// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509revoke decides whether a certificate has been revoked,
// following one of four policies: no check at all, a CRL from the local
// trust store, a CRL downloaded from the certificate's distribution points,
// or online with automatic fallback to the local store.
//
// Whatever the source, a CRL is only consulted after the validator confirms
// its issuer signature and temporal window; a stale or not-yet-valid CRL is
// surfaced as an error, never treated as proof the certificate is clean.
package x509revoke
