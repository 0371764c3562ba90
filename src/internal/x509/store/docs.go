// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509store builds a per-call trust store from two filesystem roots:
// a CA directory holding trusted certificates and a CRL directory holding
// revocation lists. Both directories are scanned for PEM and DER encoded
// objects, matching the conventional hashed-directory trust-store layout
// without depending on the hash-based file names. Stores are cheap,
// call-scoped, and never shared or cached across verifications.
package x509store
