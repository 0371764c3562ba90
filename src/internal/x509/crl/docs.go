// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509crl retrieves and validates [CRL] objects.
//
// The fetcher turns an arbitrary URI into a parsed revocation list: raw
// bytes come from a pluggable retrieval collaborator (file and HTTP(S) by
// default), PEM framing is detected by the literal X509 CRL markers and
// decoded through the strict base64 decoder, and the resulting DER is parsed
// with the standard library.
//
// The validator decides whether a CRL may be trusted at all: its issuer must
// be present in the trust store, the issuer's key must verify the CRL
// signature, and the current time must lie within the update window. Only a
// Fresh CRL is authoritative for revocation lookups.
//
// [CRL]: https://grokipedia.com/page/Certificate_revocation_list
package x509crl
