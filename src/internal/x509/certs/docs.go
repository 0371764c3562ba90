// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides specialized encoding and decoding operations for [X.509] certificates.
// It supports multiple formats including [PEM], DER, and [PKCS7]. This package is used
// by the trust store to load CA directory entries and by the verifier CLI to
// parse input certificates.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
