// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package base64dec implements a strict [base64] decoder for PEM-framed
// payloads such as CRL bodies. Unlike [encoding/base64], it rejects any
// character outside the standard alphabet (including whitespace), so callers
// are expected to strip PEM framing and line breaks before decoding.
//
// [base64]: https://grokipedia.com/page/Base64
package base64dec
