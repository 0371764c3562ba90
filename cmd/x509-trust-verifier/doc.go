// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-trust-verifier is a command-line tool for validating X.509 certificate
// chains against a directory-based trust store and checking revocation via
// locally installed or downloaded CRLs.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-trust-verifier/cmd/x509-trust-verifier@latest
//
// # Usage
//
//	x509-trust-verifier -f INPUT_CERT [FLAGS]
//
// # Flags
//
//	-f, --file      Input certificate file (PEM, DER, or base64) [required]
//	-c, --config    Config file with defaults (JSON or YAML)
//	    --ca-dir    Directory of trusted CA certificates
//	    --crl-dir   Directory of locally installed CRLs
//	-p, --policy    Revocation policy: none, offline, online, or auto
//	    --signature Detached signature to verify with the certificate's key
//	    --data      Signed data for --signature
//	-j, --json      Emit JSON verification report
//	-t, --tree      Display validated chain as ASCII tree diagram
//	    --table     Display validated chain as markdown table
//
// # Exit codes
//
//	0   certificate chains to a trusted root and is not revoked
//	1   certificate is revoked
//	2   verification could not be completed
//	130 interrupted by signal
//
// # Examples
//
// Verify a certificate against a local trust store without touching the
// network:
//
//	x509-trust-verifier -f cert.pem --ca-dir /etc/pki/trust/cacerts \
//	  --crl-dir /etc/pki/trust/crls -p offline
//
// Prefer downloaded CRLs with local fallback, rendered as a table:
//
//	x509-trust-verifier -f cert.pem -p auto --table
//
// Verify a detached signature along with the chain:
//
//	x509-trust-verifier -f cert.pem --signature challenge.sig --data challenge.bin
package main
