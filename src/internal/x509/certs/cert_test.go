// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/certs"
)

// newSelfSigned builds a self-signed certificate for codec tests.
func newSelfSigned(t *testing.T, commonName string, serial int64) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "failed to generate key")

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(serial),
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		BasicConstraintsValid: true,
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err, "failed to create certificate")

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err, "failed to parse created certificate")

	return cert
}

func TestCertificateOperations(t *testing.T) {
	decoder := x509certs.New()
	testCert := newSelfSigned(t, "codec-test", 1)

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Decode PEM Certificate",
			testFunc: func(t *testing.T) {
				cert, err := decoder.Decode(decoder.EncodePEM(testCert))
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, "codec-test", cert.Subject.CommonName, "unexpected CommonName")
				assert.True(t, cert.Equal(testCert), "decoded certificate does not match original")
			},
		},
		{
			name: "Decode DER Certificate",
			testFunc: func(t *testing.T) {
				cert, err := decoder.Decode(decoder.EncodeDER(testCert))
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(testCert), "decoded certificate does not match original")
			},
		},
		{
			name: "Decode Multiple From PEM Bundle",
			testFunc: func(t *testing.T) {
				other := newSelfSigned(t, "codec-test-2", 2)
				bundle := append(decoder.EncodePEM(testCert), decoder.EncodePEM(other)...)

				certs, err := decoder.DecodeMultiple(bundle)
				require.NoError(t, err, "DecodeMultiple() error")

				require.Len(t, certs, 2, "expected 2 certificates")
				assert.True(t, certs[0].Equal(testCert))
				assert.True(t, certs[1].Equal(other))
			},
		},
		{
			name: "Decode Multiple From DER",
			testFunc: func(t *testing.T) {
				certs, err := decoder.DecodeMultiple(testCert.Raw)
				require.NoError(t, err, "DecodeMultiple() error")

				require.Len(t, certs, 1, "expected 1 certificate")
				assert.True(t, certs[0].Equal(testCert))
			},
		},
		{
			name: "Encode-Decode Round Trip",
			testFunc: func(t *testing.T) {
				encodedDER := decoder.EncodeDER(testCert)
				assert.NotEmpty(t, encodedDER, "EncodeDER() returned empty result")

				decodedCert, err := decoder.Decode(encodedDER)
				require.NoError(t, err, "Decode() error")

				assert.True(t, testCert.Equal(decodedCert), "original and decoded certificates are not equal")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name: "Invalid PEM Block Type",
			input: `-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`,
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name: "Truncated Certificate Body",
			input: `-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`,
			expected: x509certs.ErrParsePKCS7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := x509certs.New()
			_, err := decoder.Decode([]byte(tt.input))
			assert.Equal(t, tt.expected, err, "expected specific error")
		})
	}
}

func TestCertificate_IsPEM(t *testing.T) {
	decoder := x509certs.New()
	testCert := newSelfSigned(t, "ispem-test", 3)

	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{name: "Valid PEM", input: decoder.EncodePEM(testCert), expected: true},
		{name: "DER Format", input: testCert.Raw, expected: false},
		{name: "Empty Input", input: []byte(""), expected: false},
		{name: "Garbage", input: []byte("not a pem block"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decoder.IsPEM(tt.input), "IsPEM() result incorrect")
		})
	}
}
