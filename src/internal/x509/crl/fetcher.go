// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509crl

import (
	"bytes"
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/encoding/base64dec"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/helper/gc"
)

var (
	// ErrFetchFailed indicates the retrieval collaborator could not deliver
	// any bytes for the URI.
	ErrFetchFailed = errors.New("x509crl: failed to retrieve CRL data")

	// ErrDecodeFailed indicates PEM framing was detected but the enclosed
	// base64 body did not decode.
	ErrDecodeFailed = errors.New("x509crl: invalid base64 (PEM) CRL body")

	// ErrParseFailed indicates the DER bytes did not parse as a CRL.
	ErrParseFailed = errors.New("x509crl: failed to parse DER CRL")

	// ErrUnsupportedScheme indicates the default retriever has no handler
	// for the URI scheme. Callers with exotic schemes (ldap and friends)
	// plug their own FetchFunc.
	ErrUnsupportedScheme = errors.New("x509crl: unsupported URI scheme")
)

// PEM framing markers for CRL payloads fetched from distribution points.
const (
	beginMarker = "-----BEGIN X509 CRL-----"
	endMarker   = "-----END X509 CRL-----"
)

// FetchFunc retrieves the raw bytes behind a URI. The URI scheme is opaque
// to the fetcher; the collaborator owns scheme handling entirely.
type FetchFunc func(ctx context.Context, uri string) ([]byte, error)

// HTTPConfig holds HTTP client configuration for CRL downloads
type HTTPConfig struct {
	Timeout   time.Duration // HTTP request timeout
	Version   string        // Application version for User-Agent
	UserAgent string        // Custom User-Agent string, if empty will be constructed from Version

	mu     sync.Mutex
	client *http.Client
}

// NewHTTPConfig creates a new HTTP configuration with a default timeout of
// 10 seconds and the provided application version.
func NewHTTPConfig(version string) *HTTPConfig {
	return &HTTPConfig{
		Timeout:   10 * time.Second,
		Version:   version,
		UserAgent: "",
	}
}

// GetUserAgent returns the User-Agent string, constructing it if not set.
func (c *HTTPConfig) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("X.509-Trust-Verifier/%s (+https://github.com/H0llyW00dzZ/x509-trust-verifier)", c.Version)
}

// Client returns an HTTP client configured with the current timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *HTTPConfig) Client() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
		return c.client
	}

	if c.client.Timeout != c.Timeout {
		c.client.Timeout = c.Timeout
	}

	return c.client
}

// Fetcher downloads CRLs from distribution-point URIs and normalizes them
// into parsed revocation lists.
type Fetcher struct {
	HTTPConfig *HTTPConfig

	// FetchFunc overrides the retrieval collaborator. When nil, the default
	// retriever handles file paths, file://, and http(s):// URIs.
	FetchFunc FetchFunc
}

// NewFetcher creates a Fetcher with default HTTP configuration.
func NewFetcher(version string) *Fetcher {
	return &Fetcher{HTTPConfig: NewHTTPConfig(version)}
}

// FetchCRL retrieves the bytes behind uri, converts PEM framing to DER if
// present, and parses the result into a revocation list.
func (f *Fetcher) FetchCRL(ctx context.Context, uri string) (*x509.RevocationList, error) {
	retrieve := f.FetchFunc
	if retrieve == nil {
		retrieve = f.defaultFetch
	}

	data, err := retrieve(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, uri, err)
	}

	der, err := normalizeDER(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailed, uri, err)
	}

	crl, err := x509.ParseRevocationList(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFailed, uri, err)
	}

	return crl, nil
}

// normalizeDER converts base64 (PEM framed) data to DER if both CRL markers
// are present with the begin marker strictly before the end marker.
// Otherwise the data is assumed to be DER already.
func normalizeDER(data []byte) ([]byte, error) {
	i := bytes.Index(data, []byte(beginMarker))
	j := bytes.Index(data, []byte(endMarker))
	if i < 0 || j < 0 || i >= j {
		return data, nil
	}

	body := stripSpace(string(data[i+len(beginMarker) : j]))
	return base64dec.Decode(body)
}

// stripSpace removes the line breaks and padding whitespace of a PEM body.
// The base64 decoder itself rejects whitespace, so framing cleanup happens
// here.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

// defaultFetch retrieves file paths, file:// URIs, and http(s):// URIs.
func (f *Fetcher) defaultFetch(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "", "file":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		if path == "" {
			path = uri
		}
		return os.ReadFile(path)
	case "http", "https":
		return f.fetchHTTP(ctx, uri)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
}

// fetchHTTP downloads uri using the configured HTTP client and a pooled
// read buffer.
func (f *Fetcher) fetchHTTP(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.HTTPConfig.GetUserAgent())

	resp, err := f.HTTPConfig.Client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	// Get a buffer from the pool
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	return append([]byte(nil), buf.Bytes()...), nil
}
