// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509revoke

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"

	x509crl "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/crl"
	x509store "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/store"
)

var (
	// ErrNoLocalCRL indicates the offline policy found no CRL for the
	// certificate's issuer in the trust store. This is a hard error, never
	// silently "not revoked".
	ErrNoLocalCRL = errors.New("x509revoke: no dedicated local CRL available")

	// ErrNoDistributionPoint indicates neither the certificate nor its
	// issuer certificate carries a usable CRL distribution point.
	ErrNoDistributionPoint = errors.New("x509revoke: no CRL distribution point available")

	// ErrAllDownloadsFailed indicates every distribution-point download
	// attempt failed. The individual causes are joined into the error chain.
	ErrAllDownloadsFailed = errors.New("x509revoke: downloading the CRL failed for all distribution points")

	// ErrUnusableCRL indicates a CRL was obtained but is stale or not yet
	// valid, so the revocation status is indeterminate.
	ErrUnusableCRL = errors.New("x509revoke: CRL validity is indeterminate")
)

// Result is the revocation decision for a certificate.
type Result int

const (
	// ResultUnknown is the zero value returned alongside an error.
	ResultUnknown Result = iota
	// ResultNotRevoked means the certificate's serial is absent from a
	// fresh CRL (or no check was requested).
	ResultNotRevoked
	// ResultRevoked means the certificate's serial appears in a fresh CRL.
	ResultRevoked
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultNotRevoked:
		return "not revoked"
	case ResultRevoked:
		return "revoked"
	default:
		return "unknown"
	}
}

// Checker runs the revocation policy state machine against a per-call trust
// store.
type Checker struct {
	store     *x509store.Store
	fetcher   *x509crl.Fetcher
	validator *x509crl.Validator
}

// NewChecker creates a Checker over the given store, fetcher, and validator.
func NewChecker(store *x509store.Store, fetcher *x509crl.Fetcher, validator *x509crl.Validator) *Checker {
	return &Checker{
		store:     store,
		fetcher:   fetcher,
		validator: validator,
	}
}

// Check determines the revocation status of cert under the given policy.
//
// Auto is expressed as an explicit two-branch sequence rather than
// recursion: a single online attempt, then a single offline attempt whose
// outcome replaces the online failure.
func (c *Checker) Check(ctx context.Context, cert *x509.Certificate, policy Policy) (Result, error) {
	switch policy {
	case PolicyNone:
		return ResultNotRevoked, nil
	case PolicyOffline:
		return c.checkOffline(cert)
	case PolicyOnline:
		return c.checkOnline(ctx, cert)
	case PolicyAuto:
		result, err := c.checkOnline(ctx, cert)
		if err != nil {
			// The online failure is deliberately discarded; callers that
			// need both diagnostics run Online and Offline explicitly.
			return c.checkOffline(cert)
		}
		return result, nil
	default:
		return ResultUnknown, fmt.Errorf("%w: %d", ErrUnsupportedPolicy, int(policy))
	}
}

// checkOffline looks up a CRL for the certificate's issuer in the trust
// store's CRL directory.
func (c *Checker) checkOffline(cert *x509.Certificate) (Result, error) {
	crl, err := c.store.CRLByIssuer(cert.RawIssuer)
	if err != nil {
		return ResultUnknown, fmt.Errorf("%w: issuer %s", ErrNoLocalCRL, cert.Issuer)
	}
	return c.evaluate(crl, cert)
}

// checkOnline discovers distribution points and downloads the first CRL
// that any of them yields.
func (c *Checker) checkOnline(ctx context.Context, cert *x509.Certificate) (Result, error) {
	uris, err := c.distributionPoints(cert)
	if err != nil {
		return ResultUnknown, err
	}

	var causes []error
	for _, uri := range uris {
		crl, err := c.fetcher.FetchCRL(ctx, uri)
		if err != nil {
			causes = append(causes, err)
			continue
		}
		return c.evaluate(crl, cert)
	}

	return ResultUnknown, fmt.Errorf("%w: %w", ErrAllDownloadsFailed, errors.Join(causes...))
}

// distributionPoints returns the URI distribution points of the certificate,
// falling back to the issuer certificate's extension when the certificate
// carries none. Only URI-typed fullName entries are honored; the X.509
// parser already drops other name forms.
func (c *Checker) distributionPoints(cert *x509.Certificate) ([]string, error) {
	if len(cert.CRLDistributionPoints) > 0 {
		return cert.CRLDistributionPoints, nil
	}

	issuer, err := c.store.CertBySubject(cert.RawIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: no issuer certificate for %s", ErrNoDistributionPoint, cert.Issuer)
	}
	if len(issuer.CRLDistributionPoints) == 0 {
		return nil, fmt.Errorf("%w: neither %s nor its issuer carries the extension", ErrNoDistributionPoint, cert.Subject)
	}

	return issuer.CRLDistributionPoints, nil
}

// evaluate validates an obtained CRL and, only once it is Fresh, searches
// its revoked-serial set for the certificate's serial number.
func (c *Checker) evaluate(crl *x509.RevocationList, cert *x509.Certificate) (Result, error) {
	status, err := c.validator.Validate(crl, c.store)
	if err != nil {
		return ResultUnknown, fmt.Errorf("verifying crl: %w", err)
	}
	if status != x509crl.StatusFresh {
		return ResultUnknown, fmt.Errorf("%w: crl is %s", ErrUnusableCRL, status)
	}

	for _, entry := range crl.RevokedCertificateEntries {
		if entry.SerialNumber.Cmp(cert.SerialNumber) == 0 {
			return ResultRevoked, nil
		}
	}

	return ResultNotRevoked, nil
}
