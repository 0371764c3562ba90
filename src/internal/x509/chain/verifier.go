// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"

	x509crl "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/crl"
	x509revoke "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/revocation"
	x509store "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/store"
)

// ErrChainInvalid indicates the certificate does not chain to a trusted
// root within basic constraints. The underlying library diagnostic is
// preserved in the error chain; the failure is reported, never retried.
var ErrChainInvalid = errors.New("x509chain: certificate chain is invalid")

// Decision is the full outcome of one verification call: the revocation
// result plus the validated chain, leaf first.
type Decision struct {
	Result x509revoke.Result
	Policy x509revoke.Policy
	Chain  []*x509.Certificate
}

// Verifier drives chain validation and revocation checking. The zero value
// is not usable; construct with [NewVerifier].
type Verifier struct {
	Fetcher   *x509crl.Fetcher
	Validator *x509crl.Validator
}

// NewVerifier creates a Verifier with a default CRL fetcher and a
// real-clock validator.
func NewVerifier(version string) *Verifier {
	return &Verifier{
		Fetcher:   x509crl.NewFetcher(version),
		Validator: x509crl.NewValidator(),
	}
}

// Verify builds a trust store from caDir and crlDir, validates that cert
// chains to a trusted root, and then checks revocation under the given
// policy. All store and validation state is call-scoped and released on
// every exit path.
func (v *Verifier) Verify(ctx context.Context, cert *x509.Certificate, caDir, crlDir string, policy x509revoke.Policy) (*Decision, error) {
	store, err := x509store.New(caDir, crlDir)
	if err != nil {
		return nil, err
	}

	roots, intermediates := store.Pools()
	opts := x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		// No purpose restriction; the caller decides what the certificate
		// is for.
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	chains, err := cert.Verify(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChainInvalid, err)
	}

	checker := x509revoke.NewChecker(store, v.Fetcher, v.Validator)
	result, err := checker.Check(ctx, cert, policy)
	if err != nil {
		return nil, err
	}

	return &Decision{
		Result: result,
		Policy: policy,
		Chain:  chains[0],
	}, nil
}

// VerifyCertificate is the plain-result form of [Verifier.Verify]: it
// reports whether cert is revoked under the given policy, or an error when
// the store cannot be built, the chain does not validate, or the revocation
// status is indeterminate.
func (v *Verifier) VerifyCertificate(ctx context.Context, cert *x509.Certificate, caDir, crlDir string, policy x509revoke.Policy) (x509revoke.Result, error) {
	decision, err := v.Verify(ctx, cert, caDir, crlDir, policy)
	if err != nil {
		return x509revoke.ResultUnknown, err
	}
	return decision.Result, nil
}
