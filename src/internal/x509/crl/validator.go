// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509crl

import (
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	x509store "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/store"
)

var (
	// ErrIssuerNotFound indicates the CRL issuer's certificate is not in the
	// trust store, so the signature cannot be checked.
	ErrIssuerNotFound = errors.New("x509crl: CRL issuer certificate not found in store")

	// ErrBadSignature indicates the issuer's public key did not verify the
	// CRL signature.
	ErrBadSignature = errors.New("x509crl: CRL signature verification failed")

	// ErrBadTimestamp indicates a missing or unusable update field.
	ErrBadTimestamp = errors.New("x509crl: CRL has an invalid update field")
)

// Status is the outcome of validating a CRL against the trust store and the
// current time. Only [StatusFresh] permits revocation lookups against the
// CRL's contents.
type Status int

const (
	// StatusInvalid is the zero value returned alongside an error.
	StatusInvalid Status = iota
	// StatusFresh means the CRL is signed by a trusted issuer and current.
	StatusFresh
	// StatusStale means the CRL's next update time has passed.
	StatusStale
	// StatusNotYetValid means the CRL's last update time is in the future.
	StatusNotYetValid
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusNotYetValid:
		return "not yet valid"
	default:
		return "invalid"
	}
}

// Validator checks a CRL's issuer signature and temporal validity window.
type Validator struct {
	clock clockwork.Clock
}

// NewValidator creates a Validator using the real clock.
func NewValidator() *Validator {
	return &Validator{clock: clockwork.NewRealClock()}
}

// NewValidatorWithClock creates a Validator with an injected clock.
// Tests use a fake clock to pin "now" against synthetic CRL timestamps.
func NewValidatorWithClock(clock clockwork.Clock) *Validator {
	return &Validator{clock: clock}
}

// Validate checks the CRL in security-relevant order: issuer lookup, then
// signature, then temporal window. A CRL whose signature does not verify is
// rejected before its timestamps are even considered.
func (v *Validator) Validate(crl *x509.RevocationList, store *x509store.Store) (Status, error) {
	issuer, err := store.CertBySubject(crl.RawIssuer)
	if err != nil {
		return StatusInvalid, fmt.Errorf("%w: %s", ErrIssuerNotFound, crl.Issuer)
	}

	if err := crl.CheckSignatureFrom(issuer); err != nil {
		return StatusInvalid, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	now := v.clock.Now()

	if crl.ThisUpdate.IsZero() {
		return StatusInvalid, fmt.Errorf("%w: last update", ErrBadTimestamp)
	}
	if crl.ThisUpdate.After(now) {
		return StatusNotYetValid, nil
	}

	if crl.NextUpdate.IsZero() {
		return StatusInvalid, fmt.Errorf("%w: next update", ErrBadTimestamp)
	}
	if crl.NextUpdate.Before(now) {
		return StatusStale, nil
	}

	return StatusFresh, nil
}
