// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509store

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	x509certs "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/certs"
)

var (
	// ErrSetup indicates the store could not be built from the supplied
	// directories (missing/unreadable directory or a malformed entry).
	ErrSetup = errors.New("x509store: store setup failed")

	// ErrCertNotFound indicates no certificate in the store matches the
	// requested subject.
	ErrCertNotFound = errors.New("x509store: no certificate found for subject")

	// ErrCRLNotFound indicates no CRL in the store matches the requested
	// issuer.
	ErrCRLNotFound = errors.New("x509store: no CRL found for issuer")
)

// crlBlockType is the PEM block type for CRLs in the conventional
// OpenSSL-style trust-store layout.
const crlBlockType = "X509 CRL"

// Store indexes the certificates and CRLs found under a CA directory and a
// CRL directory. It is built fresh per verification call and is read-only
// after construction.
type Store struct {
	decoder *x509certs.Certificate
	certs   []*x509.Certificate
	crls    []*x509.RevocationList
}

// New scans caDir for certificates and crlDir for CRLs, accepting both PEM
// and DER encodings. Any unreadable directory or malformed entry fails the
// whole construction with [ErrSetup].
func New(caDir, crlDir string) (*Store, error) {
	s := &Store{decoder: x509certs.New()}

	if err := s.loadCertDir(caDir); err != nil {
		return nil, fmt.Errorf("%w: CA directory %s: %w", ErrSetup, caDir, err)
	}
	if err := s.loadCRLDir(crlDir); err != nil {
		return nil, fmt.Errorf("%w: CRL directory %s: %w", ErrSetup, crlDir, err)
	}

	return s, nil
}

// loadCertDir loads every regular file in dir as one or more certificates.
func (s *Store) loadCertDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		certs, err := s.decoder.DecodeMultiple(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		s.certs = append(s.certs, certs...)
	}

	return nil
}

// loadCRLDir loads every regular file in dir as one or more CRLs.
func (s *Store) loadCRLDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		crls, err := parseCRLs(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		s.crls = append(s.crls, crls...)
	}

	return nil
}

// parseCRLs parses one or more CRLs from PEM or a single CRL from DER.
func parseCRLs(data []byte) ([]*x509.RevocationList, error) {
	if block, _ := pem.Decode(data); block != nil {
		var crls []*x509.RevocationList
		rest := data
		for {
			block, next := pem.Decode(rest)
			if block == nil {
				break
			}
			rest = next
			if block.Type != crlBlockType {
				continue
			}
			crl, err := x509.ParseRevocationList(block.Bytes)
			if err != nil {
				return nil, err
			}
			crls = append(crls, crl)
		}
		if len(crls) == 0 {
			return nil, fmt.Errorf("no %q PEM block found", crlBlockType)
		}
		return crls, nil
	}

	crl, err := x509.ParseRevocationList(data)
	if err != nil {
		return nil, err
	}
	return []*x509.RevocationList{crl}, nil
}

// CertBySubject returns the first stored certificate whose subject matches
// the given raw DER-encoded distinguished name.
func (s *Store) CertBySubject(rawSubject []byte) (*x509.Certificate, error) {
	for _, cert := range s.certs {
		if bytes.Equal(cert.RawSubject, rawSubject) {
			return cert, nil
		}
	}
	return nil, ErrCertNotFound
}

// CRLByIssuer returns the first stored CRL whose issuer matches the given
// raw DER-encoded distinguished name.
func (s *Store) CRLByIssuer(rawIssuer []byte) (*x509.RevocationList, error) {
	for _, crl := range s.crls {
		if bytes.Equal(crl.RawIssuer, rawIssuer) {
			return crl, nil
		}
	}
	return nil, ErrCRLNotFound
}

// Pools splits the stored certificates into root and intermediate pools for
// path validation. Self-signed entries become roots, everything else an
// intermediate.
func (s *Store) Pools() (roots, intermediates *x509.CertPool) {
	roots = x509.NewCertPool()
	intermediates = x509.NewCertPool()

	for _, cert := range s.certs {
		if isSelfSigned(cert) {
			roots.AddCert(cert)
		} else {
			intermediates.AddCert(cert)
		}
	}

	return roots, intermediates
}

// NumCerts returns the number of loaded certificates.
func (s *Store) NumCerts() int { return len(s.certs) }

// NumCRLs returns the number of loaded CRLs.
func (s *Store) NumCRLs() int { return len(s.crls) }

// isSelfSigned checks if a certificate is signed by its own key.
func isSelfSigned(cert *x509.Certificate) bool {
	if !bytes.Equal(cert.RawSubject, cert.RawIssuer) {
		return false
	}
	return cert.CheckSignatureFrom(cert) == nil
}
