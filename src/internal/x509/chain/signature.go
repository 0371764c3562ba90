// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"

	// Register the digest implementations VerifySignature may be asked for.
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

var (
	// ErrNoPublicKey indicates the certificate carries no public key of a
	// supported type.
	ErrNoPublicKey = errors.New("x509chain: unsupported or missing public key")

	// ErrVerificationFailed indicates the signature does not verify over
	// the data with the certificate's key.
	ErrVerificationFailed = errors.New("x509chain: signature verification failed")
)

// DefaultSignatureDigest is SHA-1, matching what existing smartcard
// deployments sign with. SHA-1 is cryptographically weak; callers targeting
// new deployments should use [VerifySignatureDigest] with a stronger hash.
const DefaultSignatureDigest = crypto.SHA1

// VerifySignature verifies a detached signature over data using the
// certificate's public key and the default digest.
func VerifySignature(cert *x509.Certificate, data, signature []byte) error {
	return VerifySignatureDigest(cert, data, signature, DefaultSignatureDigest)
}

// VerifySignatureDigest verifies a detached signature over data using the
// certificate's public key and the given digest algorithm. RSA signatures
// are expected in PKCS#1 v1.5 form, ECDSA signatures in ASN.1 form.
func VerifySignatureDigest(cert *x509.Certificate, data, signature []byte, hash crypto.Hash) error {
	if !hash.Available() {
		return fmt.Errorf("%w: digest %v not available", ErrVerificationFailed, hash)
	}

	h := hash.New()
	h.Write(data)
	digest := h.Sum(nil)

	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		if err := rsa.VerifyPKCS1v15(pub, hash, digest, signature); err != nil {
			return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
		}
		return nil
	case *ecdsa.PublicKey:
		if !ecdsa.VerifyASN1(pub, digest, signature) {
			return ErrVerificationFailed
		}
		return nil
	case nil:
		return ErrNoPublicKey
	default:
		return fmt.Errorf("%w: %T", ErrNoPublicKey, pub)
	}
}
