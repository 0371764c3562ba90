// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-trust-verifier/src/config"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/encoding/base64dec"
	x509certs "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/chain"
	x509revoke "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/revocation"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/logger"
)

var (
	// ErrInputFileRequired indicates the -f flag was not provided.
	ErrInputFileRequired = errors.New("cli: input certificate file is required")

	// ErrRevoked indicates verification completed and the certificate is
	// revoked. The binary maps this to its own exit code so hosts can
	// distinguish a revoked certificate from an operational failure.
	ErrRevoked = errors.New("cli: certificate is revoked")
)

// Operation status flags consumed by the binary entry point.
var (
	OperationPerformed             bool
	OperationPerformedSuccessfully bool
)

var (
	inputFile     string
	configFile    string
	caDir         string
	crlDir        string
	policyName    string
	signatureFile string
	dataFile      string
	jsonOutput    bool
	treeOutput    bool
	tableOutput   bool
)

// Execute runs the root command and returns any execution error.
// A revoked certificate is reported via [ErrRevoked]; all other non-nil
// returns indicate the verdict could not be established.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	rootCmd := &cobra.Command{
		Use:           "x509-trust-verifier",
		Short:         "X.509 certificate chain and revocation verifier",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execVerify(cmd.Context(), version, log)
		},
	}

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input certificate file (PEM, DER, or base64)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (JSON or YAML)")
	rootCmd.Flags().StringVar(&caDir, "ca-dir", "", "directory of trusted CA certificates")
	rootCmd.Flags().StringVar(&crlDir, "crl-dir", "", "directory of locally installed CRLs")
	rootCmd.Flags().StringVarP(&policyName, "policy", "p", "", "revocation policy: none, offline, online, or auto")
	rootCmd.Flags().StringVar(&signatureFile, "signature", "", "detached signature to verify with the certificate's key")
	rootCmd.Flags().StringVar(&dataFile, "data", "", "signed data for --signature")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "emit JSON verification report")
	rootCmd.Flags().BoolVarP(&treeOutput, "tree", "t", false, "display validated chain as ASCII tree diagram")
	rootCmd.Flags().BoolVar(&tableOutput, "table", false, "display validated chain as markdown table")

	return rootCmd.ExecuteContext(ctx)
}

// execVerify reads and decodes the input certificate, runs chain validation
// and revocation checking, optionally verifies a detached signature, and
// renders the outcome in the requested format.
func execVerify(ctx context.Context, version string, log logger.Logger) error {
	if inputFile == "" {
		return ErrInputFileRequired
	}

	// With --json, stdout carries only the report; progress goes to stderr
	// as structured records.
	if jsonOutput {
		log = logger.NewJSONLogger(os.Stderr, false)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	policy, err := x509revoke.ParsePolicy(cfg.Revocation.Policy)
	if err != nil {
		return err
	}

	cert, err := readCertificate(inputFile)
	if err != nil {
		return err
	}

	verifier := x509chain.NewVerifier(version)
	verifier.Fetcher.HTTPConfig.Timeout = time.Duration(cfg.Revocation.TimeoutSeconds) * time.Second

	decision, err := verifier.Verify(ctx, cert, cfg.Store.CADir, cfg.Store.CRLDir, policy)
	if err != nil {
		return err
	}
	OperationPerformed = true

	if signatureFile != "" {
		if err := verifyDetachedSignature(cert, cfg.Signature.Digest); err != nil {
			return err
		}
		log.Println("Detached signature verified.")
	}

	if err := render(decision, log); err != nil {
		return err
	}

	if decision.Result == x509revoke.ResultRevoked {
		return fmt.Errorf("%w: %s", ErrRevoked, cert.Subject.CommonName)
	}

	OperationPerformedSuccessfully = true
	return nil
}

// applyFlagOverrides lets explicit flags win over config file values.
func applyFlagOverrides(cfg *config.Config) {
	if caDir != "" {
		cfg.Store.CADir = caDir
	}
	if crlDir != "" {
		cfg.Store.CRLDir = crlDir
	}
	if policyName != "" {
		cfg.Revocation.Policy = policyName
	}
}

// readCertificate loads a certificate from file, accepting PEM, DER, or the
// certificate's DER bytes as a bare base64 string.
func readCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading input file: %w", err)
	}

	decoder := x509certs.New()
	cert, err := decoder.Decode(data)
	if err == nil {
		return cert, nil
	}

	// Not PEM or DER; a bare base64 rendering of the DER bytes is still
	// accepted for callers that transport certificates as text.
	raw, b64Err := base64dec.Decode(strings.TrimSpace(string(data)))
	if b64Err != nil {
		return nil, err
	}
	return decoder.Decode(raw)
}

// verifyDetachedSignature checks the --signature file against the --data file
// using the certificate's public key.
func verifyDetachedSignature(cert *x509.Certificate, digestName string) error {
	if dataFile == "" {
		return errors.New("cli: --signature requires --data")
	}

	signature, err := os.ReadFile(signatureFile)
	if err != nil {
		return fmt.Errorf("cli: reading signature file: %w", err)
	}
	data, err := os.ReadFile(dataFile)
	if err != nil {
		return fmt.Errorf("cli: reading data file: %w", err)
	}

	// Signatures are often transported as base64 text.
	if decoded, err := base64dec.Decode(strings.TrimSpace(string(signature))); err == nil {
		signature = decoded
	}

	digest, err := digestFromName(digestName)
	if err != nil {
		return err
	}
	return x509chain.VerifySignatureDigest(cert, data, signature, digest)
}

// digestFromName maps a config digest name to a crypto.Hash.
func digestFromName(name string) (crypto.Hash, error) {
	switch strings.ToLower(name) {
	case "", "sha1":
		return crypto.SHA1, nil
	case "sha256":
		return crypto.SHA256, nil
	case "sha512":
		return crypto.SHA512, nil
	default:
		return 0, fmt.Errorf("cli: unsupported digest %q", name)
	}
}

// render writes the verification outcome in the requested output format.
func render(decision *x509chain.Decision, log logger.Logger) error {
	switch {
	case jsonOutput:
		out, err := decision.ToJSON()
		if err != nil {
			return fmt.Errorf("cli: rendering JSON report: %w", err)
		}
		fmt.Println(string(out))
	case treeOutput:
		fmt.Print(decision.RenderASCIITree())
	case tableOutput:
		fmt.Print(decision.RenderTable())
	default:
		leaf := decision.Chain[0]
		log.Printf("certificate %q: %s (policy %s)", leaf.Subject.CommonName, decision.Result, decision.Policy)
	}
	return nil
}
