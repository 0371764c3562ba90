// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/x509-trust-verifier/src/cli"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/testpki"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/logger"
)

const version = "1.3.3.7-testing"

func testLogger() *logger.CLILogger {
	log := logger.NewCLILogger()
	log.SetOutput(&bytes.Buffer{})
	return log
}

func TestExecute_NoInputFile(t *testing.T) {
	ctx := context.Background()

	os.Args = []string{"cmd"}
	err := cli.Execute(ctx, version, testLogger())
	if !errors.Is(err, cli.ErrInputFileRequired) {
		t.Errorf("expected ErrInputFileRequired, got %v", err)
	}
}

func TestExecute_InvalidFile(t *testing.T) {
	ctx := context.Background()

	tmpFile := filepath.Join(t.TempDir(), "invalid.cer")
	if err := os.WriteFile(tmpFile, []byte("invalid data"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", "-f", tmpFile, "--ca-dir", t.TempDir(), "--crl-dir", t.TempDir()}
	err := cli.Execute(ctx, version, testLogger())
	if err == nil {
		t.Error("expected error for invalid certificate file")
	}
}

func TestExecute_NonExistentFile(t *testing.T) {
	ctx := context.Background()

	os.Args = []string{"cmd", "-f", "/tmp/nonexistent-file-12345.cer"}
	err := cli.Execute(ctx, version, testLogger())
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestExecute_VerifyNotRevoked(t *testing.T) {
	ctx := context.Background()

	ca, err := testpki.NewAuthority("cli-root")
	if err != nil {
		t.Fatal(err)
	}
	leaf, _, err := ca.IssueLeaf(testpki.LeafOptions{CommonName: "cli-leaf", Serial: 30})
	if err != nil {
		t.Fatal(err)
	}

	caDir := t.TempDir()
	crlDir := t.TempDir()
	if _, err := testpki.WriteFile(caDir, "root.pem", testpki.EncodeCertPEM(ca.Cert)); err != nil {
		t.Fatal(err)
	}
	certFile, err := testpki.WriteFile(t.TempDir(), "leaf.pem", testpki.EncodeCertPEM(leaf))
	if err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", "-f", certFile, "--ca-dir", caDir, "--crl-dir", crlDir, "-p", "none"}
	if err := cli.Execute(ctx, version, testLogger()); err != nil {
		t.Errorf("expected success, got %v", err)
	}

	if !cli.OperationPerformed || !cli.OperationPerformedSuccessfully {
		t.Error("expected operation status flags to be set")
	}
}

func TestExecute_VerifyRevoked(t *testing.T) {
	ctx := context.Background()

	ca, err := testpki.NewAuthority("cli-revoked-root")
	if err != nil {
		t.Fatal(err)
	}
	leaf, _, err := ca.IssueLeaf(testpki.LeafOptions{CommonName: "cli-revoked-leaf", Serial: 31})
	if err != nil {
		t.Fatal(err)
	}
	_, crlDER, err := ca.SignCRL(testpki.CRLOptions{Number: 1, RevokedSerials: []int64{31}})
	if err != nil {
		t.Fatal(err)
	}

	caDir := t.TempDir()
	crlDir := t.TempDir()
	if _, err := testpki.WriteFile(caDir, "root.pem", testpki.EncodeCertPEM(ca.Cert)); err != nil {
		t.Fatal(err)
	}
	if _, err := testpki.WriteFile(crlDir, "ca.crl", crlDER); err != nil {
		t.Fatal(err)
	}
	certFile, err := testpki.WriteFile(t.TempDir(), "leaf.pem", testpki.EncodeCertPEM(leaf))
	if err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", "-f", certFile, "--ca-dir", caDir, "--crl-dir", crlDir, "-p", "offline"}
	err = cli.Execute(ctx, version, testLogger())
	if !errors.Is(err, cli.ErrRevoked) {
		t.Errorf("expected ErrRevoked, got %v", err)
	}

	if cli.OperationPerformedSuccessfully {
		t.Error("revoked outcome must not mark the operation successful")
	}
}

func TestExecute_UnknownPolicy(t *testing.T) {
	ctx := context.Background()

	ca, err := testpki.NewAuthority("cli-policy-root")
	if err != nil {
		t.Fatal(err)
	}
	leaf, _, err := ca.IssueLeaf(testpki.LeafOptions{CommonName: "cli-policy-leaf", Serial: 32})
	if err != nil {
		t.Fatal(err)
	}
	certFile, err := testpki.WriteFile(t.TempDir(), "leaf.pem", testpki.EncodeCertPEM(leaf))
	if err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", "-f", certFile, "-p", "sometimes"}
	err = cli.Execute(ctx, version, testLogger())
	if err == nil {
		t.Error("expected error for unknown policy name")
	}
}
