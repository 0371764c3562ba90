// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/x509-trust-verifier/src/cli"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-trust-verifier/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Exit codes: 0 certificate verified and not revoked, 1 certificate revoked,
// 2 verification could not be completed, 130 interrupted.
func main() {
	// Create CLI logger
	log := logger.NewCLILogger()

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling using signal.NotifyContext for cleaner cancellation
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to signal completion
	done := make(chan error, 1)

	// Run the CLI in a separate goroutine
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	// Wait for either completion or context cancellation
	select {
	case err := <-done:
		if errors.Is(err, cli.ErrRevoked) {
			log.Printf("Verification verdict: %v", err)
			os.Exit(1)
		}
		if err != nil {
			log.Printf("Verification failed: %v", err)
			os.Exit(2)
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the CLI a moment to clean up
		select {
		case <-done:
			// CLI finished cleaning up
		case <-time.After(100 * time.Millisecond):
			// Timeout waiting for cleanup
		}
		os.Exit(130) // Standard exit code for SIGINT
	}

	// Log successful completion
	if cli.OperationPerformedSuccessfully {
		log.Println("Certificate verification completed successfully.")
	}
}
