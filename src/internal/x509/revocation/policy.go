// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509revoke

import (
	"errors"
	"fmt"
	"strings"
)

// Policy selects how revocation is checked during chain verification.
type Policy int

const (
	// PolicyNone performs no revocation check at all. This is a deliberate
	// caller opt-out, not a security decision.
	PolicyNone Policy = iota
	// PolicyOffline consults only the CRL directory of the trust store.
	PolicyOffline
	// PolicyOnline downloads a CRL from the certificate's (or its issuer's)
	// distribution points.
	PolicyOnline
	// PolicyAuto tries PolicyOnline and falls back to PolicyOffline on any
	// online failure. One fallback level, no further recursion.
	PolicyAuto
)

// ErrUnsupportedPolicy indicates a policy value outside the known set.
var ErrUnsupportedPolicy = errors.New("x509revoke: unsupported revocation policy")

// String returns the policy's configuration name.
func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyOffline:
		return "offline"
	case PolicyOnline:
		return "online"
	case PolicyAuto:
		return "auto"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return PolicyNone, nil
	case "offline":
		return PolicyOffline, nil
	case "online":
		return PolicyOnline, nil
	case "auto":
		return PolicyAuto, nil
	default:
		return PolicyNone, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, s)
	}
}
