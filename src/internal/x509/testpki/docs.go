// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testpki builds synthetic certificate authorities, end-entity
// certificates, and CRLs with controlled serials and timestamps. It exists
// for the test suites of the store, CRL, revocation, and chain packages;
// nothing in the production path imports it.
package testpki
