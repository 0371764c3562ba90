// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"crypto/x509"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509chain "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/chain"
	x509revoke "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/revocation"
	"github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/testpki"
)

// threeLevelDecision builds a decision over a root/intermediate/leaf chain.
func threeLevelDecision(t *testing.T, result x509revoke.Result) *x509chain.Decision {
	t.Helper()

	root, err := testpki.NewAuthority("report-root")
	require.NoError(t, err)
	intermediate, err := root.IssueIntermediate("report-intermediate")
	require.NoError(t, err)
	leaf, _, err := intermediate.IssueLeaf(testpki.LeafOptions{CommonName: "report-leaf", Serial: 20})
	require.NoError(t, err)

	return &x509chain.Decision{
		Result: result,
		Policy: x509revoke.PolicyOffline,
		Chain:  []*x509.Certificate{leaf, intermediate.Cert, root.Cert},
	}
}

func TestRenderASCIITree(t *testing.T) {
	decision := threeLevelDecision(t, x509revoke.ResultNotRevoked)

	tree := decision.RenderASCIITree()
	assert.Contains(t, tree, "├── [✓] report-leaf (End-Entity (Leaf) Certificate)")
	assert.Contains(t, tree, "├── [✓] report-intermediate (Intermediate CA Certificate)")
	assert.Contains(t, tree, "└── [✓] report-root (Root CA Certificate)")

	t.Run("Revoked Leaf", func(t *testing.T) {
		revoked := threeLevelDecision(t, x509revoke.ResultRevoked)
		assert.Contains(t, revoked.RenderASCIITree(), "[✗] report-leaf")
	})

	t.Run("Empty Chain", func(t *testing.T) {
		empty := &x509chain.Decision{}
		assert.Equal(t, "No certificates in chain", empty.RenderASCIITree())
	})
}

func TestRenderTable(t *testing.T) {
	decision := threeLevelDecision(t, x509revoke.ResultNotRevoked)

	table := decision.RenderTable()
	assert.Contains(t, table, "report-leaf")
	assert.Contains(t, table, "report-root")
	assert.Contains(t, table, "256-bit ECDSA")
	assert.Contains(t, table, "not revoked")

	t.Run("Empty Chain", func(t *testing.T) {
		empty := &x509chain.Decision{}
		assert.Equal(t, "No certificates to display", empty.RenderTable())
	})
}

func TestToJSON(t *testing.T) {
	decision := threeLevelDecision(t, x509revoke.ResultRevoked)

	out, err := decision.ToJSON()
	require.NoError(t, err, "ToJSON() error")

	var report struct {
		Policy       string `json:"policy"`
		Result       string `json:"result"`
		ChainLength  int    `json:"chainLength"`
		Certificates []struct {
			Subject string `json:"subject"`
			Role    string `json:"role"`
			IsCA    bool   `json:"isCA"`
		} `json:"certificates"`
	}
	require.NoError(t, json.Unmarshal(out, &report))

	assert.Equal(t, "offline", report.Policy)
	assert.Equal(t, "revoked", report.Result)
	assert.Equal(t, 3, report.ChainLength)
	require.Len(t, report.Certificates, 3)
	assert.Equal(t, "report-leaf", report.Certificates[0].Subject)
	assert.False(t, report.Certificates[0].IsCA)
	assert.Equal(t, "Root CA Certificate", report.Certificates[2].Role)
	assert.True(t, report.Certificates[2].IsCA)
}
