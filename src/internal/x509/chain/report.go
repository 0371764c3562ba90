// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509revoke "github.com/H0llyW00dzZ/x509-trust-verifier/src/internal/x509/revocation"
)

// RenderASCIITree renders the validated chain as an ASCII tree diagram,
// marking the leaf with its revocation verdict.
func (d *Decision) RenderASCIITree() string {
	if len(d.Chain) == 0 {
		return "No certificates in chain"
	}

	var result strings.Builder
	for i, cert := range d.Chain {
		isLast := i == len(d.Chain)-1

		connector := "├── "
		if isLast {
			connector = "└── "
		}

		statusIcon := "✓"
		if i == 0 && d.Result == x509revoke.ResultRevoked {
			statusIcon = "✗"
		}

		role := d.certificateRole(i)
		certInfo := fmt.Sprintf("[%s] %s", statusIcon, cert.Subject.CommonName)
		if role != "" {
			certInfo += fmt.Sprintf(" (%s)", role)
		}

		result.WriteString(connector + certInfo + "\n")
	}

	return result.String()
}

// RenderTable renders the verification outcome as a markdown table: one row
// per chain certificate with subject, issuer, validity, key size, and the
// leaf's revocation status.
func (d *Decision) RenderTable() string {
	if len(d.Chain) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key Size", "Status"}
	table.Header(headers)

	var rows [][]string
	for i, cert := range d.Chain {
		status := "-"
		if i == 0 {
			status = d.Result.String()
		}

		keySize := "unknown"
		if rsaKey, ok := cert.PublicKey.(*rsa.PublicKey); ok {
			keySize = fmt.Sprintf("%d-bit RSA", rsaKey.Size()*8)
		} else if ecdsaKey, ok := cert.PublicKey.(*ecdsa.PublicKey); ok {
			keySize = fmt.Sprintf("%d-bit ECDSA", ecdsaKey.Curve.Params().BitSize)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			d.certificateRole(i),
			cert.Subject.CommonName,
			cert.Issuer.CommonName,
			cert.NotAfter.Format("2006-01-02"),
			keySize,
			status,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// ToJSON converts the decision to structured JSON for external tools.
func (d *Decision) ToJSON() ([]byte, error) {
	type certData struct {
		Index              int       `json:"index"`
		Role               string    `json:"role"`
		Subject            string    `json:"subject"`
		Issuer             string    `json:"issuer"`
		SerialNumber       string    `json:"serialNumber"`
		SignatureAlgorithm string    `json:"signatureAlgorithm"`
		NotBefore          time.Time `json:"notBefore"`
		NotAfter           time.Time `json:"notAfter"`
		IsCA               bool      `json:"isCA"`
	}

	type decisionData struct {
		Timestamp    string     `json:"timestamp"`
		Policy       string     `json:"policy"`
		Result       string     `json:"result"`
		ChainLength  int        `json:"chainLength"`
		Certificates []certData `json:"certificates"`
	}

	data := decisionData{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Policy:       d.Policy.String(),
		Result:       d.Result.String(),
		ChainLength:  len(d.Chain),
		Certificates: make([]certData, len(d.Chain)),
	}

	for i, cert := range d.Chain {
		data.Certificates[i] = certData{
			Index:              i,
			Role:               d.certificateRole(i),
			Subject:            cert.Subject.CommonName,
			Issuer:             cert.Issuer.CommonName,
			SerialNumber:       cert.SerialNumber.String(),
			SignatureAlgorithm: cert.SignatureAlgorithm.String(),
			NotBefore:          cert.NotBefore,
			NotAfter:           cert.NotAfter,
			IsCA:               cert.IsCA,
		}
	}

	return json.MarshalIndent(data, "", "  ")
}

// certificateRole describes a certificate's position within the validated
// chain.
func (d *Decision) certificateRole(index int) string {
	total := len(d.Chain)
	switch {
	case total == 1:
		return "Self-Signed Certificate"
	case index == 0:
		return "End-Entity (Leaf) Certificate"
	case index == total-1:
		return "Root CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}
