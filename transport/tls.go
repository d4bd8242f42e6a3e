// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"crypto/tls"
	"fmt"
	"strings"
)

// A TLSPolicy selects how the client authenticates the server.
type TLSPolicy int

const (
	// Verify is the normal TLS behavior: the certificate chain and
	// host name are verified and TLS 1.2 is the minimum version.
	Verify TLSPolicy = iota
	// Permissive skips certificate verification, allows the server to
	// renegotiate, and accepts TLS 1.0. It exists for the QA
	// environment, whose certificates are self-signed, and must not be
	// used elsewhere.
	Permissive
)

// String returns "verify" or "permissive".
func (p TLSPolicy) String() string {
	switch p {
	case Verify:
		return "verify"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("TLSPolicy(%d)", int(p))
	}
}

// ParseTLSPolicy parses the String form of a policy, ignoring case.
func ParseTLSPolicy(s string) (TLSPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "verify":
		return Verify, nil
	case "permissive":
		return Permissive, nil
	default:
		return Verify, fmt.Errorf("adagx/transport: unknown TLS policy %q", s)
	}
}

// Config returns the TLS client configuration for the policy.
func (p TLSPolicy) Config() *tls.Config {
	if p != Permissive {
		return &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return &tls.Config{
		//nolint:gosec // QA hosts use self-signed certificates.
		InsecureSkipVerify: true,
		Renegotiation:      tls.RenegotiateFreelyAsClient,
		MinVersion:         tls.VersionTLS10,
	}
}
