// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateVerifyToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateVerifyToken()
		if err != nil {
			t.Fatal(err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestGenerateVerifyToken_URLSafe(t *testing.T) {
	token, err := GenerateVerifyToken()
	if err != nil {
		t.Fatal(err)
	}

	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token should be URL-safe without padding: %s", token)
	}
	// 24 bytes of base64 without padding
	if len(token) != 32 {
		t.Errorf("expected 32-char token, got %d chars", len(token))
	}
}
