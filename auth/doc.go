// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation for the verification flow.

# Verification Tokens

Verification tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateVerifyToken()

Tokens are URL-safe base64 encoded. /verify issues one on success and stores
it in the ballot box with an expiry; when the server runs with
REQUIRE_VERIFY_TOKEN, /vote consumes it atomically (single use) before
admitting a vote. This binds an otherwise stateless verify→vote pair
together without introducing sessions.
*/
package auth
