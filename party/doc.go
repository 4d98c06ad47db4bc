// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package party holds the static party directory.

# Loading

The directory comes from a JSON file or the built-in default:

	parties := party.Default()
	parties, err := party.LoadFile("parties.json")

The file format is a JSON array:

	[{"id": 1, "name": "Liberal Centric Party", "logo": "https://..."}]

IDs must be positive and unique.

# Usage

One Directory instance is created at startup and injected into every
component that needs party data, so the list exists in exactly one place:

	p, ok := parties.Lookup(req.PartyID)  // vote validation
	for _, p := range parties.All() { .. } // tally fallback, dashboard
*/
package party
