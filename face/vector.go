// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package face

import (
	"fmt"
	"math"
)

// Embedding is a fixed-length numeric face descriptor produced by the
// embedding oracle. The length is whatever the oracle emits; both sides of a
// comparison must agree.
type Embedding []float64

// Normalize returns the embedding scaled to unit Euclidean length.
// A zero vector is returned as-is since it has no direction.
func (e Embedding) Normalize() Embedding {
	norm := 0.0
	for _, v := range e {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	out := make(Embedding, len(e))
	if norm == 0 {
		copy(out, e)
		return out
	}
	for i, v := range e {
		out[i] = v / norm
	}
	return out
}

// Distance returns the Euclidean distance between two embeddings.
// Returns an error when the lengths differ (e.g. the enrolled descriptor was
// produced by a different oracle version).
func Distance(a, b Embedding) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding length mismatch: %d vs %d", len(a), len(b))
	}

	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
