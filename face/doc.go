// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package face provides embedding comparison, image bounding, and the client
for the external embedding oracle.

# Embeddings

Embedding is a fixed-length face descriptor. Matching compares unit vectors:

	enrolled := stored.Normalize()
	probe := extracted.Normalize()
	dist, err := face.Distance(enrolled, probe)
	match := dist <= threshold

Distance is plain Euclidean distance; with both vectors normalized it falls
in [0, 2]. The match threshold is configuration (default 0.6), not something
this package decides.

# Image Bounding

DecodeAndBound decodes JPEG/PNG/GIF bytes and caps the longer edge:

	img, err := face.DecodeAndBound(raw, 500)

Aspect ratio is preserved and images are never upscaled.

# The Oracle

Extractor abstracts the embedding service. The real implementation posts a
PNG to an external embedder over HTTP:

	extractor := face.NewHTTPExtractor("http://localhost:9009")
	embs, err := extractor.Extract(ctx, img)

An empty result with a nil error means no detectable face. When multiple
faces are found, callers use the first (highest-confidence) result.
*/
package face
