// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package face

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"
)

// Extractor is the embedding oracle: given a decoded image it returns one
// descriptor per detected face, ordered by detection confidence. An empty
// slice with a nil error means no face was found.
type Extractor interface {
	Extract(ctx context.Context, img image.Image) ([]Embedding, error)
}

// HTTPExtractor calls an external embedding service. The service accepts a
// PNG on POST {base}/embeddings and answers {"embeddings": [[...], ...]}.
type HTTPExtractor struct {
	baseURL string
	client  *http.Client
}

func NewHTTPExtractor(baseURL string) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type embedResponse struct {
	Embeddings []Embedding `json:"embeddings"`
}

func (x *HTTPExtractor) Extract(ctx context.Context, img image.Image) ([]Embedding, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode image for embedder: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.baseURL+"/embeddings", &buf)
	if err != nil {
		return nil, fmt.Errorf("build embedder request: %w", err)
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := x.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call embedder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedder returned %d: %s", resp.StatusCode, body)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode embedder response: %w", err)
	}

	return out.Embeddings, nil
}
