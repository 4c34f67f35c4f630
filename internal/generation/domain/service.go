// Package domain defines the generation flow: blocklist check, catalog
// lookup, rendering, manifest embedding, and ledger recording.
package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/fairstyle/internal/manifest"
	"github.com/smallbiznis/fairstyle/internal/pricing"
)

// GenerateRequest is the caller-facing request shape. Prompt must be
// non-empty after trimming; UserHint is free text stored alongside the
// prompt hash.
type GenerateRequest struct {
	Prompt   string  `json:"prompt"`
	StyleID  string  `json:"style_id"`
	UserHint *string `json:"user_hint,omitempty"`
}

// GenerateResponse returns the artifact URL, the provenance receipt,
// and the financial split for this generation.
type GenerateResponse struct {
	OutputURL string            `json:"output_url"`
	Receipt   manifest.Manifest `json:"receipt"`
	Usage     pricing.Breakdown `json:"usage"`
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// Renderer produces the PNG for a prompt in a named style.
type Renderer interface {
	Render(prompt, styleName string) ([]byte, error)
}

var ErrEmptyPrompt = errors.New("empty_prompt")
