package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"alignr/internal/domain/matching"
)

type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type extractCacheKeyInput struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ExtractCacheKey identifies an extraction by the description, normalized the
// same way extraction compares it, and the keyword list it was scanned against.
func ExtractCacheKey(description string, keywords []string) string {
	in := extractCacheKeyInput{
		Description: matching.NormalizeSkill(description),
		Keywords:    keywords,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "extract:" + hex.EncodeToString(sum[:])
}
