// Package avatar turns stored assistant image paths into data URLs.
package avatar

import (
	"context"
	"encoding/base64"
	"strings"

	"ai-chat-workspace-be/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
)

type IResolver interface {
	Resolve(ctx context.Context, imagePath string) string
}

// Resolver walks its tiers in order and stops at the first one that yields a
// non-empty body. It never returns an error: an image that cannot be fetched
// resolves to "".
type Resolver struct {
	tiers  []Tier
	logger logger.ILogger
}

func NewResolver(tiers []Tier, log logger.ILogger) *Resolver {
	return &Resolver{tiers: tiers, logger: log}
}

func (r *Resolver) Resolve(ctx context.Context, imagePath string) string {
	if imagePath == "" {
		return ""
	}

	for _, tier := range r.tiers {
		data, err := tier.Fetch(ctx, imagePath)
		if err != nil {
			r.logger.Debug("AvatarResolver", "Tier failed", map[string]interface{}{
				"tier":  tier.Name,
				"path":  imagePath,
				"error": err.Error(),
			})
			continue
		}
		if len(data) == 0 {
			continue
		}
		return EncodeDataURL(data)
	}

	r.logger.Warn("AvatarResolver", "Image unresolved, all tiers exhausted", map[string]interface{}{
		"path":  imagePath,
		"tiers": len(r.tiers),
	})
	return ""
}

// EncodeDataURL renders bytes as "data:<mime>;base64,<payload>".
func EncodeDataURL(data []byte) string {
	mime, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
