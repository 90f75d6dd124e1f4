package avatar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-chat-workspace-be/pkg/storage"
)

const maxImageSize = 10 * 1024 * 1024

// Tier is one way of turning an image path into bytes.
type Tier struct {
	Name  string
	Fetch func(ctx context.Context, path string) ([]byte, error)
}

// TiersFor builds the ordered fallback chain a store supports:
// direct download, then signed URL fetch, then raw download.
func TiersFor(store storage.ObjectStore, client *http.Client, signedURLTTL time.Duration) []Tier {
	tiers := []Tier{{Name: "direct", Fetch: store.Download}}

	if issuer, ok := store.(storage.SignedURLIssuer); ok {
		tiers = append(tiers, Tier{
			Name: "signed-url",
			Fetch: func(ctx context.Context, path string) ([]byte, error) {
				signed, err := issuer.CreateSignedURL(ctx, path, signedURLTTL)
				if err != nil {
					return nil, err
				}
				if signed == "" {
					return nil, nil
				}
				return fetchURL(ctx, client, signed)
			},
		})
	}

	if raw, ok := store.(storage.RawDownloader); ok {
		tiers = append(tiers, Tier{Name: "raw", Fetch: raw.DownloadRaw})
	}

	return tiers
}

func fetchURL(ctx context.Context, client *http.Client, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("signed url fetch: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
}
