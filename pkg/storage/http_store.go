package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxObjectSize = 10 * 1024 * 1024

// HTTPStore talks to a storage REST API of the form
// {base}/storage/v1/object/{authenticated|sign|public}/{bucket}/{path}.
type HTTPStore struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

func NewHTTPStore(baseURL, serviceKey, bucket string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *HTTPStore) objectURL(kind, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s/%s",
		s.baseURL, kind, url.PathEscape(s.bucket), escapePath(path))
}

func (s *HTTPStore) Download(ctx context.Context, path string) ([]byte, error) {
	return s.get(ctx, s.objectURL("authenticated", path), true)
}

func (s *HTTPStore) DownloadRaw(ctx context.Context, path string) ([]byte, error) {
	return s.get(ctx, s.objectURL("public", path), false)
}

func (s *HTTPStore) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	body, _ := json.Marshal(map[string]int{"expiresIn": int(ttl.Seconds())})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.objectURL("sign", path), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrObjectNotFound
	}
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("sign %s: unexpected status %d", path, resp.StatusCode)
	}

	var result struct {
		SignedURL string `json:"signedURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("sign %s: decode response: %w", path, err)
	}
	if result.SignedURL == "" {
		return "", nil
	}
	if strings.HasPrefix(result.SignedURL, "http://") || strings.HasPrefix(result.SignedURL, "https://") {
		return result.SignedURL, nil
	}
	// The API answers with a path relative to /storage/v1.
	return s.baseURL + "/storage/v1" + result.SignedURL, nil
}

func (s *HTTPStore) authorize(req *http.Request) {
	if s.serviceKey == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
}

func (s *HTTPStore) get(ctx context.Context, target string, authenticated bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	if authenticated {
		s.authorize(req)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrObjectNotFound
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("storage: unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxObjectSize))
}

func escapePath(path string) string {
	parts := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
