// Package facts supplies the number-fact dependency for the counter demo. The
// live fetcher calls numbersapi.com and keeps an on-disk response cache; the
// static fetcher gives tests and the demo runner deterministic output.
package facts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// Fetcher returns a descriptive string for a number.
type Fetcher interface {
	Fetch(ctx context.Context, number int) (string, error)
}

// Static formats facts locally using Format as a fmt verb template for the
// number (for example "%d is a good number Brent").
type Static struct {
	Format string
}

// Fetch implements Fetcher.
func (s Static) Fetch(_ context.Context, number int) (string, error) {
	format := s.Format
	if format == "" {
		format = "%d is a number"
	}
	return fmt.Sprintf(format, number), nil
}

// HTTPFetcher fetches trivia from numbersapi.com, caching responses on disk so
// repeated demos work offline.
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
	cache   *diskv.Diskv
}

// NewHTTPFetcher creates a fetcher with a cache rooted at the configured base
// path. An empty cfg disables caching.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	f := &HTTPFetcher{
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: "http://numbersapi.com",
	}
	if cfg != nil && cfg.BasePath() != "" {
		f.cache = diskv.New(diskv.Options{
			BasePath:     cfg.BasePath(),
			CacheSizeMax: 1024 * 1024, // 1MB
		})
	}
	return f
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, number int) (string, error) {
	key := strconv.Itoa(number)
	if f.cache != nil && f.cache.Has(key) {
		if b, err := f.cache.Read(key); err == nil {
			return string(b), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%d", f.BaseURL, number), nil)
	if err != nil {
		return "", err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.New("facts: unexpected status " + resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	fact := strings.TrimSpace(string(b))

	if f.cache != nil {
		_ = f.cache.Write(key, []byte(fact))
	}
	return fact, nil
}
