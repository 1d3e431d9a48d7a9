package museum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"galeria/backend/internal/config"
	"galeria/backend/internal/logger"
	"galeria/backend/internal/model"
	"galeria/backend/internal/network"
)

const maxPayloadBytes = 8 << 20

// payload is a decoded upstream response that can check its own shape.
type payload interface {
	validate() error
}

type fetcher struct {
	museum  model.Museum
	clients *network.ClientFactory
}

// getJSON performs one GET bounded by timeout, decodes the body into out and validates it.
func (f *fetcher) getJSON(ctx context.Context, endpoint string, timeout time.Duration, out payload) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent)

	start := time.Now()
	resp, err := f.clients.NewHTTPClient(ctx, timeout).Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	logger.Debug("museum upstream request", "module", "service", "action", "fetch", "resource", "museum", "result", "ok", "museum", f.museum, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &HTTPStatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}
	if err := out.validate(); err != nil {
		return err
	}
	return nil
}

// fetchAll runs lookup for every id concurrently. Failed lookups are dropped;
// successful records keep the order of ids.
func fetchAll(ctx context.Context, museum model.Museum, ids []string, lookup func(context.Context, string) Result[model.Artwork]) []model.Artwork {
	if len(ids) == 0 {
		return nil
	}

	results := make([]Result[model.Artwork], len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(idx int, id string) {
			defer wg.Done()
			results[idx] = lookup(ctx, id)
		}(i, id)
	}
	wg.Wait()

	artworks := make([]model.Artwork, 0, len(ids))
	failed := 0
	for i, res := range results {
		artwork, err := res.Get()
		if err != nil {
			failed++
			logger.Debug("museum detail skipped", "module", "service", "action", "fetch", "resource", "museum", "result", "skipped", "museum", museum, "artwork_id", ids[i], "error", err)
			continue
		}
		artworks = append(artworks, artwork)
	}
	if failed > 0 {
		logger.Debug("museum detail fan-out finished", "module", "service", "action", "fetch", "resource", "museum", "result", "partial", "museum", museum, "requested", len(ids), "failed", failed)
	}
	return artworks
}

// logFailure records a collapsed adapter failure. Missing records are routine and logged at debug.
func logFailure(museum model.Museum, action string, err error, args ...any) {
	fields := append([]any{"module", "service", "action", action, "resource", "museum", "result", "failed", "museum", museum, "error", err}, args...)
	if IsNotFound(err) {
		logger.Debug("museum request returned nothing", fields...)
		return
	}
	logger.Warn("museum request failed", fields...)
}
