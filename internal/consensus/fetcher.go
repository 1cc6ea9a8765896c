package consensus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"minichain.demo/mnc/internal/types"
)

// HTTPFetcher fetches peer chains over the peer protocol: every node exposes
// GET /chain returning {"chain": [...], "length": n}. A per-request timeout
// keeps a hanging peer from stalling the whole resolution indefinitely.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given per-peer timeout. A zero
// timeout falls back to 10 seconds.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchChain requests a peer's full chain. The address is a registered
// host:port; the scheme is fixed to http per the peer protocol.
func (f *HTTPFetcher) FetchChain(ctx context.Context, address string) ([]types.Block, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/chain", address), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("peer %s returned status %d", address, resp.StatusCode)
	}

	var body struct {
		Chain  []types.Block `json:"chain"`
		Length int           `json:"length"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode chain from peer %s: %w", address, err)
	}

	return body.Chain, nil
}
