package api

import (
	"context"
	"errors"
	"testing"

	"minichain.demo/mnc/internal/docs"
	"minichain.demo/mnc/internal/events"
	"minichain.demo/mnc/internal/ledger"
	"minichain.demo/mnc/internal/logger"
	"minichain.demo/mnc/internal/types"
)

// fakeFetcher implements consensus.ChainFetcher for testing, serving canned
// chains keyed by peer address.
type fakeFetcher struct {
	chains map[string][]types.Block
}

func (f *fakeFetcher) FetchChain(ctx context.Context, address string) ([]types.Block, error) {
	chain, ok := f.chains[address]
	if !ok {
		return nil, errors.New("peer unreachable")
	}
	return chain, nil
}

// setupTest creates a service backed by a fresh ledger and a fake peer
// fetcher.
func setupTest(t *testing.T) (*Service, *ledger.Ledger, *fakeFetcher) {
	t.Helper()

	l := ledger.New("test-node-id")
	fetcher := &fakeFetcher{chains: make(map[string][]types.Block)}

	svc := NewService(l, fetcher, events.NewHub(), logger.New(100), docs.NewService(t.TempDir()))
	return svc, l, fetcher
}

// minedChain builds a valid chain of the given length by mining.
func minedChain(t *testing.T, nodeID string, length int) []types.Block {
	t.Helper()
	l := ledger.New(nodeID)
	for l.Length() < length {
		if _, err := l.Mine(context.Background()); err != nil {
			t.Fatalf("Mine failed: %v", err)
		}
	}
	return l.Chain()
}
