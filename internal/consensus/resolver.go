// Package consensus implements the longest-valid-chain conflict resolution
// rule. A node adopts a peer's chain when it is both strictly longer than
// its own and internally valid. This is a trust-the-longest heuristic, not a
// negotiated or Byzantine-fault-tolerant consensus: any single peer able to
// present a longer valid chain can cause replacement.
package consensus

import (
	"context"

	"minichain.demo/mnc/internal/ledger"
	"minichain.demo/mnc/internal/types"
)

// ChainFetcher retrieves a peer's full chain given its registered address.
// Implementations report network errors and non-success responses as errors;
// the resolver treats any error as "skip this peer".
type ChainFetcher interface {
	FetchChain(ctx context.Context, address string) ([]types.Block, error)
}

// Resolve visits every peer, fetches its chain, and tracks the longest valid
// candidate exceeding the local chain's length. Unreachable peers and
// invalid chains are skipped, never fatal. The maximum is updated
// incrementally across peers, so the result is the true longest valid chain
// seen, not merely the first one longer than the local chain. Returns
// whether a qualifying candidate was found and either that candidate or the
// unchanged local chain.
func Resolve(ctx context.Context, local []types.Block, peers []string, fetcher ChainFetcher) (bool, []types.Block) {
	maxLength := len(local)
	var best []types.Block

	for _, peer := range peers {
		chain, err := fetcher.FetchChain(ctx, peer)
		if err != nil {
			continue
		}
		if len(chain) > maxLength && ledger.ValidChain(chain) {
			maxLength = len(chain)
			best = chain
		}
	}

	if best != nil {
		return true, best
	}
	return false, local
}
