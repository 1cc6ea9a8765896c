package ledger

import (
	"minichain.demo/mnc/internal/pow"
	"minichain.demo/mnc/internal/types"
)

// ValidChain walks a candidate chain in order and re-derives every link.
// For each adjacent pair the current block must reference the canonical
// hash of its predecessor and carry a proof satisfying the work predicate
// relative to that predecessor. It short-circuits on the first failing
// pair. A single-block chain is trivially valid; an empty chain is not.
func ValidChain(chain []types.Block) bool {
	if len(chain) == 0 {
		return false
	}

	for i := 1; i < len(chain); i++ {
		lastHash := types.HashBlock(chain[i-1])

		if chain[i].PreviousHash != lastHash {
			return false
		}
		if !pow.ValidProof(chain[i-1].Proof, chain[i].Proof, lastHash) {
			return false
		}
	}
	return true
}
