// Package pow implements the brute-force proof-of-work admission gate.
// A proof is valid when the SHA-256 digest of the previous proof, the
// candidate proof, and the previous block hash concatenated together starts
// with four hex zero characters. The difficulty is fixed, giving an expected
// ~65,536 attempts per solve.
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Difficulty is the required number of leading hex zero characters.
const Difficulty = 4

var target = strings.Repeat("0", Difficulty)

// ValidProof reports whether proof satisfies the admission predicate
// relative to the previous block's proof and hash. It is a pure function:
// identical inputs always yield the same result.
func ValidProof(lastProof, proof int64, lastHash string) bool {
	guess := fmt.Sprintf("%d%d%s", lastProof, proof, lastHash)
	sum := sha256.Sum256([]byte(guess))
	return hex.EncodeToString(sum[:])[:Difficulty] == target
}

// Solve searches non-negative integers in increasing order from zero and
// returns the first proof satisfying ValidProof. The search is unbounded and
// CPU-only; ctx is the only way to abort it. The context is checked between
// attempts so a caller can cancel a long-running mine during shutdown or
// test teardown.
func Solve(ctx context.Context, lastProof int64, lastHash string) (int64, error) {
	for proof := int64(0); ; proof++ {
		if proof%1024 == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}
		if ValidProof(lastProof, proof, lastHash) {
			return proof, nil
		}
	}
}
