package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// CanonicalEncode serializes a block into a byte sequence that is a function
// only of the block's field values. The block is re-shaped into a map before
// marshaling because encoding/json emits map keys in sorted order, which
// pins the field order regardless of how the block was constructed. Two
// blocks with identical content always encode to identical bytes.
func CanonicalEncode(b Block) []byte {
	txs := b.Transactions
	if txs == nil {
		txs = []Transaction{}
	}

	ordered := make([]map[string]interface{}, 0, len(txs))
	for _, tx := range txs {
		ordered = append(ordered, map[string]interface{}{
			"sender":    tx.Sender,
			"recipient": tx.Recipient,
			"amount":    tx.Amount,
		})
	}

	// Marshaling a map cannot fail for these value types.
	data, _ := json.Marshal(map[string]interface{}{
		"index":         b.Index,
		"timestamp":     b.Timestamp,
		"transactions":  ordered,
		"proof":         b.Proof,
		"previous_hash": b.PreviousHash,
	})
	return data
}

// HashBlock returns the hex-encoded SHA-256 digest of the block's
// canonical encoding.
func HashBlock(b Block) string {
	sum := sha256.Sum256(CanonicalEncode(b))
	return hex.EncodeToString(sum[:])
}
