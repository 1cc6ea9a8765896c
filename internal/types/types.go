// Package types defines the core domain models for miniChain demo (mnc).
// It contains the Transaction and Block records and the canonical block
// encoding used for hashing. Blocks are immutable once appended to a chain.
package types

// Version is the current version of mnc
const Version = "0.1.0"

// BuildTime is set at build time via -ldflags
var BuildTime = "dev"

// Genesis block constants. The genesis block is fixed and never mined:
// its previous-hash field carries a sentinel value rather than a real digest.
const (
	GenesisProof        int64 = 100
	GenesisPreviousHash       = "1"
)

// Transaction is a single transfer record. There is no validation of the
// sender or recipient format and no sign/range constraint on the amount;
// a transaction has no identity beyond its position in a block.
type Transaction struct {
	Sender    string  `json:"sender"`    // Address of the sender ("0" for mining rewards)
	Recipient string  `json:"recipient"` // Address of the recipient
	Amount    float64 `json:"amount"`    // Unit-less amount
}

// Block is one unit of the ledger. Index is 1-based and strictly increasing,
// Timestamp is Unix seconds at creation, and PreviousHash links the block to
// the canonical hash of its predecessor.
type Block struct {
	Index        int64         `json:"index"`
	Timestamp    int64         `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	Proof        int64         `json:"proof"`
	PreviousHash string        `json:"previous_hash"`
}
