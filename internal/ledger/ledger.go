// Package ledger implements the append-only block ledger and its pending
// transaction pool. A single Ledger instance owns the chain, the pool, and
// the peer node set for the lifetime of the process; it is constructed once
// in main and injected into every handler rather than living in package
// state. All state-mutating operations serialize on one mutex so that two
// concurrent mines cannot race on the pool drain-and-append and a resolve
// cannot swap the chain out from under a mine.
package ledger

import (
	"context"
	"sync"
	"time"

	"minichain.demo/mnc/internal/pow"
	"minichain.demo/mnc/internal/registry"
	"minichain.demo/mnc/internal/types"
)

// Reward transaction constants. The sender "0" signifies that the node
// itself minted a new coin for finding a proof.
const (
	RewardSender = "0"
	RewardAmount = 1
)

// Ledger is the authoritative in-memory state for this node: the block
// chain, the pool of transactions awaiting inclusion, and the set of known
// peers. Nothing is persisted; a restart loses all three.
type Ledger struct {
	mtx    sync.Mutex
	nodeID string
	chain  []types.Block
	pool   []types.Transaction
	nodes  *registry.Set
}

// New creates a ledger holding only the genesis block. nodeID is the
// process identity credited by mining rewards.
func New(nodeID string) *Ledger {
	genesis := types.Block{
		Index:        1,
		Timestamp:    time.Now().Unix(),
		Transactions: []types.Transaction{},
		Proof:        types.GenesisProof,
		PreviousHash: types.GenesisPreviousHash,
	}
	return &Ledger{
		nodeID: nodeID,
		chain:  []types.Block{genesis},
		pool:   []types.Transaction{},
		nodes:  registry.NewSet(),
	}
}

// NodeID returns the mining reward recipient for this process.
func (l *Ledger) NodeID() string {
	return l.nodeID
}

// Nodes returns the peer node set owned by this ledger.
func (l *Ledger) Nodes() *registry.Set {
	return l.nodes
}

// AddTransaction queues a transaction for inclusion in the next mined block
// and returns the index that block will have. Any sender, recipient, and
// amount values are accepted.
func (l *Ledger) AddTransaction(sender, recipient string, amount float64) int64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.pool = append(l.pool, types.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	return l.chain[len(l.chain)-1].Index + 1
}

// Mine runs the proof-of-work search against the last block, credits this
// node with a reward transaction, and forges a new block from the drained
// pool. The reward is queued after any already-pending transactions, so it
// occupies the last position in the block's list. The ledger lock is held
// for the whole operation; ctx is the only way to abort the search.
func (l *Ledger) Mine(ctx context.Context) (types.Block, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	last := l.chain[len(l.chain)-1]
	lastHash := types.HashBlock(last)

	proof, err := pow.Solve(ctx, last.Proof, lastHash)
	if err != nil {
		return types.Block{}, err
	}

	l.pool = append(l.pool, types.Transaction{
		Sender:    RewardSender,
		Recipient: l.nodeID,
		Amount:    RewardAmount,
	})

	return l.appendBlock(proof, lastHash), nil
}

// appendBlock forges a block from the current pool and appends it. The pool
// contents become exactly the block's transaction list, in insertion order,
// and the pool is empty immediately after. Callers must hold l.mtx.
func (l *Ledger) appendBlock(proof int64, previousHash string) types.Block {
	block := types.Block{
		Index:        int64(len(l.chain)) + 1,
		Timestamp:    time.Now().Unix(),
		Transactions: l.pool,
		Proof:        proof,
		PreviousHash: previousHash,
	}
	l.pool = []types.Transaction{}
	l.chain = append(l.chain, block)
	return block
}

// Chain returns a snapshot copy of the full chain.
func (l *Ledger) Chain() []types.Block {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	out := make([]types.Block, len(l.chain))
	copy(out, l.chain)
	return out
}

// Length returns the current chain length.
func (l *Ledger) Length() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.chain)
}

// LastBlock returns the most recent block in the chain.
func (l *Ledger) LastBlock() types.Block {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain[len(l.chain)-1]
}

// Pending returns a snapshot of the transactions awaiting inclusion.
func (l *Ledger) Pending() []types.Transaction {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	out := make([]types.Transaction, len(l.pool))
	copy(out, l.pool)
	return out
}

// ReplaceChain swaps the local chain wholesale for the candidate. The
// candidate must be strictly longer than the current chain and internally
// valid; both are re-checked under the lock because the local chain may have
// grown while the candidate was being fetched. Returns whether the
// replacement happened.
func (l *Ledger) ReplaceChain(candidate []types.Block) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if len(candidate) <= len(l.chain) || !ValidChain(candidate) {
		return false
	}
	l.chain = make([]types.Block, len(candidate))
	copy(l.chain, candidate)
	return true
}
