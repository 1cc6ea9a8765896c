package ledger

import (
	"context"
	"testing"

	"minichain.demo/mnc/internal/types"
)

func TestGenesis(t *testing.T) {
	l := New("test-node")

	chain := l.Chain()
	if len(chain) != 1 {
		t.Fatalf("Expected chain length 1 after init, got %d", len(chain))
	}

	genesis := chain[0]
	if genesis.Index != 1 {
		t.Errorf("Expected genesis index 1, got %d", genesis.Index)
	}
	if genesis.Proof != types.GenesisProof {
		t.Errorf("Expected genesis proof %d, got %d", types.GenesisProof, genesis.Proof)
	}
	if genesis.PreviousHash != types.GenesisPreviousHash {
		t.Errorf("Expected genesis previous hash %q, got %q", types.GenesisPreviousHash, genesis.PreviousHash)
	}
	if len(genesis.Transactions) != 0 {
		t.Errorf("Expected empty genesis transaction list, got %d entries", len(genesis.Transactions))
	}
}

func TestAddTransactionReturnsNextIndex(t *testing.T) {
	l := New("test-node")

	if idx := l.AddTransaction("alice", "bob", 5); idx != 2 {
		t.Errorf("Expected next block index 2, got %d", idx)
	}
	if idx := l.AddTransaction("bob", "carol", 3); idx != 2 {
		t.Errorf("Index should not advance until a block is mined, got %d", idx)
	}

	if len(l.Pending()) != 2 {
		t.Errorf("Expected 2 pending transactions, got %d", len(l.Pending()))
	}
}

func TestMineDrainsPoolInOrder(t *testing.T) {
	l := New("miner-1")
	l.AddTransaction("alice", "bob", 5)

	block, err := l.Mine(context.Background())
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	if block.Index != 2 {
		t.Errorf("Expected block index 2, got %d", block.Index)
	}
	if len(block.Transactions) != 2 {
		t.Fatalf("Expected 2 transactions (submitted + reward), got %d", len(block.Transactions))
	}

	// Pool insertion order: alice's transaction first, reward second.
	if block.Transactions[0].Sender != "alice" || block.Transactions[0].Recipient != "bob" {
		t.Errorf("Expected alice's transaction first, got %+v", block.Transactions[0])
	}
	reward := block.Transactions[1]
	if reward.Sender != RewardSender || reward.Recipient != "miner-1" || reward.Amount != RewardAmount {
		t.Errorf("Unexpected reward transaction: %+v", reward)
	}

	if len(l.Pending()) != 0 {
		t.Errorf("Pool should be empty after mining, got %d entries", len(l.Pending()))
	}
}

func TestMineChainsHashes(t *testing.T) {
	l := New("miner-1")

	for i := 0; i < 3; i++ {
		if _, err := l.Mine(context.Background()); err != nil {
			t.Fatalf("Mine %d failed: %v", i, err)
		}
	}

	chain := l.Chain()
	if len(chain) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(chain))
	}

	for i := 1; i < len(chain); i++ {
		if chain[i].PreviousHash != types.HashBlock(chain[i-1]) {
			t.Errorf("Block %d previous hash does not match hash of block %d", i+1, i)
		}
		if chain[i].Index != chain[i-1].Index+1 {
			t.Errorf("Block indices not strictly increasing at position %d", i)
		}
	}

	if !ValidChain(chain) {
		t.Error("Chain built purely by mining should validate")
	}
}

func TestMineCancellation(t *testing.T) {
	l := New("miner-1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Mine(ctx); err == nil {
		t.Error("Expected an error from a cancelled mine")
	}
	if l.Length() != 1 {
		t.Errorf("Cancelled mine must not append a block, chain length %d", l.Length())
	}
	if len(l.Pending()) != 0 {
		t.Errorf("Cancelled mine must not queue a reward, pool has %d entries", len(l.Pending()))
	}
}

func TestValidChainDetectsCorruption(t *testing.T) {
	l := New("miner-1")
	l.AddTransaction("alice", "bob", 5)
	if _, err := l.Mine(context.Background()); err != nil {
		t.Fatalf("Mine failed: %v", err)
	}
	if _, err := l.Mine(context.Background()); err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	chain := l.Chain()

	corrupted := make([]types.Block, len(chain))
	copy(corrupted, chain)
	corrupted[1].PreviousHash = "0000000000000000"
	if ValidChain(corrupted) {
		t.Error("Chain with corrupted previous hash should not validate")
	}

	copy(corrupted, chain)
	corrupted[2].Proof = corrupted[2].Proof + 1
	if ValidChain(corrupted) {
		t.Error("Chain with corrupted proof should not validate")
	}

	copy(corrupted, chain)
	corrupted[1].Transactions = []types.Transaction{{Sender: "eve", Recipient: "eve", Amount: 1000}}
	if ValidChain(corrupted) {
		t.Error("Chain with rewritten transactions should not validate")
	}
}

func TestValidChainDegenerateCases(t *testing.T) {
	l := New("miner-1")

	if !ValidChain(l.Chain()) {
		t.Error("Single-block chain should be valid")
	}
	if ValidChain(nil) {
		t.Error("Empty chain should not be valid")
	}
}

func TestReplaceChain(t *testing.T) {
	longer := New("other-node")
	if _, err := longer.Mine(context.Background()); err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	l := New("miner-1")

	// Genesis timestamps differ between instances, so the candidate chain
	// is a different but valid history.
	if !l.ReplaceChain(longer.Chain()) {
		t.Fatal("Expected replacement by a longer valid chain")
	}
	if l.Length() != 2 {
		t.Errorf("Expected chain length 2 after replacement, got %d", l.Length())
	}

	// A chain no longer than ours is rejected.
	if l.ReplaceChain(longer.Chain()) {
		t.Error("Equal-length chain must not replace the local chain")
	}

	// A longer but invalid chain is rejected.
	invalid := append(longer.Chain(), types.Block{Index: 3, Proof: 1, PreviousHash: "bogus"})
	if l.ReplaceChain(invalid) {
		t.Error("Invalid chain must not replace the local chain")
	}
}
