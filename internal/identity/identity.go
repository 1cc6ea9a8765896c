// Package identity handles loading, generating, and persisting the node's
// identifier. Every process carries a globally unique address credited by
// its own mining rewards: a UUIDv4 with the dashes stripped. The identifier
// is kept in a 0600 file so a node keeps the same address across restarts
// even though the ledger itself is never persisted.
package identity

import (
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
)

// NodeID is the canonical string form of a node identifier: 32 lowercase
// hex characters (a UUID without dashes).
type NodeID string

// LoadOrCreate loads the node identifier from path, generating and saving a
// fresh one when the file is missing or empty.
func LoadOrCreate(path string) (NodeID, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return generateAndSave(path)
	}
	if err != nil {
		return "", err
	}
	if info.Size() == 0 {
		return generateAndSave(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	id := NodeID(strings.TrimSpace(string(data)))
	if err := validate(id); err != nil {
		return "", err
	}
	return id, nil
}

// Generate produces a new identifier without persisting it.
func Generate() NodeID {
	return NodeID(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

func generateAndSave(path string) (NodeID, error) {
	id := Generate()
	if err := os.WriteFile(path, []byte(id), 0600); err != nil {
		return "", err
	}
	return id, nil
}

func validate(id NodeID) error {
	if len(id) != 32 {
		return errors.New("node identifier must be 32 hex characters")
	}
	for _, c := range id {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return errors.New("node identifier contains non-hex characters")
		}
	}
	return nil
}
