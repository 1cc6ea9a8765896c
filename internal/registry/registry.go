// Package registry provides a thread-safe set of known peer node addresses.
// Addresses are normalized to a canonical host:port form before storage so
// that "http://192.168.0.10:5005" and "192.168.0.10:5005" collapse to the
// same member.
package registry

import (
	"errors"
	"net/url"
	"sync"
)

// ErrInvalidAddress is returned when an address has neither a
// network-location nor a path component.
var ErrInvalidAddress = errors.New("invalid node address")

// Set is a thread-safe, unordered set of normalized peer addresses.
type Set struct {
	mtx   sync.RWMutex
	nodes map[string]struct{}
}

// NewSet creates an empty node set.
func NewSet() *Set {
	return &Set{nodes: make(map[string]struct{})}
}

// Normalize reduces an address to its canonical form. A URL with a
// network-location component normalizes to host:port; a bare path such as
// "192.168.0.10:5005" is kept as-is. Anything else fails with
// ErrInvalidAddress.
func Normalize(address string) (string, error) {
	u, err := url.Parse(address)
	if err != nil || (u.Host == "" && u.Opaque != "") {
		// A bare host:port either puts a colon in the first path segment
		// (an error, e.g. "192.168.0.10:5005") or parses as scheme:opaque
		// (e.g. "localhost:5005"). Re-parse it as a scheme-relative URL.
		u, err = url.Parse("//" + address)
		if err != nil {
			return "", ErrInvalidAddress
		}
	}
	if u.Host != "" {
		return u.Host, nil
	}
	if u.Path != "" {
		return u.Path, nil
	}
	return "", ErrInvalidAddress
}

// Register adds an address to the set. Registering an existing member is a
// no-op, so registration is idempotent.
func (s *Set) Register(address string) error {
	node, err := Normalize(address)
	if err != nil {
		return err
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.nodes[node] = struct{}{}
	return nil
}

// Deregister removes an address from the set. Removing a non-member, or
// deregistering against an empty set, is a no-op; a malformed address still
// fails with ErrInvalidAddress.
func (s *Set) Deregister(address string) error {
	node, err := Normalize(address)
	if err != nil {
		return err
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.nodes, node)
	return nil
}

// Addresses returns a snapshot of the set's members in arbitrary order.
func (s *Set) Addresses() []string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	out := make([]string, 0, len(s.nodes))
	for node := range s.nodes {
		out = append(out, node)
	}
	return out
}

// Len returns the number of registered nodes.
func (s *Set) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.nodes)
}
