package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"minichain.demo/mnc/internal/consensus"
	"minichain.demo/mnc/internal/events"
	"minichain.demo/mnc/internal/registry"
)

// @Title: List Nodes
// @Route: GET /nodes
// @Description: List all registered peer nodes
// @Response: 201 with {total_nodes} (historical quirk: listing answers with a creation status)
func (s *Service) HandleNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// 201 for a pure read is part of the published contract and is kept
	// for compatibility.
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "All registered nodes",
		"total_nodes": s.ledger.Nodes().Addresses(),
	})
}

// @Title: Register Nodes
// @Route: POST /nodes/register
// @Description: Add peer node addresses to the registry
// @Response: 201 with {total_nodes}, 400 when the nodes list is missing or an address is invalid
func (s *Service) HandleRegisterNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	nodes, ok := s.decodeNodeList(w, r)
	if !ok {
		return
	}

	for _, node := range nodes {
		if err := s.ledger.Nodes().Register(node); err != nil {
			if errors.Is(err, registry.ErrInvalidAddress) {
				s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid node address: %s", node))
				return
			}
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.hub.Broadcast(events.KindNodeRegistered, node)
	}

	s.logger.Infof("Registered %d node(s), registry now holds %d", len(nodes), s.ledger.Nodes().Len())
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "New nodes have been added",
		"total_nodes": s.ledger.Nodes().Addresses(),
	})
}

// @Title: Deregister Nodes
// @Route: POST /nodes/deRegister
// @Description: Remove peer node addresses from the registry
// @Response: 201 with {total_nodes}, 400 when the nodes list is missing
func (s *Service) HandleDeregisterNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	nodes, ok := s.decodeNodeList(w, r)
	if !ok {
		return
	}

	for _, node := range nodes {
		if err := s.ledger.Nodes().Deregister(node); err != nil {
			if errors.Is(err, registry.ErrInvalidAddress) {
				s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid node address: %s", node))
				return
			}
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.hub.Broadcast(events.KindNodeDeregistered, node)
	}

	s.logger.Infof("Deregistered %d node(s), registry now holds %d", len(nodes), s.ledger.Nodes().Len())
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Nodes de-registered",
		"total_nodes": s.ledger.Nodes().Addresses(),
	})
}

// @Title: Resolve Consensus
// @Route: GET /nodes/resolve
// @Description: Fetch peer chains and adopt the longest valid one, if any
// @Response: 200 with {message, new_chain} when replaced, {message, chain} otherwise
func (s *Service) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	peers := s.ledger.Nodes().Addresses()
	replaced, best := consensus.Resolve(r.Context(), s.ledger.Chain(), peers, s.fetcher)

	// The local chain may have grown during the fetches; ReplaceChain
	// re-checks length and validity under the ledger lock.
	if replaced && s.ledger.ReplaceChain(best) {
		s.logger.Infof("Chain replaced by a peer chain of length %d", len(best))
		s.hub.Broadcast(events.KindChainReplaced, len(best))
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":   "Our chain got replaced",
			"new_chain": best,
		})
		return
	}

	s.logger.Infof("Chain retained after consulting %d peer(s)", len(peers))
	s.hub.Broadcast(events.KindChainRetained, s.ledger.Length())
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Our chain is authoritative",
		"chain":   s.ledger.Chain(),
	})
}

// decodeNodeList reads the {nodes: [...]} request body shared by the
// register and deregister operations. A missing list is a 400.
func (s *Service) decodeNodeList(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var req struct {
		Nodes []string `json:"nodes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.Nodes == nil {
		s.writeError(w, http.StatusBadRequest, "Error, please supply a valid list of nodes")
		return nil, false
	}
	return req.Nodes, true
}
