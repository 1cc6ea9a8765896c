package api

import (
	"fmt"
	"net/http"

	"minichain.demo/mnc/internal/events"
)

// @Title: Mine
// @Route: GET /mine
// @Description: Run the proof-of-work search, credit the node's reward, and forge a new block
// @Response: 200 with the new block's fields
func (s *Service) HandleMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	block, err := s.ledger.Mine(r.Context())
	if err != nil {
		// The search only fails when the caller goes away or the node
		// shuts down mid-solve.
		s.logger.Errorf("Mining aborted: %v", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Mining aborted: %v", err))
		return
	}

	s.logger.Infof("Forged block %d with %d transactions", block.Index, len(block.Transactions))
	s.hub.Broadcast(events.KindBlockForged, block)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "New block forged",
		"index":         block.Index,
		"transactions":  block.Transactions,
		"proof":         block.Proof,
		"previous_hash": block.PreviousHash,
	})
}

// @Title: Get Chain
// @Route: GET /chain
// @Description: Return the full chain and its length (also the peer protocol endpoint)
// @Response: 200 with {chain, length}
func (s *Service) HandleChain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	chain := s.ledger.Chain()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"chain":  chain,
		"length": len(chain),
	})
}
