package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"minichain.demo/mnc/internal/events"
)

// @Title: Submit Transaction
// @Route: POST /transactions/new
// @Description: Queue a transaction for inclusion in the next mined block
// @Response: 200 with the index of the block that will hold it, 400 when a field is missing
func (s *Service) HandleNewTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Pointer fields distinguish an absent key from a zero value; all three
	// are required but their contents are not validated.
	var req struct {
		Sender    *string  `json:"sender"`
		Recipient *string  `json:"recipient"`
		Amount    *float64 `json:"amount"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Sender == nil || req.Recipient == nil || req.Amount == nil {
		s.writeError(w, http.StatusBadRequest, "Missing values")
		return
	}

	index := s.ledger.AddTransaction(*req.Sender, *req.Recipient, *req.Amount)

	s.logger.Infof("Queued transaction %s -> %s for block %d", *req.Sender, *req.Recipient, index)
	s.hub.Broadcast(events.KindTransactionQueued, map[string]interface{}{
		"sender":    *req.Sender,
		"recipient": *req.Recipient,
		"amount":    *req.Amount,
		"block":     index,
	})

	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Transaction will be added to Block %d", index),
	})
}
