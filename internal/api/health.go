package api

import (
	"net/http"
	"strconv"

	"minichain.demo/mnc/internal/types"
)

// @Title: Health
// @Route: GET /health
// @Description: Report node version, identity, and ledger counters
// @Response: 200 with the health snapshot
func (s *Service) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":              types.Version,
		"build_time":           types.BuildTime,
		"node_id":              s.ledger.NodeID(),
		"chain_length":         s.ledger.Length(),
		"pending_transactions": len(s.ledger.Pending()),
		"total_nodes":          s.ledger.Nodes().Len(),
		"subscribers":          s.hub.ClientCount(),
	})
}

// @Title: Recent Logs
// @Route: GET /logs?n=...
// @Description: Return the most recent operational log messages, newest first
// @Response: 200 with an array of log messages
func (s *Service) HandleLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n := 50
	if v := r.URL.Query().Get("n"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}

	s.writeJSON(w, http.StatusOK, s.logger.Recent(n))
}
