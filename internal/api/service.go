// Package api implements the HTTP transport for the ledger node. It exposes
// the mine, transaction submission, chain, node registry, and consensus
// resolution operations, plus health, log, event stream, and documentation
// routes. The Service composes the ledger, the peer chain fetcher, the event
// hub, and the operational logger; it holds no ledger state of its own.
package api

import (
	"encoding/json"
	"net/http"

	"minichain.demo/mnc/internal/consensus"
	"minichain.demo/mnc/internal/docs"
	"minichain.demo/mnc/internal/events"
	"minichain.demo/mnc/internal/ledger"
	"minichain.demo/mnc/internal/logger"
)

// Service handles API requests.
type Service struct {
	ledger  *ledger.Ledger
	fetcher consensus.ChainFetcher
	hub     *events.Hub
	logger  *logger.Logger
	docs    *docs.Service
}

// NewService creates a new API service.
func NewService(l *ledger.Ledger, fetcher consensus.ChainFetcher, hub *events.Hub, log *logger.Logger, docService *docs.Service) *Service {
	return &Service{
		ledger:  l,
		fetcher: fetcher,
		hub:     hub,
		logger:  log,
		docs:    docService,
	}
}

// Handler builds the route table for the node.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/mine", s.HandleMine)
	mux.HandleFunc("/transactions/new", s.HandleNewTransaction)
	mux.HandleFunc("/chain", s.HandleChain)
	mux.HandleFunc("/nodes", s.HandleNodes)
	mux.HandleFunc("/nodes/register", s.HandleRegisterNodes)
	mux.HandleFunc("/nodes/deRegister", s.HandleDeregisterNodes)
	mux.HandleFunc("/nodes/resolve", s.HandleResolve)

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/logs", s.HandleLogs)
	mux.HandleFunc("/ws/events", s.hub.HandleWS)
	mux.HandleFunc("/docs", s.HandleDocsList)
	mux.HandleFunc("/docs/", s.HandleDoc)

	return mux
}

// writeJSON writes a JSON response
func (s *Service) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
