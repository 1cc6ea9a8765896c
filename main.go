// Package main is the entry point for the miniChain demo node (mnc).
// It loads configuration and the node identity, builds the ledger and its
// HTTP API, and serves until interrupted. All ledger state lives in process
// memory; a restart starts over from genesis.
package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"minichain.demo/mnc/internal/api"
	"minichain.demo/mnc/internal/config"
	"minichain.demo/mnc/internal/consensus"
	"minichain.demo/mnc/internal/docs"
	"minichain.demo/mnc/internal/events"
	"minichain.demo/mnc/internal/identity"
	"minichain.demo/mnc/internal/ledger"
	"minichain.demo/mnc/internal/logger"
)

func main() {
	log.Println("mnc node starting...")

	cfg := config.Load(resolveConfigPath())

	nodeID, err := identity.LoadOrCreate(cfg.IdentityFile)
	if err != nil {
		log.Fatalf("Failed to load node identity: %v", err)
	}
	log.Printf("Node identity: %s", nodeID)

	chain := ledger.New(string(nodeID))
	opLog := logger.New(cfg.LogBufferSize)
	hub := events.NewHub()
	fetcher := consensus.NewHTTPFetcher(cfg.PeerTimeout())
	docService := docs.NewService(cfg.DocsDir)

	service := api.NewService(chain, fetcher, hub, opLog, docService)
	opLog.Info("mnc node initialized")

	port := resolvePort(cfg.Port)
	if err := ensurePortAvailable(port); err != nil {
		log.Fatalf("Port %d unavailable: %v", port, err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: service.Handler(),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server exited: %v", err)
		}
	}()
	log.Printf("Node API available at http://localhost:%d", port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	// Closing the server cancels in-flight request contexts, which aborts
	// any proof-of-work search in progress.
	server.Close()
}

func resolveConfigPath() string {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path
	}
	return "mnc_config.json"
}

func resolvePort(defaultPort int) int {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		return defaultPort
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		log.Printf("Warning: invalid PORT value %q, using %d", portStr, defaultPort)
		return defaultPort
	}

	return port
}

func ensurePortAvailable(port int) error {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return listener.Close()
}
