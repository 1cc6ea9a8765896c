// Package config centralizes runtime configuration for mnc. It loads a JSON
// configuration file and falls back to sensible defaults when the file is
// missing or unparsable, so tests and development builds run with no setup.
// Operators can place a JSON file at ./mnc_config.json or point the
// CONFIG_FILE env var somewhere else.
package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds configurable options for the mnc node.
type Config struct {
	Port               int    `json:"port"`
	IdentityFile       string `json:"identity_file"`
	LogBufferSize      int    `json:"log_buffer_size"`
	PeerTimeoutSeconds int    `json:"peer_timeout_seconds"`
	DocsDir            string `json:"docs_dir"`
}

// PeerTimeout returns the per-peer chain fetch timeout as a duration.
func (c *Config) PeerTimeout() time.Duration {
	return time.Duration(c.PeerTimeoutSeconds) * time.Second
}

func defaults() *Config {
	return &Config{
		Port:               5000,
		IdentityFile:       "mnc_node_id",
		LogBufferSize:      200,
		PeerTimeoutSeconds: 10,
		DocsDir:            "docs",
	}
}

// Load reads a JSON config file at path. A missing or unreadable file, or a
// parse error, yields defaults rather than an error so the node can run in
// development with minimal friction.
func Load(path string) *Config {
	def := defaults()
	if path == "" {
		return def
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return def
	}

	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return def
	}

	// merge defaults for any zero-value fields
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.IdentityFile == "" {
		c.IdentityFile = def.IdentityFile
	}
	if c.LogBufferSize == 0 {
		c.LogBufferSize = def.LogBufferSize
	}
	if c.PeerTimeoutSeconds == 0 {
		c.PeerTimeoutSeconds = def.PeerTimeoutSeconds
	}
	if c.DocsDir == "" {
		c.DocsDir = def.DocsDir
	}
	return &c
}
