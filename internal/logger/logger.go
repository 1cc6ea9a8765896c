// Package logger provides a thread-safe in-memory logger for operational
// status messages. The node keeps a bounded ring of recent messages which
// the API surfaces at GET /logs; nothing is written to disk.
package logger

import (
	"fmt"
	"sync"
	"time"
)

// Level classifies a log message.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Message is a single recorded log entry.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Text      string    `json:"text"`
}

// Logger manages a bounded in-memory message ring.
type Logger struct {
	mu       sync.RWMutex
	messages []Message
	maxSize  int
}

// New creates a logger keeping at most maxSize messages.
func New(maxSize int) *Logger {
	return &Logger{
		messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Log records a message, evicting the oldest entries beyond the ring size.
func (l *Logger) Log(level Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, Message{
		Timestamp: time.Now(),
		Level:     level,
		Text:      text,
	})
	if len(l.messages) > l.maxSize {
		l.messages = l.messages[len(l.messages)-l.maxSize:]
	}
}

// Info records an info-level message.
func (l *Logger) Info(text string) { l.Log(LevelInfo, text) }

// Infof records a formatted info-level message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warning records a warning-level message.
func (l *Logger) Warning(text string) { l.Log(LevelWarning, text) }

// Error records an error-level message.
func (l *Logger) Error(text string) { l.Log(LevelError, text) }

// Errorf records a formatted error-level message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}

// Recent returns the most recent n messages, newest first.
func (l *Logger) Recent(n int) []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.messages) {
		n = len(l.messages)
	}
	out := make([]Message, n)
	for i := 0; i < n; i++ {
		out[i] = l.messages[len(l.messages)-1-i]
	}
	return out
}

// Len returns the number of retained messages.
func (l *Logger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}
