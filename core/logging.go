package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogDir is where debug logs are written, relative to the working directory
	LogDir = "logs"
	// maxLogSize triggers rotation of the previous run's log
	maxLogSize = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to dir/name when debug is set, otherwise discards it
// An existing log above maxLogSize is renamed with a timestamp first
// Returns the open file for the caller to close, or nil when logging is disabled or fails
func SetupLogging(debug bool, dir, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(name)
		rotated := fmt.Sprintf("%s-%s%s", name[:len(name)-len(ext)], time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(path, filepath.Join(dir, rotated))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
