package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"testing"
	"time"
)

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), log.New(io.Discard, "", 0))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestServeReportsListenError(t *testing.T) {
	err := serve(context.Background(), "bad-address", http.NotFoundHandler(), log.New(io.Discard, "", 0))
	if err == nil {
		t.Fatal("serve succeeded on invalid address")
	}
}
