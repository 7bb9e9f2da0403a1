package backend

import (
	"context"
	"log"
	"net/http"
	"time"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPClient builds the shared client for all backend calls. There is no
// per-request retrying; the timeout is the only guard against a hung
// backend.
func NewHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
	}
}

// WaitUntilReachable probes the backend at startup so a cold deploy shows up
// in the logs. The service still starts when the backend stays down: every
// catalog and checkout call degrades to its own error state.
func WaitUntilReachable(ctx context.Context, client *http.Client, cfg Config) {
	maxRetries := 5

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Probing booking backend (Attempt %d/%d)...", i, maxRetries)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/experiences", nil)
		if err != nil {
			log.Printf("Invalid backend URL %q: %v", cfg.BaseURL, err)
			return
		}

		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			log.Println("Booking backend reachable!")
			return
		}

		log.Println("Booking backend not ready yet. Waiting 2 seconds...")

		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}

	log.Printf("Booking backend unreachable after %d attempts, continuing anyway.", maxRetries)
}
