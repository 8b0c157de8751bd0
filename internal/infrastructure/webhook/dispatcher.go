package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const deliveryTimeout = 10 * time.Second

var ErrDeliveryFailed = errors.New("webhook delivery failed")

type Event struct {
	Event     string         `json:"event"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

type Dispatcher interface {
	Deliver(ctx context.Context, url string, evt Event) error
}

type httpDispatcher struct {
	client *http.Client
	logger *log.Logger
}

func NewDispatcher(logger *log.Logger) Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &httpDispatcher{
		client: &http.Client{Timeout: deliveryTimeout},
		logger: logger,
	}
}

// Deliver POSTs the event as JSON. Only a 2xx answer counts as delivered;
// the response body is drained and discarded.
func (d *httpDispatcher) Deliver(ctx context.Context, url string, evt Event) error {
	if evt.Timestamp == "" {
		evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Printf("[webhook] delivery error url=%s event=%s: %v", url, evt.Event, err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.logger.Printf("[webhook] delivery rejected url=%s event=%s status=%d", url, evt.Event, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, resp.StatusCode)
	}

	return nil
}
