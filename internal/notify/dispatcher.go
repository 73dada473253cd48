package notify

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Event is the outbound webhook envelope.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Dispatcher delivers events to a configured webhook endpoint from a
// background worker. Delivery is fire-and-forget: failures are logged,
// never retried, and never surfaced to the request that produced them.
type Dispatcher struct {
	endpoint string
	client   *http.Client
	queue    chan Event
}

func NewDispatcher(endpoint string) *Dispatcher {
	d := &Dispatcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.deliver(ev); err != nil {
			log.Println("webhook error:", err)
		}
	}
}

func (d *Dispatcher) deliver(ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	resp, err := d.client.Post(d.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("webhook %s returned %d", ev.Type, resp.StatusCode)
	}
	return nil
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d.endpoint == "" {
		return
	}

	select {
	case d.queue <- ev:
		// queued
	default:
		// queue full: drop, a notification must never block the API
		log.Println("webhook queue full, dropping event")
	}
}
