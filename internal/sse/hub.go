package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client represents a connected stream client
type Client struct {
	ID           string
	SessionID    string // "" receives events of every session
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types

	dropped atomic.Int64
}

// Dropped reports how many events were skipped because the client lagged
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

func (c *Client) deliver(event Event) {
	if c.EventFilter != nil && !c.EventFilter[event.Type] {
		return
	}
	// A slow client misses ticks rather than stalling the hub
	select {
	case c.EventChannel <- event:
	default:
		c.dropped.Add(1)
	}
}

// Hub fans round events out to stream clients. Clients are indexed by
// session so a broadcast only touches that session's listeners plus the
// firehose listeners registered under "".
// Both the SSE handler and the WebSocket transport read from it.
//
// Membership changes happen under mu; only delivery runs on the loop.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	bySession map[string]map[string]*Client
	stopped   bool

	broadcast chan Event
	shutdown  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewHub creates a hub; call Start to begin delivering broadcasts
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		bySession: make(map[string]map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start launches the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the delivery loop and closes every client channel, which
// terminates the streams reading from them. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.stopped = true
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
		clear(h.bySession)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.bySession[event.SessionID] {
				client.deliver(event)
			}
			if event.SessionID != "" {
				for _, client := range h.bySession[""] {
					client.deliver(event)
				}
			}
			h.mu.RUnlock()
		case <-h.shutdown:
			return
		}
	}
}

// add indexes client; the caller holds mu
func (h *Hub) add(client *Client) {
	h.clients[client.ID] = client
	group, ok := h.bySession[client.SessionID]
	if !ok {
		group = make(map[string]*Client)
		h.bySession[client.SessionID] = group
	}
	group[client.ID] = client
}

// remove drops and closes a client; the caller holds mu
func (h *Hub) remove(clientID string) {
	client, ok := h.clients[clientID]
	if !ok {
		return
	}
	delete(h.clients, clientID)
	if group := h.bySession[client.SessionID]; group != nil {
		delete(group, clientID)
		if len(group) == 0 {
			delete(h.bySession, client.SessionID)
		}
	}
	close(client.EventChannel)

	if n := client.Dropped(); n > 0 {
		slog.Debug(LogMsgClientLagged, "client_id", clientID, "session_id", client.SessionID, "dropped", n)
	}
}

// Register adds a new client for one session ("" for all sessions). The
// client is live when Register returns. After Stop the returned client's
// channel is already closed.
func (h *Hub) Register(sessionID string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(client.EventChannel)
		return client
	}
	h.add(client)
	return client
}

// Unregister removes a client and closes its channel. Unknown IDs and
// calls after Stop are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(clientID)
}

// Broadcast queues an event for delivery. It never blocks; when the queue
// is full the event is dropped and logged.
func (h *Hub) Broadcast(sessionID, eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType, "session_id", sessionID)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event as one text/event-stream frame:
// id, event and data lines followed by a blank line.
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(event.ID) + len(event.Type) + 24)
	buf.WriteString("id: " + event.ID + "\n")
	buf.WriteString("event: " + event.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
