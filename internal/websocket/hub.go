// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package websocket

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types.
const (
	MessageTypeCheckin     = "checkin"
	MessageTypeLeaderboard = "leaderboard"
	MessageTypePing        = "ping"
	MessageTypePong        = "pong"
)

const broadcastBuffer = 256

// Message is the envelope for everything sent over the socket.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`

	// revision orders leaderboard snapshots; zero means unordered.
	revision uint64
}

// CheckinData is the payload of a checkin message.
type CheckinData struct {
	Username       string `json:"username"`
	Landmark       string `json:"landmark"`
	Points         int    `json:"points"`
	LandmarkVisits int    `json:"landmark_visits"`
	Timestamp      string `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex

	// lastLeaderboard is the revision of the newest leaderboard sent.
	// Only the run loop touches it.
	lastLeaderboard uint64
}

// NewHub creates a hub. Call RunWithContext to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// RunWithContext processes registrations and broadcasts until ctx is done,
// then closes every client and returns ctx.Err().
//
// Each iteration checks, in order: shutdown, client lifecycle, broadcasts.
// Lifecycle events are drained before broadcasts so a client registered
// before a broadcast always receives it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	defer h.stopOnce.Do(func() { close(h.done) })

	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

// Done is closed once the hub has stopped.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Accept wraps an upgraded connection in a Client, registers it and starts
// its pumps. If the hub has already stopped the connection is closed.
func (h *Hub) Accept(conn *websocket.Conn) *Client {
	client := NewClient(h, conn)
	select {
	case h.Register <- client:
		client.Start()
	case <-h.done:
		_ = conn.Close()
	}
	return client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	logging.Debug().Uint64("client_id", client.id).Int("total_clients", total).Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	removed := h.dropLocked(client)
	total := len(h.clients)
	h.mu.Unlock()

	if removed {
		logging.Debug().Uint64("client_id", client.id).Int("total_clients", total).Msg("websocket client disconnected")
	}
}

// dropLocked closes the client's send channel and forgets it. Requires h.mu.
func (h *Hub) dropLocked(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	client.closeSend()
	metrics.WSConnections.Dec()
	return true
}

func (h *Hub) shutdown(ctx context.Context) {
	closed := h.closeAllClients()

	reason := ShutdownReasonContextCanceled
	if ctx.Err() == context.DeadlineExceeded {
		reason = ShutdownReasonContextDeadline
	}

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(reason)).
		Int("clients_closed", closed).
		Msg("websocket hub stopped")
}

// sortedClientsLocked returns clients in connection order. Requires h.mu.
func (h *Hub) sortedClientsLocked() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

// broadcastToClients delivers message in connection order. Clients with a
// full send buffer are dropped. A leaderboard older than one already sent is
// discarded.
func (h *Hub) broadcastToClients(message Message) {
	if message.revision != 0 {
		if message.revision <= h.lastLeaderboard {
			logging.Debug().
				Uint64("revision", message.revision).
				Uint64("last_sent", h.lastLeaderboard).
				Msg("discarding stale leaderboard")
			return
		}
		h.lastLeaderboard = message.revision
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedClientsLocked() {
		if !client.trySend(message) {
			metrics.RecordWSError("slow_client")
			logging.Warn().Uint64("client_id", client.id).Msg("websocket client too slow, disconnecting")
			h.dropLocked(client)
		}
	}
	metrics.RecordWSMessage(message.Type)
}

func (h *Hub) closeAllClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.sortedClientsLocked()
	for _, client := range clients {
		h.dropLocked(client)
	}
	return len(clients)
}

// BroadcastJSON queues a message for every client without blocking.
// It reports false when the broadcast buffer is full and the message was dropped.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) bool {
	return h.enqueue(Message{Type: messageType, Data: data})
}

func (h *Hub) enqueue(message Message) bool {
	select {
	case h.broadcast <- message:
		return true
	default:
		metrics.RecordWSError("broadcast_full")
		logging.Warn().Str("message_type", message.Type).Msg("broadcast channel full, dropping message")
		return false
	}
}

// BroadcastCheckin announces a successful check-in.
func (h *Hub) BroadcastCheckin(username, landmark string, points, landmarkVisits int) bool {
	return h.BroadcastJSON(MessageTypeCheckin, CheckinData{
		Username:       username,
		Landmark:       landmark,
		Points:         points,
		LandmarkVisits: landmarkVisits,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

// BroadcastLeaderboard sends a full leaderboard snapshot read at revision.
// Snapshots reaching the hub out of order are discarded so clients always
// end on the newest one. Revision zero is never discarded.
func (h *Hub) BroadcastLeaderboard(entries []models.LeaderboardEntry, revision uint64) bool {
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return h.enqueue(Message{Type: MessageTypeLeaderboard, Data: entries, revision: revision})
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarshalMessage encodes msg as JSON.
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
