package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"notes-service/internal/config"
	"notes-service/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrManagerStopped = errors.New("websocket manager stopped")
	ErrTooManyClients = errors.New("too many websocket clients")
)

type ClientMessage struct {
	Client  *Client
	Message []byte
}

// Manager fans note events out to every connected client of the change feed.
type Manager struct {
	clients        map[string]*Client
	clientsMutex   sync.RWMutex
	register       chan *Client
	unregister     chan *Client
	incoming       chan *ClientMessage
	done           chan struct{}
	maxClients     int
	maxMessageSize int64
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
	logger         *zap.Logger
}

func NewManager(cfg config.WebSocketConfig, logger *zap.Logger) *Manager {
	return &Manager{
		clients:        make(map[string]*Client),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		incoming:       make(chan *ClientMessage),
		done:           make(chan struct{}),
		maxClients:     cfg.MaxClients,
		maxMessageSize: cfg.MaxMessageSize,
		writeWait:      cfg.WriteWait,
		pongWait:       cfg.PongWait,
		pingPeriod:     cfg.PingPeriod,
		logger:         logger,
	}
}

// Run processes registrations and client messages until ctx is cancelled,
// then disconnects every client.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return

		case client := <-m.register:
			m.registerClient(client)

		case client := <-m.unregister:
			m.unregisterClient(client)

		case clientMsg := <-m.incoming:
			m.processMessage(clientMsg)
		}
	}
}

// Register adds client to the feed. The client's Send channel is closed
// if it is rejected.
func (m *Manager) Register(client *Client) error {
	if m.ClientCount() >= m.maxClients {
		close(client.Send)
		return ErrTooManyClients
	}

	select {
	case m.register <- client:
		return nil
	case <-m.done:
		close(client.Send)
		return ErrManagerStopped
	}
}

func (m *Manager) Unregister(client *Client) {
	select {
	case m.unregister <- client:
	case <-m.done:
	}
}

// Publish implements service.EventPublisher. It never blocks; a client
// whose buffer is full is disconnected.
func (m *Manager) Publish(event domain.NoteEvent) {
	message, err := NewEventMessage(event)
	if err != nil {
		m.logger.Error("failed to build event message", zap.Error(err))
		return
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		m.logger.Error("failed to encode event message", zap.Error(err))
		return
	}

	var slow []*Client

	m.clientsMutex.RLock()
	for _, client := range m.clients {
		select {
		case client.Send <- messageBytes:
		default:
			slow = append(slow, client)
		}
	}
	m.clientsMutex.RUnlock()

	for _, client := range slow {
		m.logger.Warn("client send buffer full, closing connection", zap.String("client_id", client.ID))
		m.unregisterClient(client)
	}
}

func (m *Manager) SendToClient(clientID string, message *Message) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	client, exists := m.clients[clientID]
	if !exists {
		return nil
	}

	select {
	case client.Send <- messageBytes:
	default:
		m.logger.Warn("client send buffer full", zap.String("client_id", clientID))
	}

	return nil
}

func (m *Manager) ClientCount() int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	return len(m.clients)
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if len(m.clients) >= m.maxClients {
		m.logger.Warn("max websocket clients reached", zap.Int("max_clients", m.maxClients))
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.logger.Info("client registered", zap.String("client_id", client.ID))
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
		m.logger.Info("client unregistered", zap.String("client_id", client.ID))
	}
}

func (m *Manager) closeAll() {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for id, client := range m.clients {
		delete(m.clients, id)
		close(client.Send)
	}
}

func (m *Manager) processMessage(clientMsg *ClientMessage) {
	var msg Message
	if err := json.Unmarshal(clientMsg.Message, &msg); err != nil {
		m.reply(clientMsg.Client, TypeError, ErrorPayload{Message: "invalid message"})
		return
	}

	switch msg.Type {
	case TypePing:
		m.reply(clientMsg.Client, TypePong, nil)
	default:
		m.reply(clientMsg.Client, TypeError, ErrorPayload{Message: "unsupported message type: " + string(msg.Type)})
	}
}

func (m *Manager) reply(client *Client, msgType MessageType, payload interface{}) {
	message, err := NewMessage(msgType, payload)
	if err != nil {
		m.logger.Error("failed to build reply", zap.Error(err))
		return
	}
	if err := m.SendToClient(client.ID, message); err != nil {
		m.logger.Error("failed to send reply", zap.String("client_id", client.ID), zap.Error(err))
	}
}
