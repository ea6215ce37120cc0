package websocket

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the frame pushed to connected sellers. Profile notices, upload
// results, and approval updates all travel as this envelope.
type Message struct {
	Type      string         `json:"type"`
	Severity  string         `json:"severity,omitempty"`
	Text      string         `json:"text,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Target    string         `json:"target"`
}

const (
	MessageTypeNotice   = "notice"
	MessageTypeStatus   = "status"
	MessageTypeApproval = "approval"
)

// Connection is one seller's live socket.
type Connection struct {
	ID           string
	UserID       string
	Conn         *websocket.Conn
	Send         chan Message
	LastActivity time.Time
	mu           sync.Mutex
}

// Manager tracks live connections and routes messages to sellers.
type Manager struct {
	connections map[string]*Connection
	mu          sync.RWMutex
	upgrader    websocket.Upgrader
	logger      *zap.Logger
	closed      bool
}

// NewManager creates a WebSocket manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		connections: make(map[string]*Connection),
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origins once the buyer portal domain is fixed
				return true
			},
		},
	}
}

// HandleConnection upgrades the request and registers the seller's socket.
// userID must already be authenticated by the caller.
func (m *Manager) HandleConnection(w http.ResponseWriter, r *http.Request, userID string) (*Connection, error) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade connection: %w", err)
	}

	connection := &Connection{
		ID:           uuid.New().String(),
		UserID:       userID,
		Conn:         conn,
		Send:         make(chan Message, 256),
		LastActivity: time.Now(),
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		conn.Close()
		return nil, fmt.Errorf("manager is closed")
	}
	m.connections[connection.ID] = connection
	m.mu.Unlock()

	m.logger.Info("websocket connected",
		zap.String("connection_id", connection.ID),
		zap.String("user_id", userID))

	go m.readPump(connection)
	go m.writePump(connection)

	return connection, nil
}

func (m *Manager) readPump(conn *Connection) {
	defer func() {
		m.remove(conn)
		conn.Conn.Close()
	}()

	conn.Conn.SetReadLimit(512)
	conn.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.Conn.SetPongHandler(func(string) error {
		conn.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg Message
		if err := conn.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				m.logger.Warn("websocket read failed",
					zap.String("connection_id", conn.ID),
					zap.Error(err))
			}
			return
		}
		conn.mu.Lock()
		conn.LastActivity = time.Now()
		conn.mu.Unlock()
	}
}

func (m *Manager) writePump(conn *Connection) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			conn.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				conn.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.Conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			conn.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (m *Manager) remove(conn *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.connections[conn.ID]; ok {
		delete(m.connections, conn.ID)
		close(conn.Send)
	}
}

// SendToUser delivers a message to every live connection the user has.
// Returns an error only when the user has no connection at all.
func (m *Manager) SendToUser(userID string, message Message) error {
	message.Target = userID
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sent := 0
	for _, conn := range m.connections {
		if conn.UserID != userID {
			continue
		}
		select {
		case conn.Send <- message:
			sent++
		default:
			// Buffer full, drop rather than block the sender.
		}
	}
	if sent == 0 {
		return fmt.Errorf("user %s not connected", userID)
	}
	return nil
}

// Broadcast delivers a message to every connected seller.
func (m *Manager) Broadcast(message Message) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, conn := range m.connections {
		select {
		case conn.Send <- message:
		default:
		}
	}
}

// ConnectionCount returns the number of live connections.
func (m *Manager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// Close shuts down all connections.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for id, conn := range m.connections {
		conn.Conn.Close()
		close(conn.Send)
		delete(m.connections, id)
	}
}
