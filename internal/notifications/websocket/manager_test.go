package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSendToUserFailsWhenOffline(t *testing.T) {
	m := NewManager(zap.NewNop())
	defer m.Close()

	err := m.SendToUser("user-1", Message{Type: MessageTypeNotice, Text: "hello"})

	assert.Error(t, err)
	assert.Equal(t, 0, m.ConnectionCount())
}

func TestBroadcastWithNoConnectionsIsNoop(t *testing.T) {
	m := NewManager(zap.NewNop())
	defer m.Close()

	m.Broadcast(Message{Type: MessageTypeStatus, Text: "maintenance"})

	assert.Equal(t, 0, m.ConnectionCount())
}

func TestCloseIsIdempotent(t *testing.T) {
	m := NewManager(zap.NewNop())

	m.Close()
	m.Close()

	assert.Equal(t, 0, m.ConnectionCount())
}
