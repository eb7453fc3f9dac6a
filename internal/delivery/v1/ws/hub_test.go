package ws

import (
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(id string) *Session {
	// conn == nil: writeLoop не запускается, очередь проверяется напрямую
	return NewSession(id, nil, 8, logger.NewSlogLogger())
}

func TestHub_AddRemove(t *testing.T) {
	h := NewHub()

	s := newTestSession("s1")
	h.Add(s)
	require.Equal(t, 1, h.Len())

	h.Remove(s)
	require.Equal(t, 0, h.Len())
}

func TestHub_LateRemoveKeepsReplacement(t *testing.T) {
	h := NewHub()

	s1 := newTestSession("mismo-id")
	s2 := newTestSession("mismo-id")

	h.Add(s1)
	h.Add(s2)
	require.Equal(t, 1, h.Len())

	// Запоздавшая очистка старой сессии не должна удалить новую
	h.Remove(s1)
	assert.Equal(t, 1, h.Len())

	h.Remove(s2)
	assert.Equal(t, 0, h.Len())
}

func TestHub_BroadcastReachesEverySession(t *testing.T) {
	h := NewHub()

	s1 := newTestSession("s1")
	s2 := newTestSession("s2")
	h.Add(s1)
	h.Add(s2)

	h.Broadcast([]byte("hola"))

	require.Len(t, s1.sendQueue, 1)
	require.Len(t, s2.sendQueue, 1)
	assert.Equal(t, []byte("hola"), <-s1.sendQueue)
	assert.Equal(t, []byte("hola"), <-s2.sendQueue)
}

func TestSession_TrySendAfterClose(t *testing.T) {
	s := newTestSession("s1")
	s.Close()

	assert.False(t, s.TrySend([]byte("tarde")))
}

func TestSession_BackpressureDropsConnection(t *testing.T) {
	s := NewSession("s1", nil, 1, logger.NewSlogLogger())

	require.True(t, s.TrySend([]byte("uno")))
	// Очередь заполнена: второе сообщение роняет сессию
	require.False(t, s.TrySend([]byte("dos")))

	select {
	case <-s.Done():
	default:
		t.Fatal("session should be closed after backpressure overflow")
	}
}
