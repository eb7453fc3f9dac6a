package ws

import (
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Session — одно websocket-подключение с собственной очередью отправки.
// Запись в соединение идёт только из writeLoop.
type Session struct {
	ID string

	conn      *websocket.Conn
	sendQueue chan []byte
	done      chan struct{}
	closed    atomic.Int32
	logger    logger.Logger
}

func NewSession(id string, conn *websocket.Conn, queueSize int, logger logger.Logger) *Session {
	return &Session{
		ID:        id,
		conn:      conn,
		sendQueue: make(chan []byte, queueSize),
		done:      make(chan struct{}),
		logger:    logger,
	}
}

func (s *Session) Start() {
	go s.writeLoop()
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// TrySend ставит сообщение в очередь отправки.
// Переполнение очереди означает отставшего клиента: соединение разрывается.
func (s *Session) TrySend(msg []byte) bool {
	if s.closed.Load() == 1 {
		return false
	}
	select {
	case s.sendQueue <- msg:
		return true
	default:
		s.logger.Warnf("session %s: backpressure overflow, dropping connection", s.ID)
		s.CloseWithReason(websocket.CloseInternalServerErr, "backpressure overflow")
		return false
	}
}

func (s *Session) Close() {
	s.CloseWithReason(websocket.CloseNormalClosure, "server closing")
}

func (s *Session) CloseWithReason(code int, reason string) {
	if !s.closed.CompareAndSwap(0, 1) {
		return
	}

	close(s.done)

	if s.conn != nil {
		deadline := time.Now().Add(time.Second)
		_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
		s.conn.Close()
	}
}

func (s *Session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case msg := <-s.sendQueue:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.logger.Warnf("session %s: write error: %v", s.ID, err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logger.Warnf("session %s: ping error: %v", s.ID, err)
				return
			}
		case <-s.done:
			return
		}
	}
}
