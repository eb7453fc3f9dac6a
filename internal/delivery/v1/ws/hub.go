package ws

import "sync"

// Hub хранит активные сессии и рассылает события.
// Координация только внутри процесса: межузлового fan-out нет.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
	}
}

func (h *Hub) Add(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID] = s
}

func (h *Hub) Remove(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Удаляется только та же самая сессия: запоздавший Remove
	// не должен убить новую сессию с тем же ключом.
	if current, ok := h.sessions[s.ID]; ok && current == s {
		delete(h.sessions, s.ID)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Broadcast рассылает сообщение всем подключённым сессиям, включая отправителя.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.sessions {
		s.TrySend(msg)
	}
}

func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.sessions {
		s.Close()
	}
	h.sessions = make(map[string]*Session)
}
