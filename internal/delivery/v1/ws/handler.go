// Package ws реализует канал реального времени поверх websocket.
//
// Протокол асимметричен намеренно: обновление каталога после nuevoProducto
// получает только отправитель, а журнал чата после nuevoMensaje рассылается
// всем подключённым клиентам. Ошибки хранилища клиенту не сообщаются —
// только логируются.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub            *Hub
	catalogUsecase usecase.CatalogUC
	chatUsecase    usecase.ChatUC
	cfg            *cfg.WSConfig
	logger         logger.Logger
}

func NewHandler(hub *Hub, catalogUsecase usecase.CatalogUC, chatUsecase usecase.ChatUC,
	cfg *cfg.WSConfig, logger logger.Logger) *Handler {
	return &Handler{
		hub:            hub,
		catalogUsecase: catalogUsecase,
		chatUsecase:    chatUsecase,
		cfg:            cfg,
		logger:         logger,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorf(err, "ws upgrade error")
		return
	}

	session := NewSession(uuid.NewString(), conn, h.cfg.SendQueueSize, h.logger)
	h.hub.Add(session)
	session.Start()
	h.logger.Infof("ws session %s connected", session.ID)

	// Свежие снимки обеих коллекций уходят только новому подключению
	h.pushSnapshots(session)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go h.readLoop(session)
}

// pushSnapshots отправляет новому подключению полный каталог и полный журнал чата.
// Сбой запроса к одному хранилищу не мешает снимку из другого.
func (h *Handler) pushSnapshots(s *Session) {
	ctx := context.Background()

	products, err := h.catalogUsecase.List(ctx)
	if err != nil {
		h.logger.Warnf("ws session %s: list products: %s", s.ID, err.Error())
	} else {
		h.sendTo(s, EventListaProductos, products)
	}

	messages, err := h.chatUsecase.ListMessages(ctx)
	if err != nil {
		h.logger.Warnf("ws session %s: list messages: %s", s.ID, err.Error())
	} else {
		h.sendTo(s, EventNuevoMensaje, messages)
	}
}

func (h *Handler) readLoop(s *Session) {
	defer func() {
		h.hub.Remove(s)
		s.Close()
		h.logger.Infof("ws session %s disconnected", s.ID)
	}()

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("ws session %s: read error: %v", s.ID, err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			h.logger.Warnf("ws session %s: malformed envelope: %v", s.ID, err)
			continue
		}

		switch env.Event {
		case EventNuevoProducto:
			h.handleNuevoProducto(s, env.Data)
		case EventNuevoMensaje:
			h.handleNuevoMensaje(s, env.Data)
		default:
			h.logger.Warnf("ws session %s: unknown event %q", s.ID, env.Event)
		}
	}
}

// handleNuevoProducto сохраняет товар и возвращает обновлённый каталог
// только отправителю. При сбое клиент не получает ничего.
func (h *Handler) handleNuevoProducto(s *Session, raw json.RawMessage) {
	ctx := context.Background()

	var data newProductData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.logger.Warnf("ws session %s: malformed nuevoProducto: %v", s.ID, err)
		return
	}

	if _, err := h.catalogUsecase.Create(ctx, usecase.NewSaveProductReq(data.Title, data.Price, data.Thumbnail)); err != nil {
		h.logger.Warnf("ws session %s: create product: %s", s.ID, err.Error())
		return
	}

	products, err := h.catalogUsecase.List(ctx)
	if err != nil {
		h.logger.Warnf("ws session %s: list products: %s", s.ID, err.Error())
		return
	}

	h.sendTo(s, EventListaProductos, products)
}

// handleNuevoMensaje дописывает сообщение в журнал и рассылает обновлённый
// журнал всем подключённым клиентам, включая отправителя.
func (h *Handler) handleNuevoMensaje(s *Session, raw json.RawMessage) {
	ctx := context.Background()

	var data newMessageData
	if err := json.Unmarshal(raw, &data); err != nil {
		h.logger.Warnf("ws session %s: malformed nuevoMensaje: %v", s.ID, err)
		return
	}

	if err := h.chatUsecase.AppendMessage(ctx, usecase.NewNewMessageReq(data.Email, data.Texto, data.Fecha)); err != nil {
		h.logger.Warnf("ws session %s: append message: %s", s.ID, err.Error())
		return
	}

	messages, err := h.chatUsecase.ListMessages(ctx)
	if err != nil {
		h.logger.Warnf("ws session %s: list messages: %s", s.ID, err.Error())
		return
	}

	payload, err := MarshalEnvelope(EventNuevoMensaje, messages)
	if err != nil {
		h.logger.Errorf(err, "ws: marshal nuevoMensaje")
		return
	}

	h.hub.Broadcast(payload)
}

func (h *Handler) sendTo(s *Session, event string, data any) {
	payload, err := MarshalEnvelope(event, data)
	if err != nil {
		h.logger.Errorf(err, "ws: marshal %s", event)
		return
	}

	s.TrySend(payload)
}
