package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog — потокобезопасный каталог в памяти, реализующий usecase.CatalogUC.
type fakeCatalog struct {
	mu       sync.Mutex
	products []domain.Product
	failWith error
}

func (f *fakeCatalog) List(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if len(f.products) == 0 {
		return nil, e.ErrNoProducts
	}
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) ([]domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalog) Create(ctx context.Context, req *usecase.SaveProductReq) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	product := domain.NewProduct(req.Title, req.Price, req.Thumbnail)
	f.products = append(f.products, *product)
	return product, nil
}

func (f *fakeCatalog) UpdateByID(ctx context.Context, id string, req *usecase.SaveProductReq) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalog) DeleteByID(ctx context.Context, id string) error {
	return e.ErrProductNotFound
}

// fakeChat — потокобезопасный журнал сообщений, реализующий usecase.ChatUC.
type fakeChat struct {
	mu       sync.Mutex
	messages []domain.Message
	failWith error
}

func (f *fakeChat) ListMessages(ctx context.Context) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.Message(nil), f.messages...), nil
}

func (f *fakeChat) AppendMessage(ctx context.Context, req *usecase.NewMessageReq) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.messages = append(f.messages, domain.Message{Email: req.Email, Texto: req.Texto, Fecha: req.Fecha})
	return nil
}

func newRealtimeServer(t *testing.T, catalog usecase.CatalogUC, chat usecase.ChatUC) *httptest.Server {
	t.Helper()
	hub := NewHub()
	handler := NewHandler(hub, catalog, chat, &cfg.WSConfig{SendQueueSize: 16}, logger.NewSlogLogger())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.CloseAll)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func sendEnvelope(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	payload, err := MarshalEnvelope(event, data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, payload))
}

func TestConnect_ReceivesSnapshots(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{
		*domain.NewProduct("Catan", decimal.NewFromInt(4000), "http://x/catan.webp"),
	}}
	chat := &fakeChat{messages: []domain.Message{
		{Email: "ana@mail.com", Texto: "hola", Fecha: "f"},
	}}
	srv := newRealtimeServer(t, catalog, chat)

	conn := dial(t, srv)

	first := readEnvelope(t, conn)
	require.Equal(t, EventListaProductos, first.Event)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(first.Data, &products))
	assert.Len(t, products, 1)

	second := readEnvelope(t, conn)
	require.Equal(t, EventNuevoMensaje, second.Event)
	var messages []domain.Message
	require.NoError(t, json.Unmarshal(second.Data, &messages))
	assert.Len(t, messages, 1)
}

// Обновление каталога после nuevoProducto получает только отправитель.
func TestNuevoProducto_RefreshGoesOnlyToSender(t *testing.T) {
	srv := newRealtimeServer(t, &fakeCatalog{}, &fakeChat{})

	connA := dial(t, srv)
	connB := dial(t, srv)

	// Каталог пуст, поэтому при подключении приходит только снимок журнала
	require.Equal(t, EventNuevoMensaje, readEnvelope(t, connA).Event)
	require.Equal(t, EventNuevoMensaje, readEnvelope(t, connB).Event)

	sendEnvelope(t, connA, EventNuevoProducto, map[string]any{
		"title": "Catan", "price": 4000, "thumbnail": "http://x/catan.webp",
	})

	refresh := readEnvelope(t, connA)
	require.Equal(t, EventListaProductos, refresh.Event)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(refresh.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Catan", products[0].Title)

	// B ничего не получил: следующее же событие для B — журнал чата,
	// отправленный после nuevoMensaje ниже, а не listaProductos
	sendEnvelope(t, connA, EventNuevoMensaje, map[string]any{
		"email": "ana@mail.com", "texto": "hola", "fecha": "f",
	})

	forB := readEnvelope(t, connB)
	assert.Equal(t, EventNuevoMensaje, forB.Event)
}

// Журнал чата после nuevoMensaje рассылается всем, включая отправителя.
func TestNuevoMensaje_BroadcastReachesAllClients(t *testing.T) {
	srv := newRealtimeServer(t, &fakeCatalog{}, &fakeChat{})

	connA := dial(t, srv)
	connB := dial(t, srv)
	require.Equal(t, EventNuevoMensaje, readEnvelope(t, connA).Event)
	require.Equal(t, EventNuevoMensaje, readEnvelope(t, connB).Event)

	sendEnvelope(t, connA, EventNuevoMensaje, map[string]any{
		"email": "ana@mail.com", "texto": "hola a todos", "fecha": "11/11/2021",
	})

	for _, conn := range []*websocket.Conn{connA, connB} {
		env := readEnvelope(t, conn)
		require.Equal(t, EventNuevoMensaje, env.Event)

		var messages []domain.Message
		require.NoError(t, json.Unmarshal(env.Data, &messages))
		require.Len(t, messages, 1)
		assert.Equal(t, "hola a todos", messages[0].Texto)
	}
}

// Сбой хранилища в realtime-пути — тишина для клиента, без события об ошибке.
func TestNuevoMensaje_StoreFailureIsSilent(t *testing.T) {
	srv := newRealtimeServer(t, &fakeCatalog{}, &fakeChat{failWith: errors.New("store failure")})

	conn := dial(t, srv)

	sendEnvelope(t, conn, EventNuevoMensaje, map[string]any{
		"email": "x@y", "texto": "perdido", "fecha": "f",
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "client must receive nothing after a persistence failure")
}
