// Package sqlite хранит журнал сообщений чата в SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	_ "modernc.org/sqlite"
)

// MessageRepo реализует репозиторий сообщений поверх SQLite.
type MessageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// Open открывает файл базы журнала чата.
func Open(path string) (*sql.DB, error) {
	const op = "sqlite.Open"

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, e.Wrap(op, err)
	}

	return db, nil
}

// EnsureSchema идемпотентно создаёт таблицу mensajes, если её ещё нет.
func (m *MessageRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS mensajes (
			email TEXT,
			texto TEXT,
			fecha TEXT
		)
	`

	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// SelectAll возвращает весь журнал сообщений в порядке вставки.
func (m *MessageRepo) SelectAll(ctx context.Context) ([]domain.Message, error) {
	query := `
		SELECT email, texto, fecha
		FROM mensajes
	`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Message, 0)
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(&message.Email, &message.Texto, &message.Fecha); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, message)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Insert дописывает сообщение в журнал как есть.
func (m *MessageRepo) Insert(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO mensajes (email, texto, fecha)
		VALUES (?, ?, ?)
	`

	if _, err := m.db.ExecContext(ctx, query, message.Email, message.Texto, message.Fecha); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
