package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *MessageRepo {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "chatlog.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewMessageRepo(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	repo := newTestRepo(t)

	// Повторный запуск при существующей таблице не должен падать
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestInsertSelectAll_PreservesOrderAndDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := domain.NewMessage("ana@mail.com", "hola", "11/11/2021 10:00:00")
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, domain.NewMessage("luis@mail.com", "buenas", "11/11/2021 10:01:00")))
	// Ключа нет: точный дубликат допустим
	require.NoError(t, repo.Insert(ctx, first))

	messages, err := repo.SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, *first, messages[0])
	assert.Equal(t, "luis@mail.com", messages[1].Email)
	assert.Equal(t, *first, messages[2])
}

func TestSelectAll_EmptyJournal(t *testing.T) {
	repo := newTestRepo(t)

	messages, err := repo.SelectAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, messages)
}
