package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessageRepo — журнал сообщений в памяти для тестов.
type fakeMessageRepo struct {
	messages []domain.Message
	failWith error
}

func (f *fakeMessageRepo) SelectAll(ctx context.Context) ([]domain.Message, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.Message(nil), f.messages...), nil
}

func (f *fakeMessageRepo) Insert(ctx context.Context, message *domain.Message) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.messages = append(f.messages, *message)
	return nil
}

func TestChatListMessages_EmptyIsSuccess(t *testing.T) {
	uc := NewChatUC(&fakeMessageRepo{}, logger.NewSlogLogger())

	messages, err := uc.ListMessages(context.Background())

	// В отличие от каталога пустой журнал — не ошибка
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestChatAppendMessage_DuplicatesAllowed(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := NewChatUC(repo, logger.NewSlogLogger())

	req := NewNewMessageReq("ana@mail.com", "hola", "11/11/2021 10:00:00")
	require.NoError(t, uc.AppendMessage(context.Background(), req))
	require.NoError(t, uc.AppendMessage(context.Background(), req))

	messages, err := uc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}

func TestChatAppendMessage_StoreFailure(t *testing.T) {
	uc := NewChatUC(&fakeMessageRepo{failWith: errStore}, logger.NewSlogLogger())

	err := uc.AppendMessage(context.Background(), NewNewMessageReq("a@b", "x", "f"))

	require.ErrorIs(t, err, errStore)
}
