package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

// ChatUseCase реализует журнал сообщений чата.
// Журнал живёт в отдельном хранилище и никак не связан с каталогом.
type ChatUseCase struct {
	messageRepo MessageRepository
	logger      logger.Logger
}

func NewChatUC(messageRepo MessageRepository, logger logger.Logger) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// ListMessages возвращает весь журнал сообщений.
// В отличие от каталога пустой журнал — нормальный результат.
func (c *ChatUseCase) ListMessages(ctx context.Context) ([]domain.Message, error) {
	const op = "ChatUseCase.ListMessages"

	messages, err := c.messageRepo.SelectAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return messages, nil
}

// AppendMessage сохраняет сообщение как есть: без идентификатора и без валидации.
func (c *ChatUseCase) AppendMessage(ctx context.Context, req *NewMessageReq) error {
	const op = "ChatUseCase.AppendMessage"

	message := domain.NewMessage(req.Email, req.Texto, req.Fecha)

	if err := c.messageRepo.Insert(ctx, message); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
