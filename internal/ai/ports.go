package ai

import "context"

// CompletionClient — низкоуровневый клиент инференса (OpenAI).
type CompletionClient interface {
	GetCompletion(ctx context.Context, prompt string) (string, error)
	DescribeImage(ctx context.Context, image []byte) (string, error)
}

type Service interface {
	// ChatReply получает ответ GPT на новое сообщение пользователя.
	// Сервис сам обновляет историю в памяти и склеивает контекст.
	ChatReply(ctx context.Context, telegramID int64, userText string) (string, error)

	// ImagePrompt — одиночный запрос без истории (команда /image).
	ImagePrompt(ctx context.Context, prompt string) (string, error)

	// DescribeImage описывает присланное фото.
	DescribeImage(ctx context.Context, image []byte) (string, error)
}
