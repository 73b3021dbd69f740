package ai

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chatnova/chatnova/internal/memory"
)

type service struct {
	client CompletionClient
	memory memory.Store
}

func NewService(client CompletionClient, mem memory.Store) Service {
	return &service{
		client: client,
		memory: mem,
	}
}

// === главный метод ===
func (s *service) ChatReply(ctx context.Context, telegramID int64, userText string) (string, error) {
	start := time.Now()
	log.Printf("[ai] >>> START tg=%d", telegramID)

	// история обновляется до запроса: сообщение пользователя — часть контекста
	s.memory.Append(telegramID, userText)
	prompt := s.memory.Context(telegramID)

	reply, err := s.client.GetCompletion(ctx, prompt)
	if err != nil {
		return "", Classify(err)
	}

	if strings.TrimSpace(reply) == "" {
		log.Printf("[ai] empty completion tg=%d", telegramID)
		return "", nil
	}

	log.Printf("[ai] <<< DONE tg=%d took=%s", telegramID, time.Since(start))
	return reply, nil
}

func (s *service) ImagePrompt(ctx context.Context, prompt string) (string, error) {
	reply, err := s.client.GetCompletion(ctx, prompt)
	if err != nil {
		return "", Classify(err)
	}
	return reply, nil
}

func (s *service) DescribeImage(ctx context.Context, image []byte) (string, error) {
	reply, err := s.client.DescribeImage(ctx, image)
	if err != nil {
		return "", Classify(err)
	}
	return reply, nil
}
