package speech

import (
	"context"
	"errors"
)

// Два пользовательских класса отказа распознавания.
var (
	// ErrUnintelligible — аудио есть, но разобрать речь не удалось.
	ErrUnintelligible = errors.New("speech: could not understand audio")

	// ErrUnavailable — сам сервис распознавания недоступен или упал.
	ErrUnavailable = errors.New("speech: recognition service unavailable")
)

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // голос → текст
}

type Converter interface {
	// ConvertToWAV перегоняет контейнер (OGG/Opus) в PCM wav рядом с исходником.
	ConvertToWAV(ctx context.Context, inputPath string) (string, error)
}
